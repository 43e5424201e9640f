package services

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ServiceOption is one choice in the contact form's "Service Needed" select.
type ServiceOption struct {
	Value string
	Label string
}

// ServiceOptions lists the services a visitor can ask about, in display order.
var ServiceOptions = []ServiceOption{
	{"regular", "Regular Ironing Service"},
	{"express", "Express Service (24h)"},
	{"subscription", "Weekly Subscription"},
	{"special", "Special Items"},
	{"other", "Other (Please specify)"},
}

// ServiceLabel returns the display label for a service value, or the value
// itself when it is not a known option.
func ServiceLabel(value string) string {
	for _, o := range ServiceOptions {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// ContactForm is a contact page submission.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// UK numbers, with or without +44, spaces, dashes and brackets.
var ukPhonePattern = regexp.MustCompile(`^(\(?\+44\)?\s?\(?0?\)?|\(?0)[0-9\s\-()]{9,13}$`)

// Normalize trims surrounding whitespace from every field and lower-cases the email.
func (f *ContactForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Phone = strings.TrimSpace(f.Phone)
	f.Service = strings.TrimSpace(f.Service)
	f.Message = strings.TrimSpace(f.Message)
}

// Validate checks the form and returns field name -> message for each problem.
// An empty map means the form is valid.
func (f ContactForm) Validate() map[string]string {
	services := make([]any, len(ServiceOptions))
	for i, o := range ServiceOptions {
		services[i] = o.Value
	}

	err := validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("Name is required"),
			validation.RuneLength(0, 100).Error("Name must be 100 characters or fewer"),
		),
		validation.Field(&f.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Enter a valid email address"),
		),
		validation.Field(&f.Phone,
			validation.Match(ukPhonePattern).Error("Enter a valid UK phone number"),
		),
		validation.Field(&f.Service,
			validation.Required.Error("Choose a service"),
			validation.In(services...).Error("Choose a service from the list"),
		),
		validation.Field(&f.Message,
			validation.Required.Error("Message is required"),
			validation.RuneLength(0, 5000).Error("Message must be 5000 characters or fewer"),
		),
	)

	out := make(map[string]string)
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, ferr := range verrs {
			out[field] = ferr.Error()
		}
	} else if err != nil {
		out["form"] = err.Error()
	}
	return out
}
