package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ironingangels/collections"
	"ironingangels/services"
	"ironingangels/templates"
)

const quoteMessageIntro = "I'd like to book the following items:\n\n"

const relayFailedMessage = "Sorry, we could not send your message. Please try again or call us on 07901 611906."

func serviceOptionViews(selected string) []templates.ServiceOptionView {
	views := make([]templates.ServiceOptionView, 0, len(services.ServiceOptions))
	for _, o := range services.ServiceOptions {
		views = append(views, templates.ServiceOptionView{
			Value:    o.Value,
			Label:    o.Label,
			Selected: o.Value == selected,
		})
	}
	return views
}

func contactData(f services.ContactForm, quote *core.Record, errs map[string]string) templates.ContactData {
	data := templates.ContactData{
		Form: templates.ContactFormView{
			Name:    f.Name,
			Email:   f.Email,
			Phone:   f.Phone,
			Service: f.Service,
			Message: f.Message,
		},
		Errors:   errs,
		Services: serviceOptionViews(f.Service),
	}
	if quote != nil {
		data.Form.QuoteID = quote.Id
		data.QuoteRef = quote.GetString("reference")
	}
	return data
}

// findQuote loads a stored estimate, returning nil when id is empty or unknown.
func findQuote(app *pocketbase.PocketBase, id string) *core.Record {
	if id == "" {
		return nil
	}
	rec, err := app.FindRecordById("quote_requests", id)
	if err != nil {
		zap.L().Debug("contact: quote request not found", zap.String("id", id))
		return nil
	}
	return rec
}

// HandleContactPage renders the contact page. With ?quote=<id> the message is
// pre-filled with the stored estimate.
func HandleContactPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form services.ContactForm
		quote := findQuote(app, e.Request.URL.Query().Get("quote"))
		if quote != nil {
			form.Service = "regular"
			form.Message = quoteMessageIntro + quote.GetString("summary")
		}
		data := contactData(form, quote, nil)
		return templates.ContactPage(data, GetLayoutData(e.Request)).Render(e.Request.Context(), e.Response)
	}
}

// HandleContactSubmit validates the form, records the message and hands it
// to relay. The stored status reflects whether delivery succeeded.
func HandleContactSubmit(app *pocketbase.PocketBase, relay services.FormRelay) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form submission.")
		}
		pf := e.Request.PostForm
		form := services.ContactForm{
			Name:    pf.Get("name"),
			Email:   pf.Get("email"),
			Phone:   pf.Get("phone"),
			Service: pf.Get("service"),
			Message: pf.Get("message"),
		}
		form.Normalize()
		quote := findQuote(app, pf.Get("quote"))
		isHTMX := e.Request.Header.Get("HX-Request") == "true"

		if errs := form.Validate(); len(errs) > 0 {
			data := contactData(form, quote, errs)
			var component templ.Component
			if isHTMX {
				component = templates.ContactForm(data)
			} else {
				component = templates.ContactPage(data, GetLayoutData(e.Request))
			}
			return component.Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("contact_messages")
		if err != nil {
			zap.L().Error("contact: could not find contact_messages collection", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		msg := core.NewRecord(col)
		msg.Set("name", form.Name)
		msg.Set("email", form.Email)
		msg.Set("phone", form.Phone)
		msg.Set("service", form.Service)
		msg.Set("message", form.Message)
		msg.Set("status", collections.StatusPending)
		sub := services.ContactSubmission{Form: form}
		if quote != nil {
			msg.Set("quote", quote.Id)
			sub.QuoteReference = quote.GetString("reference")
		}
		if err := app.Save(msg); err != nil {
			zap.L().Error("contact: could not save message", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		relayErr := relay.Submit(e.Request.Context(), sub)
		if relayErr != nil {
			msg.Set("status", collections.StatusFailed)
		} else {
			msg.Set("status", collections.StatusSent)
		}
		if err := app.Save(msg); err != nil {
			zap.L().Error("contact: could not update message status", zap.String("id", msg.Id), zap.Error(err))
		}

		if relayErr != nil {
			zap.L().Error("contact: relay failed", zap.String("id", msg.Id), zap.Error(relayErr))
			if isHTMX {
				return ErrorToast(e, http.StatusBadGateway, relayFailedMessage)
			}
			data := contactData(form, quote, map[string]string{"form": relayFailedMessage})
			e.Response.WriteHeader(http.StatusBadGateway)
			return templates.ContactPage(data, GetLayoutData(e.Request)).Render(e.Request.Context(), e.Response)
		}

		SetToast(e, "success", "Thank you! Your message has been sent.")
		if !isHTMX {
			return e.Redirect(http.StatusFound, "/contact")
		}
		return templates.ContactSuccess().Render(e.Request.Context(), e.Response)
	}
}
