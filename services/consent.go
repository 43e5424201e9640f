package services

import "strings"

// ConsentCookieName is the cookie holding the visitor's analytics choice.
const ConsentCookieName = "cookie-consent"

// ConsentChoice is the visitor's answer to the cookie banner.
type ConsentChoice string

const (
	ConsentUnset    ConsentChoice = ""
	ConsentAccepted ConsentChoice = "accepted"
	ConsentDeclined ConsentChoice = "declined"
)

// ParseConsent maps a stored cookie value to a choice. Anything unrecognised
// is treated as no choice, so the banner is shown again.
func ParseConsent(raw string) ConsentChoice {
	switch ConsentChoice(strings.ToLower(strings.TrimSpace(raw))) {
	case ConsentAccepted:
		return ConsentAccepted
	case ConsentDeclined:
		return ConsentDeclined
	}
	return ConsentUnset
}

// Decided reports whether the visitor answered the banner.
func (c ConsentChoice) Decided() bool { return c != ConsentUnset }

// AllowsAnalytics reports whether tracking scripts may load.
func (c ConsentChoice) AllowsAnalytics() bool { return c == ConsentAccepted }
