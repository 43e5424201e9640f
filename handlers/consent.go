package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"ironingangels/config"
	"ironingangels/services"
)

// HandleConsent stores the visitor's cookie banner answer, taken from the
// {choice} path value, and removes the banner. An accepted choice carries the
// Clarity project id so the page can start analytics without a reload.
func HandleConsent(cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		choice := services.ParseConsent(e.Request.PathValue("choice"))
		if !choice.Decided() {
			return ErrorToast(e, http.StatusBadRequest, "Unknown consent choice.")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     services.ConsentCookieName,
			Value:    string(choice),
			Path:     "/",
			MaxAge:   int(cfg.ConsentMaxAge.Seconds()),
			HttpOnly: false, // site.js reads it to start or stop analytics
			SameSite: http.SameSiteLaxMode,
		})
		payload := map[string]string{"choice": string(choice)}
		if choice.AllowsAnalytics() && cfg.ClarityProjectID != "" {
			payload["clarityId"] = cfg.ClarityProjectID
		}
		SetTrigger(e, "cookieConsent", payload)
		return e.HTML(http.StatusOK, "")
	}
}
