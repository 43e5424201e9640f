package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"ironingangels/config"
	"ironingangels/services"
	"ironingangels/templates"
)

type contextKey string

const LayoutDataKey contextKey = "layoutData"

// GetLayoutData returns the LayoutData stored by SiteMiddleware. Without the
// middleware only the active path is filled in.
func GetLayoutData(r *http.Request) templates.LayoutData {
	if val, ok := r.Context().Value(LayoutDataKey).(templates.LayoutData); ok {
		return val
	}
	return templates.LayoutData{ActivePath: r.URL.Path}
}

// BuildLayoutData derives the page chrome state from the consent cookie and config.
func BuildLayoutData(r *http.Request, cfg *config.Config) templates.LayoutData {
	choice := services.ConsentUnset
	if c, err := r.Cookie(services.ConsentCookieName); err == nil {
		choice = services.ParseConsent(c.Value)
	}
	return templates.LayoutData{
		ActivePath:        r.URL.Path,
		ShowConsentBanner: !choice.Decided(),
		LoadClarity:       cfg.ClarityProjectID != "" && choice.AllowsAnalytics(),
		ClarityProjectID:  cfg.ClarityProjectID,
	}
}

// SiteMiddleware stores LayoutData in the request context for handlers and templates.
func SiteMiddleware(cfg *config.Config) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := BuildLayoutData(e.Request, cfg)
		ctx := context.WithValue(e.Request.Context(), LayoutDataKey, data)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}
