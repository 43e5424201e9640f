package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ironingangels/collections"
	"ironingangels/config"
	"ironingangels/handlers"
	"ironingangels/logger"
	"ironingangels/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	app := pocketbase.New()
	cat := services.DefaultCatalog()
	relay := services.NewHTTPFormRelay(cfg.FormRelayURL, cfg.ContactPageURL(), cfg.FormRelayTimeout, cfg.FormRelayMaxRetries)

	app.RootCmd.AddCommand(newCatalogCommand(cat), newQuoteCommand(cat))

	// Create collections and seed testimonials on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			zap.L().Warn("main: seed data failed", zap.Error(err))
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS(cfg.StaticDir), false))

		se.Router.BindFunc(handlers.SiteMiddleware(cfg))

		// ── Pages ────────────────────────────────────────────────
		se.Router.GET("/{$}", handlers.HandleHome(app))
		se.Router.GET("/pricing", handlers.HandlePricing(cat))
		se.Router.GET("/contact", handlers.HandleContactPage(app))
		se.Router.POST("/contact", handlers.HandleContactSubmit(app, relay))

		// ── Estimator ────────────────────────────────────────────
		se.Router.GET("/estimator", handlers.HandleEstimatorOpen(cat))
		se.Router.GET("/estimator/close", handlers.HandleEstimatorClose())
		se.Router.POST("/estimator/items/{id}/increment", handlers.HandleEstimatorIncrement(cat))
		se.Router.POST("/estimator/items/{id}/decrement", handlers.HandleEstimatorDecrement(cat))
		se.Router.POST("/estimator/recalculate", handlers.HandleEstimatorRecalculate(cat))
		se.Router.POST("/estimator/clear", handlers.HandleEstimatorClear(cat))
		se.Router.POST("/estimator/export/{format}", handlers.HandleEstimatorExport(cat, time.Now))
		se.Router.POST("/estimator/quote", handlers.HandleQuoteRequest(app, cat, time.Now))

		// ── Cookie consent ───────────────────────────────────────
		se.Router.POST("/consent/{choice}", handlers.HandleConsent(cfg))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		zap.L().Fatal("main: server stopped", zap.Error(err))
	}
}
