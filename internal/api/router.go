package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/astrabot/odin-insight/internal/api/handlers"
	custommiddleware "github.com/astrabot/odin-insight/internal/api/middleware"
	"github.com/astrabot/odin-insight/internal/config"
	"github.com/astrabot/odin-insight/internal/locale"
	"github.com/astrabot/odin-insight/internal/odin"
	"github.com/astrabot/odin-insight/internal/service"
	"github.com/astrabot/odin-insight/internal/session"
	"github.com/astrabot/odin-insight/internal/ws"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	remarkService *service.RemarkService,
	settingsService *service.SettingsService,
	eventLogService *service.EventLogService,
	sessions *session.Manager,
	rates *odin.RateClient,
	catalog *locale.Catalog,
	hub *ws.Hub,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/session", func(r chi.Router) {
			sessionHandler := handlers.NewSessionHandler(sessions, remarkService, settingsService, rates)
			r.Post("/", sessionHandler.StartSession)

			r.Route("/{tokenId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateTokenIDMiddleware)
				r.Get("/", sessionHandler.GetSession)
				r.Delete("/", sessionHandler.EndSession)
				r.Post("/holders", sessionHandler.WarmHolders)

				r.Route("/holder/{accountId}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateAccountIDMiddleware)
					r.Get("/", sessionHandler.HolderStats)
				})
			})
		})

		r.Route("/remark", func(r chi.Router) {
			remarkHandler := handlers.NewRemarkHandler(remarkService)
			r.Get("/", remarkHandler.AllRemarks)
			r.Get("/export", remarkHandler.Export)
			r.With(custommiddleware.RequireAPIKey(settingsService)).Post("/import", remarkHandler.Import)

			r.Route("/{accountId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateAccountIDMiddleware)
				r.Get("/", remarkHandler.GetRemark)
				r.Put("/", remarkHandler.SaveRemark)
				r.Delete("/", remarkHandler.DeleteRemark)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(settingsService)
			r.Get("/", settingsHandler.GetSettings)
			r.Put("/", settingsHandler.UpdateSettings)
		})

		r.Route("/locale", func(r chi.Router) {
			localeHandler := handlers.NewLocaleHandler(catalog)
			r.Get("/{lang}", localeHandler.Strings)
		})

		r.Route("/logs", func(r chi.Router) {
			r.Use(custommiddleware.RequireAPIKey(settingsService))
			logHandler := handlers.NewLogHandler(eventLogService)
			r.Get("/", logHandler.GetLogs)
		})
	})

	wsHandler := handlers.NewWSHandler(hub, cfg.CORS.AllowedOrigins)
	r.Get("/ws", wsHandler.Serve)

	return r
}
