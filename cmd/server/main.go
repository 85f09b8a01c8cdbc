package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/astrabot/odin-insight/internal/api"
	"github.com/astrabot/odin-insight/internal/config"
	"github.com/astrabot/odin-insight/internal/database"
	"github.com/astrabot/odin-insight/internal/locale"
	"github.com/astrabot/odin-insight/internal/odin"
	"github.com/astrabot/odin-insight/internal/price"
	"github.com/astrabot/odin-insight/internal/repository"
	"github.com/astrabot/odin-insight/internal/service"
	"github.com/astrabot/odin-insight/internal/session"
	"github.com/astrabot/odin-insight/internal/ws"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	remarkRepo := repository.NewRemarkRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	eventLogRepo := repository.NewEventLogRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	eventLogService := service.NewEventLogService(eventLogRepo)
	remarkService := service.NewRemarkService(remarkRepo, eventLogService)
	settingsService, err := service.NewSettingsService(settingsRepo, cfg.FernetKey)
	if err != nil {
		log.Fatalf("Failed to create settings service: %v", err)
	}

	// Seed the developer API key if provided
	if cfg.APIKey != "" {
		if err := settingsService.SetAPIKey(context.Background(), cfg.APIKey); err != nil {
			log.Fatalf("Failed to store API key: %v", err)
		}
	}

	// Translated UI strings
	catalog, err := locale.NewCatalog()
	if err != nil {
		log.Fatalf("Failed to load locale catalog: %v", err)
	}

	// BTC/USD rate, refreshed on a schedule
	rates := odin.NewRateClient()
	if err := rates.Refresh(context.Background()); err != nil {
		log.Printf("Initial BTC/USD rate fetch failed: %v", err)
	}
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Price.RateRefreshSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := rates.Refresh(ctx); err != nil {
			log.Printf("BTC/USD rate refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule rate refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Websocket hub for price and statistics fan-out
	hub := ws.NewHub()
	go hub.Run()

	// Viewing sessions: one price observer per watched token
	activityClient := odin.NewActivityClient(cfg.Odin.APIBaseURL, cfg.Odin.PageSize, cfg.Odin.ActivityCap)
	observerFactory := func(tokenID string) *price.Observer {
		source := price.NewHTMLSource(cfg.Odin.PageBaseURL+"/token/"+tokenID, "Price")
		return price.NewObserver(source, cfg.Price.PollInterval)
	}
	sessions := session.NewManager(activityClient, hub, observerFactory)
	defer sessions.Shutdown()

	// Create router
	router := api.NewRouter(systemService, remarkService, settingsService, eventLogService, sessions, rates, catalog, hub, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
