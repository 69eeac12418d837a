package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"staff-scheduler-backend/config"
	"staff-scheduler-backend/internal/api"
	"staff-scheduler-backend/internal/db"
	"staff-scheduler-backend/internal/history"
	"staff-scheduler-backend/internal/notification"
	"staff-scheduler-backend/internal/persist"
	"staff-scheduler-backend/internal/solver"
	"staff-scheduler-backend/internal/state"
)

func main() {
	logger := log.New(os.Stdout, "schedulerd ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	if cfg.Solver.BaseURL == "" {
		logger.Fatalf("solver.base_url must be configured")
	}

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Live stores and their coordinator.
	planner := state.NewPlannerStore()
	staff := state.NewStaffStore(planner.DefinedRoles, nil)
	unavailability := state.NewUnavailabilityStore(nil)
	coordinator := state.NewCoordinator(staff, unavailability, planner)

	// Durable key-value layer and history hydration.
	kv := persist.NewKV(gormDB)
	historyStore := history.NewStore(kv, nil, nil, cfg.History.MaxRecords)
	if records, err := kv.LoadRecords(); err != nil {
		logger.Printf("Warning: failed to load persisted history: %v", err)
	} else if len(records) > 0 {
		historyStore.Hydrate(records)
		logger.Printf("restored %d history records", len(records))
	}

	solverClient := solver.NewClient(cfg.Solver.BaseURL, cfg.Solver.Timeout)

	// Push notifications are optional; without VAPID keys the pool stays off.
	var pool *notification.WorkerPool
	var webpushOptions *webpush.Options
	if cfg.Push.PublicKey != "" && cfg.Push.PrivateKey != "" {
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		pool = notification.NewWorkerPool(cfg.WorkerPool.Size, gormDB, webpushOptions)
		pool.Start(ctx)
		logger.Printf("notification worker pool started with %d workers", cfg.WorkerPool.Size)
	} else {
		logger.Println("VAPID keys not configured; push notifications disabled")
	}

	handler := api.NewHandler(api.Deps{
		Coordinator: coordinator,
		History:     historyStore,
		KV:          kv,
		Solver:      solverClient,
		Pool:        pool,
		DB:          gormDB,
		WebPush:     webpushOptions,
	})
	router := api.NewRouter(handler, api.RouterOptions{
		RateLimitPerSec: cfg.Server.RateLimitPerSec,
		RateLimitBurst:  cfg.Server.RateLimitBurst,
		CacheTTL:        time.Duration(cfg.Server.CacheTTLSeconds) * time.Second,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
