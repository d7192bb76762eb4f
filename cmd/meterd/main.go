package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SiliconMeter/internal/config"
	"SiliconMeter/internal/feed"
	"SiliconMeter/internal/poller"
	"SiliconMeter/internal/recorder"
	"SiliconMeter/internal/server"
	"SiliconMeter/internal/snapshot"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SiliconMeter starting...")

	// Optional .env for local development
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher feed.Fetcher
	if cfg.Feed.URL != "" {
		fetcher = feed.NewHTTPFetcher(cfg.Feed.URL, cfg.Proxy)
	} else {
		log.Println("[WARN] no feed.url configured, serving demo data")
		fetcher = &feed.MockFetcher{}
	}
	log.Printf("[INFO] feed source: %s", fetcher.Name())

	// Init snapshot store
	store := snapshot.NewStore()

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init poller
	pol := poller.NewPoller(ctx, fetcher, store, rec)
	if err := pol.Register(cfg.Schedule.PollCron); err != nil {
		log.Fatalf("[FATAL] register poll task: %v", err)
	}
	pol.Start()
	defer pol.Stop()

	// Initial load so the dashboard has data before the first tick
	go pol.RunNow()

	// HTTP server
	router := server.NewRouter(&server.Handler{Store: store, NewsItems: cfg.News})
	srv := &http.Server{Addr: cfg.Server.ListenAddr, Handler: router}
	go func() {
		log.Printf("[INFO] serving dashboard API on %s", cfg.Server.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] SiliconMeter is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] SiliconMeter stopped")
}
