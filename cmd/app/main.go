package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkani/billing/pkg/app"
	"github.com/mkani/billing/pkg/config"
	"github.com/mkani/billing/pkg/handlers"
	"github.com/mkani/billing/pkg/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialise service: %v", err)
	}
	defer a.Close()

	if a.Inbox == nil {
		log.Fatal("aws.notifications_table is required to serve the inbox")
	}

	// Create our handler
	handler := handlers.NewApiHandler(handlers.Dependencies{
		Wallets:   a.Store,
		Ledger:    a.Store,
		Invoices:  a.Billing,
		Packages:  a.Billing,
		Runner:    a.Runner,
		Scheduler: a.Scheduler,
		Rent:      a.Engine,
		TopUps:    a.Engine,
		Inbox:     a.Inbox,
	})

	router := handlers.NewRouter(handler, a.Store, logger)
	router.Get("/healthz", handlers.Health(a.Store))
	router.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: ":" + cfg.HTTP.Port, Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}()

	logger.Info("starting server", "port", cfg.HTTP.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	logger.Info("server stopped")
}
