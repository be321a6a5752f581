package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/formbridge/formbridge/internal/auth"
	"github.com/formbridge/formbridge/internal/config"
	"github.com/formbridge/formbridge/internal/handler"
	"github.com/formbridge/formbridge/internal/logger"
	"github.com/formbridge/formbridge/internal/router"
	"github.com/formbridge/formbridge/internal/storage"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.GelfAddr)
	if err != nil {
		// GELF is best-effort; fall back to stderr-only logging.
		log, _ = logger.New(cfg.LogLevel, "")
		log.Warn("GELF init failed, logging to stderr only", zap.Error(err))
	}
	defer log.Sync()

	ds, err := storage.New(cfg)
	if err != nil {
		log.Fatal("failed to open datastore", zap.Error(err))
	}
	if closer, ok := ds.(interface{ Close() error }); ok {
		defer closer.Close()
	}
	log.Info("datastore ready", zap.String("backend", cfg.Datastore))

	adminHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatal("failed to hash admin password", zap.Error(err))
	}

	// Handlers
	authH := handler.NewAuthHandler(cfg.AdminEmail, adminHash, cfg.JWTSecret, log)
	intakeH := handler.NewIntakeHandler(ds, log)
	subH := handler.NewSubmissionHandler(ds, log)
	adminH, err := handler.NewAdminHandler(ds, log)
	if err != nil {
		log.Fatal("failed to parse admin templates", zap.Error(err))
	}

	r := router.New(log, cfg.JWTSecret, authH, intakeH, subH, adminH)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
