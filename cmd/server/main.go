package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/munchbox/munchbox/internal/auth"
	"github.com/munchbox/munchbox/internal/config"
	"github.com/munchbox/munchbox/internal/server"
	"github.com/munchbox/munchbox/internal/service"
	"github.com/munchbox/munchbox/internal/storage"
	"github.com/munchbox/munchbox/internal/storage/jsonfile"
	"github.com/munchbox/munchbox/internal/storage/sqlite"
	"github.com/munchbox/munchbox/pkg/logging"
)

func main() {
	configPath := flag.String("config", os.Getenv("MUNCHBOX_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.Log.Level))

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized",
		"backend", cfg.Storage.Backend,
		"persistence", cfg.Storage.Persistence,
	)

	authenticator := auth.NewStoreAuthenticator(store, auth.AdminCredential{
		Email:    cfg.Auth.AdminEmail,
		Password: cfg.Auth.AdminPassword,
		Hash:     cfg.Auth.AdminPasswordHash,
	})
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	srv := server.New(server.Services{
		Menu:      service.NewMenuService(store),
		Orders:    service.NewOrderService(store, cfg.Orders.StrictTransitions),
		Employees: service.NewEmployeeService(store),
		Reviews:   service.NewReviewService(store),
		Settings:  service.NewSettingsService(store),
		Users:     service.NewUserService(store),

		Authenticator: authenticator,
		JWT:           jwtManager,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return sqlite.New(cfg.Storage.SQLitePath)
	default:
		if cfg.Storage.Persistence == "discard" {
			return jsonfile.NewDiscard(cfg.Storage.Dir), nil
		}
		return jsonfile.New(cfg.Storage.Dir)
	}
}
