package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/loftbook/engine/internal/api"
	"github.com/loftbook/engine/internal/api/handlers"
	"github.com/loftbook/engine/internal/repository"
	"github.com/loftbook/engine/internal/services"
	"github.com/loftbook/engine/pkg/config"
	"github.com/loftbook/engine/pkg/database"
	"github.com/loftbook/engine/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting loftbook engine",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	userRepo := repository.NewUserRepository(db)
	loftRepo := repository.NewLoftRepository(db)
	birdRepo := repository.NewBirdRepository(db)

	secret := []byte(cfg.JWTSecret)
	authSvc := services.NewAuthService(userRepo, secret, cfg.TokenTTL)
	loftSvc := services.NewLoftService(loftRepo, birdRepo)
	birdSvc := services.NewBirdService(birdRepo, loftRepo)

	router := api.NewRouter(api.Dependencies{
		HMACSecret:   secret,
		AuthHandler:  handlers.NewAuthHandler(authSvc),
		LoftsHandler: handlers.NewLoftsHandler(loftSvc),
		BirdsHandler: handlers.NewBirdsHandler(birdSvc),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
