package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/loftbook/engine/internal/queue/tasks"
	"github.com/loftbook/engine/internal/repository"
	"github.com/loftbook/engine/pkg/config"
	"github.com/loftbook/engine/pkg/database"
	"github.com/loftbook/engine/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.AsynqConcurrency,
	})

	db, err := database.OpenPostgres(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}

	loftRepo := repository.NewLoftRepository(db)
	birdRepo := repository.NewBirdRepository(db)

	handler := tasks.NewPurgeTaskHandler(loftRepo, birdRepo)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRetentionPurge, handler.HandlePurge)

	// Enqueue the purge once a day; workers pick it up like any other task.
	scheduler := asynq.NewScheduler(redisOpt, nil)
	purgeTask, err := tasks.NewPurgeTask(cfg.PurgeRetentionDays)
	if err != nil {
		log.Fatal("failed to build purge task", zap.Error(err))
	}
	if _, err := scheduler.Register("@every 24h", purgeTask); err != nil {
		log.Fatal("failed to register purge schedule", zap.Error(err))
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("asynq worker starting", zap.Int("concurrency", cfg.AsynqConcurrency))
		if err := srv.Run(mux); err != nil {
			errCh <- err
		}
	}()
	go func() {
		if err := scheduler.Run(); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("worker stopped with error", zap.Error(err))
	}

	scheduler.Shutdown()
	srv.Shutdown()
}
