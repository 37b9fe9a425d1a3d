package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/agroassist/engine/internal/advisory"
	"github.com/agroassist/engine/internal/queue/tasks"
	"github.com/agroassist/engine/internal/repository"
	"github.com/agroassist/engine/internal/services"
	"github.com/agroassist/engine/pkg/config"
	"github.com/agroassist/engine/pkg/database"
	"github.com/agroassist/engine/pkg/logger"
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

	db, err := database.OpenPostgres(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}

	scanRepo := repository.NewScanRepository(db)
	classifier := advisory.NewRandomClassifier(cfg.ScanProcessingDelay)
	scanHandler := tasks.NewScanTaskHandler(scanRepo, classifier)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		},
		asynq.Config{
			Concurrency: cfg.AsynqConcurrency,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(services.TaskScanProcess, scanHandler.HandleProcess)

	go func() {
		log.Info("worker starting", zap.Int("concurrency", cfg.AsynqConcurrency))
		if err := srv.Run(mux); err != nil {
			log.Fatal("asynq server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("shutdown signal received", zap.String("signal", sig.String()))

	srv.Shutdown()
	log.Info("worker exited gracefully")
}
