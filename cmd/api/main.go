package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/agroassist/engine/internal/api"
	"github.com/agroassist/engine/internal/api/handlers"
	"github.com/agroassist/engine/internal/repository"
	"github.com/agroassist/engine/internal/services"
	"github.com/agroassist/engine/internal/token"
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

	log.Info("starting agroassist api",
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
	scanRepo := repository.NewScanRepository(db)

	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		log.Warn("JWT_SECRET not set, using default (INSECURE for production)")
		jwtSecret = []byte("change-me-in-production-please")
	}
	issuer := token.NewJWTIssuer(jwtSecret, 24*time.Hour)

	queue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer queue.Close()

	authSvc := services.NewAuthService(userRepo, issuer, cfg.BcryptCost)
	advisorSvc := services.NewAdvisorService()
	scanSvc := services.NewScanService(scanRepo, queue)

	router := api.NewRouter(api.Dependencies{
		TokenIssuer:     issuer,
		AuthHandler:     handlers.NewAuthHandler(authSvc),
		AdvisoryHandler: handlers.NewAdvisoryHandler(advisorSvc),
		ScansHandler:    handlers.NewScansHandler(scanSvc),
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
