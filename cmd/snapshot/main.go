package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"fxsnapshot/internal/bootstrap"
	"fxsnapshot/internal/config"
	"fxsnapshot/internal/infrastructure/logx"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() { os.Exit(run()) }

func run() int {
	logger := logx.L().With(zap.String("run_id", uuid.NewString()))
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Info("snapshot_started",
		zap.String("base", cfg.BaseCurrency),
		zap.String("storage", cfg.Storage))

	svc, cleanup, err := bootstrap.InitSnapshot(ctx, cfg, logger)
	if err != nil {
		logger.Error("bootstrap_failed", zap.Error(err))
		return 1
	}
	defer cleanup()

	if err := svc.Run(ctx); err != nil {
		// An interrupt is a graceful stop, not a failure.
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			logger.Info("interrupted")
			return 0
		}
		logger.Error("snapshot_failed", zap.Error(err))
		return 1
	}
	logger.Info("snapshot_done")
	return 0
}
