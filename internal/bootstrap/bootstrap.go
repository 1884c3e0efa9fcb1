package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"fxsnapshot/internal/application"
	"fxsnapshot/internal/config"
	"fxsnapshot/internal/infrastructure/csvstore"
	"fxsnapshot/internal/infrastructure/pg"
	"fxsnapshot/internal/infrastructure/provider"
	redisstore "fxsnapshot/internal/infrastructure/redis"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildStore selects the record store backend from STORAGE ("csv" default).
func BuildStore(ctx context.Context, cfg config.Config, log *zap.Logger) (application.RecordStore, func(), error) {
	switch cfg.Storage {
	case "", "csv":
		return csvstore.New(cfg.OutputFile, log), func() {}, nil
	case "pg":
		if cfg.DatabaseURL == "" {
			return nil, func() {}, fmt.Errorf("DATABASE_URL is required for STORAGE=pg")
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, func() {}, err
		}
		cleanup := func() {
			log.Info("closing pg")
			db.Close()
		}
		return pg.NewRecordStore(db), cleanup, nil
	default:
		return nil, func() {}, fmt.Errorf("unsupported STORAGE=%q", cfg.Storage)
	}
}

// BuildProvider returns the quotes provider ("http" default, "fake" for dev).
func BuildProvider(cfg config.Config) application.QuoteProvider {
	switch cfg.Provider {
	case "fake":
		return provider.NewFake(map[string]float64{"USD": 0.2, "EUR": 0.18, "GBP": 0.16})
	default:
		return &provider.ExchangeRateAPIProvider{
			BaseURL: cfg.ExchangeAPIBase,
			Client:  &http.Client{Timeout: cfg.RequestTimeout},
		}
	}
}

// BuildMirror returns the optional latest-rate mirror (MIRROR=redis).
func BuildMirror(cfg config.Config) (application.RateMirror, func(), error) {
	if cfg.Mirror != "redis" {
		return nil, func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return redisstore.New(rdb, cfg.RedisTTL), func() { _ = rdb.Close() }, nil
}

// InitSnapshot wires the full snapshot service from config.
func InitSnapshot(ctx context.Context, cfg config.Config, log *zap.Logger) (*application.SnapshotService, func(), error) {
	store, closeStore, err := BuildStore(ctx, cfg, log)
	if err != nil {
		return nil, func() {}, err
	}
	mirror, closeMirror, err := BuildMirror(cfg)
	if err != nil {
		closeStore()
		return nil, func() {}, err
	}
	opts := []application.Option{application.WithLogger(log)}
	if mirror != nil {
		opts = append(opts, application.WithMirror(mirror))
	}
	svc := application.NewSnapshotService(BuildProvider(cfg), store, cfg.BaseCurrency, opts...)
	cleanup := func() {
		closeMirror()
		closeStore()
	}
	return svc, cleanup, nil
}
