package redisstore

import (
	"context"
	"strconv"
	"time"

	"fxsnapshot/internal/application"
	"fxsnapshot/internal/domain"
	"github.com/redis/go-redis/v9"
)

var _ application.RateMirror = (*Mirror)(nil)

// Mirror keeps the latest value per currency in Redis so other services
// can read the most recent snapshot without scanning the record store.
type Mirror struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Mirror {
	return &Mirror{Client: client, TTL: ttl}
}

func (m *Mirror) Publish(ctx context.Context, records []domain.RateRecord) error {
	for _, r := range records {
		key := "rate:" + string(r.Code)
		val := strconv.FormatFloat(r.Value, 'f', 4, 64)
		if err := m.Client.Set(ctx, key, val, m.TTL).Err(); err != nil {
			return err
		}
	}
	return nil
}
