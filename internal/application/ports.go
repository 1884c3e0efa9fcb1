package application

import (
	"context"

	"fxsnapshot/internal/domain"
)

// QuoteProvider fetches the current rates for one base currency.
type QuoteProvider interface {
	Latest(ctx context.Context, base string) (domain.QuoteResponse, error)
}

// RecordStore persists extracted records in order. Append reports
// (false, nil) for empty input and must not touch the backing resource
// in that case.
type RecordStore interface {
	EnsureInitialized(ctx context.Context) error
	Append(ctx context.Context, records []domain.RateRecord) (bool, error)
}

// RateMirror publishes the latest snapshot to a cache. Best effort:
// the run does not fail when publishing fails.
type RateMirror interface {
	Publish(ctx context.Context, records []domain.RateRecord) error
}
