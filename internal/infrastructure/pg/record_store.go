package pg

import (
	"context"
	"fmt"

	"fxsnapshot/internal/application"
	"fxsnapshot/internal/domain"
)

var _ application.RecordStore = (*RecordStore)(nil)

// RecordStore appends rate records to a Postgres table. It mirrors the
// CSV store contract: initialization is idempotent and rows are only
// ever inserted, never rewritten.
type RecordStore struct{ db *DB }

func NewRecordStore(db *DB) *RecordStore { return &RecordStore{db: db} }

func (r *RecordStore) EnsureInitialized(ctx context.Context) error {
	const q = `
        CREATE TABLE IF NOT EXISTS rate_records(
            id        BIGSERIAL PRIMARY KEY,
            quoted_at TIMESTAMP NOT NULL,
            currency  TEXT NOT NULL,
            value     NUMERIC(18,4) NOT NULL
        )`
	if _, err := r.db.Pool.Exec(ctx, q); err != nil {
		return fmt.Errorf("%w: ensure table: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (r *RecordStore) Append(ctx context.Context, records []domain.RateRecord) (bool, error) {
	if len(records) == 0 {
		return false, nil
	}
	if err := r.EnsureInitialized(ctx); err != nil {
		return false, err
	}
	const ins = `INSERT INTO rate_records(quoted_at, currency, value) VALUES ($1, $2, $3)`
	for _, rec := range records {
		if _, err := r.db.Pool.Exec(ctx, ins, rec.QuotedAt, string(rec.Code), rec.Value); err != nil {
			return false, fmt.Errorf("%w: insert %s: %v", domain.ErrPersistence, rec.Code, err)
		}
	}
	return true, nil
}
