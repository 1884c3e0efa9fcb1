package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"fxsnapshot/internal/application"
	"fxsnapshot/internal/domain"
	"go.uber.org/zap"
)

var header = []string{"data", "moeda", "valor"}

var _ application.RecordStore = (*Store)(nil)

// Store appends rate records to a comma-separated file with a fixed
// header row. The file is only ever opened for append; existing rows
// are never rewritten.
type Store struct {
	Path string
	Log  *zap.Logger
}

func New(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{Path: path, Log: log}
}

// EnsureInitialized creates the file with the header row when it does
// not exist yet. Safe to call before every append.
func (s *Store) EnsureInitialized(context.Context) error {
	if _, err := os.Stat(s.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", domain.ErrPersistence, s.Path, err)
	}
	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrPersistence, s.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: write header: %v", domain.ErrPersistence, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: write header: %v", domain.ErrPersistence, err)
	}
	s.Log.Info("store_initialized", zap.String("path", s.Path))
	return nil
}

// Append writes one row per record, preserving input order. Empty input
// is a no-op reported as (false, nil) without touching the file.
func (s *Store) Append(ctx context.Context, records []domain.RateRecord) (bool, error) {
	if len(records) == 0 {
		s.Log.Warn("nothing_to_append", zap.String("path", s.Path))
		return false, nil
	}
	if err := s.EnsureInitialized(ctx); err != nil {
		return false, err
	}

	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return false, fmt.Errorf("%w: open %s: %v", domain.ErrPersistence, s.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, r := range records {
		row := []string{
			r.QuotedAt.Format(domain.TimestampLayout),
			string(r.Code),
			strconv.FormatFloat(r.Value, 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			return false, fmt.Errorf("%w: write row: %v", domain.ErrPersistence, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return false, fmt.Errorf("%w: flush: %v", domain.ErrPersistence, err)
	}
	s.Log.Info("records_appended",
		zap.Int("count", len(records)),
		zap.String("path", s.Path))
	return true, nil
}
