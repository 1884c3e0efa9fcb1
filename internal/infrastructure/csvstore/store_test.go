package csvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fxsnapshot/internal/domain"
	"fxsnapshot/internal/infrastructure/csvstore"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *csvstore.Store {
	t.Helper()
	return csvstore.New(filepath.Join(t.TempDir(), "cotacoes.csv"), nil)
}

func record(code string, value float64) domain.RateRecord {
	return domain.RateRecord{
		QuotedAt: time.Date(2025, 8, 19, 12, 0, 0, 0, time.Local),
		Code:     domain.Currency(code),
		Value:    value,
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestEnsureInitialized_Idempotent(t *testing.T) {
	t.Parallel()
	s := tempStore(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureInitialized(ctx))
	require.NoError(t, s.EnsureInitialized(ctx))

	lines := readLines(t, s.Path)
	require.Equal(t, []string{"data,moeda,valor"}, lines)
}

func TestAppend_Empty_NoOp(t *testing.T) {
	t.Parallel()
	s := tempStore(t)

	written, err := s.Append(context.Background(), nil)
	require.NoError(t, err)
	require.False(t, written)

	_, err = os.Stat(s.Path)
	require.True(t, os.IsNotExist(err))
}

func TestAppend_WritesHeaderAndRows(t *testing.T) {
	t.Parallel()
	s := tempStore(t)

	written, err := s.Append(context.Background(), []domain.RateRecord{
		record("USD", 5),
		record("EUR", 5.5556),
		record("GBP", 6.25),
	})
	require.NoError(t, err)
	require.True(t, written)

	lines := readLines(t, s.Path)
	require.Len(t, lines, 4)
	require.Equal(t, "data,moeda,valor", lines[0])
	require.Equal(t, "2025-08-19 12:00:00,USD,5.0000", lines[1])
	require.Equal(t, "2025-08-19 12:00:00,EUR,5.5556", lines[2])
	require.Equal(t, "2025-08-19 12:00:00,GBP,6.2500", lines[3])
}

func TestAppend_PreservesOrderAcrossCalls(t *testing.T) {
	t.Parallel()
	s := tempStore(t)
	ctx := context.Background()

	_, err := s.Append(ctx, []domain.RateRecord{record("USD", 5)})
	require.NoError(t, err)
	_, err = s.Append(ctx, []domain.RateRecord{record("EUR", 5.5556)})
	require.NoError(t, err)
	_, err = s.Append(ctx, []domain.RateRecord{record("GBP", 6.25)})
	require.NoError(t, err)

	lines := readLines(t, s.Path)
	require.Len(t, lines, 4)
	require.Contains(t, lines[1], "USD")
	require.Contains(t, lines[2], "EUR")
	require.Contains(t, lines[3], "GBP")
}

func TestAppend_SurfacesPersistenceError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// The store path is a directory, so creation must fail.
	s := csvstore.New(dir, nil)

	_, err := s.Append(context.Background(), []domain.RateRecord{record("USD", 5)})
	require.ErrorIs(t, err, domain.ErrPersistence)
}
