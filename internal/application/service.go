package application

import (
	"context"

	"fxsnapshot/internal/domain"
	"go.uber.org/zap"
)

type SnapshotService struct {
	provider QuoteProvider
	store    RecordStore
	mirror   RateMirror
	base     string
	clock    Clock
	log      *zap.Logger
}

type Option func(*SnapshotService)

func WithClock(c Clock) Option       { return func(s *SnapshotService) { s.clock = c } }
func WithMirror(m RateMirror) Option { return func(s *SnapshotService) { s.mirror = m } }
func WithLogger(l *zap.Logger) Option {
	return func(s *SnapshotService) { s.log = l }
}

func NewSnapshotService(provider QuoteProvider, store RecordStore, base string, opts ...Option) *SnapshotService {
	s := &SnapshotService{
		provider: provider,
		store:    store,
		base:     base,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Run executes one fetch -> extract -> append pass.
func (s *SnapshotService) Run(ctx context.Context) error {
	s.log.Info("querying_quotes", zap.String("base", s.base))
	resp, err := s.provider.Latest(ctx, s.base)
	if err != nil {
		s.log.Error("fetch_failed", zap.Error(err))
		return err
	}
	s.log.Info("quotes_received", zap.Int("rates", len(resp.Rates)))

	records, err := s.Extract(resp)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		s.log.Error("no_records_extracted", zap.String("base", s.base))
		return ErrNoRecords
	}

	if _, err := s.store.Append(ctx, records); err != nil {
		s.log.Error("append_failed", zap.Error(err))
		return err
	}
	s.log.Info("records_saved", zap.Int("count", len(records)))

	if s.mirror != nil {
		if err := s.mirror.Publish(ctx, records); err != nil {
			s.log.Warn("mirror_failed", zap.Error(err))
		}
	}
	return nil
}

// Extract builds one record per wanted currency present in resp, in the
// wanted order. The upstream rates are foreign units per one base unit,
// so each value is the inverted rate. Codes absent from the response are
// skipped with a warning; a response without a rates mapping fails with
// domain.ErrMissingRates.
func (s *SnapshotService) Extract(resp domain.QuoteResponse) ([]domain.RateRecord, error) {
	if resp.Rates == nil {
		s.log.Error("rates_field_missing", zap.String("base", s.base))
		return nil, domain.ErrMissingRates
	}
	now := s.clock.Now()
	records := make([]domain.RateRecord, 0, len(domain.WantedCurrencies))
	for _, code := range domain.WantedCurrencies {
		rate, ok := resp.Rates[string(code)]
		if !ok {
			s.log.Warn("currency_not_in_response", zap.String("code", string(code)))
			continue
		}
		value := domain.InvertRate(rate)
		records = append(records, domain.RateRecord{
			QuotedAt: now,
			Code:     code,
			Value:    value,
		})
		s.log.Info("rate_extracted",
			zap.String("code", string(code)),
			zap.Float64("value", value))
	}
	return records, nil
}
