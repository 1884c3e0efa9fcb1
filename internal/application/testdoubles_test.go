package application

import (
	"context"
	"time"

	"fxsnapshot/internal/domain"
)

type fakeProvider struct {
	out domain.QuoteResponse
	err error
}

func (f *fakeProvider) Latest(context.Context, string) (domain.QuoteResponse, error) {
	if f.err != nil {
		return domain.QuoteResponse{}, f.err
	}
	return f.out, nil
}

type fakeStore struct {
	appended []domain.RateRecord
	calls    int
	err      error
}

func (f *fakeStore) EnsureInitialized(context.Context) error {
	return f.err
}

func (f *fakeStore) Append(_ context.Context, records []domain.RateRecord) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if len(records) == 0 {
		return false, nil
	}
	f.calls++
	f.appended = append(f.appended, records...)
	return true, nil
}

type fakeMirror struct {
	published []domain.RateRecord
	err       error
}

func (f *fakeMirror) Publish(_ context.Context, records []domain.RateRecord) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, records...)
	return nil
}

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }
