package provider

import (
	"context"

	"fxsnapshot/internal/application"
	"fxsnapshot/internal/domain"
)

// Ensure Fake implements application.QuoteProvider.
var _ application.QuoteProvider = (*Fake)(nil)

type Fake struct {
	rates map[string]float64
}

func NewFake(rates map[string]float64) *Fake { return &Fake{rates: rates} }

func (f *Fake) Latest(_ context.Context, base string) (domain.QuoteResponse, error) {
	return domain.QuoteResponse{
		Base:  base,
		Rates: f.rates,
	}, nil
}
