package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"fxsnapshot/internal/application"
	"fxsnapshot/internal/domain"
	infraconfig "fxsnapshot/internal/infrastructure/config"
)

// ExchangeRateAPIProvider fetches quotes from the public exchangerate API:
// GET {BaseURL}/{base} returns {"base":..., "rates": {code: rate, ...}}.
type ExchangeRateAPIProvider struct {
	BaseURL string
	Client  *http.Client
}

var _ application.QuoteProvider = (*ExchangeRateAPIProvider)(nil)

func (p *ExchangeRateAPIProvider) Latest(ctx context.Context, base string) (domain.QuoteResponse, error) {
	if p.BaseURL == "" {
		return domain.QuoteResponse{}, errors.New("exchangerateapi: missing base url")
	}
	if !domain.ValidateCode(base) {
		return domain.QuoteResponse{}, fmt.Errorf("exchangerateapi: invalid base currency %q", base)
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.QuoteResponse{}, fmt.Errorf("exchangerateapi: invalid base url: %w", err)
	}
	u = u.JoinPath(base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.QuoteResponse{}, fmt.Errorf("exchangerateapi: create request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: infraconfig.DefaultRequestTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return domain.QuoteResponse{}, fmt.Errorf("exchangerateapi: %w: do request: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.QuoteResponse{}, fmt.Errorf("exchangerateapi: %w: status %d", domain.ErrNetwork, resp.StatusCode)
	}

	var body domain.QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.QuoteResponse{}, fmt.Errorf("exchangerateapi: %w: %v", domain.ErrDecode, err)
	}
	return body, nil
}
