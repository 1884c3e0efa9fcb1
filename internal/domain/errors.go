package domain

import "errors"

var (
	ErrNetwork      = errors.New("network failure")
	ErrDecode       = errors.New("malformed response body")
	ErrMissingRates = errors.New("rates field missing")
	ErrPersistence  = errors.New("persistence failure")
)
