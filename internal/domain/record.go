package domain

import (
	"math"
	"time"
)

// TimestampLayout is the wall-clock format written to the record store.
const TimestampLayout = "2006-01-02 15:04:05"

// QuoteResponse is the decoded body of one quotes request. Rates gives
// units of each foreign currency per one unit of the base currency.
type QuoteResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// RateRecord is one appended row: the base-currency price of one unit
// of Code, observed at QuotedAt.
type RateRecord struct {
	QuotedAt time.Time
	Code     Currency
	Value    float64
}

// InvertRate converts "foreign units per one base unit" into the
// base-currency price of one foreign unit, rounded to 4 digits.
// A zero rate maps to value 0.
func InvertRate(r float64) float64 {
	if r == 0 {
		return 0
	}
	return Round4(1 / r)
}

// Round4 rounds half away from zero to 4 fractional digits.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
