package domain

import "regexp"

type Currency string

// WantedCurrencies is the fixed set of codes extracted on every run,
// in the order their rows are appended.
var WantedCurrencies = []Currency{"USD", "EUR", "GBP"}

var codeRe = regexp.MustCompile(`^[A-Z]{3}$`)

func ValidateCode(c string) bool {
	return codeRe.MatchString(c)
}

func IsWanted(c Currency) bool {
	for _, w := range WantedCurrencies {
		if w == c {
			return true
		}
	}
	return false
}
