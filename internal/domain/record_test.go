package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvertRate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		rate float64
		want float64
	}{
		{"usd", 0.2, 5.0},
		{"eur", 0.18, 5.5556},
		{"gbp", 0.16, 6.25},
		{"zero rate maps to zero", 0, 0},
		{"unit rate", 1, 1},
		{"rounds half away from zero", 0.3, 3.3333},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tc.want, InvertRate(tc.rate), 1e-9)
		})
	}
}

func TestRound4(t *testing.T) {
	t.Parallel()
	require.InDelta(t, 5.5556, Round4(5.55555), 1e-9)
	require.InDelta(t, 6.25, Round4(6.25), 1e-9)
	require.InDelta(t, -1.2346, Round4(-1.23456), 1e-9)
}

func TestIsWanted(t *testing.T) {
	t.Parallel()
	for _, c := range WantedCurrencies {
		require.True(t, IsWanted(c))
	}
	require.False(t, IsWanted("JPY"))
	require.False(t, IsWanted("usd"))
}

func TestValidateCode(t *testing.T) {
	t.Parallel()
	require.True(t, ValidateCode("USD"))
	require.False(t, ValidateCode("usd"))
	require.False(t, ValidateCode("USDT"))
	require.False(t, ValidateCode(""))
}
