package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePeriod(t *testing.T) {
	cases := []struct {
		in   string
		want Period
	}{
		{"", P1Mo},
		{"1d", P1D},
		{"5d", P5D},
		{"1mo", P1Mo},
		{"3mo", P3Mo},
		{"6mo", P6Mo},
		{"1y", P1Y},
		{"2y", P1Mo},
		{"garbage", P1Mo},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, NormalizePeriod(tc.in), "input %q", tc.in)
	}
}

func TestPeriodDays(t *testing.T) {
	cases := []struct {
		p    Period
		want int
	}{
		{P1D, 1},
		{P5D, 5},
		{P1Mo, 30},
		{P3Mo, 90},
		{P6Mo, 180},
		{P1Y, 365},
		{Period("unknown"), 30},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, tc.p.Days(), "period %s", tc.p)
	}
}

func TestIsValidPeriod(t *testing.T) {
	require.True(t, IsValidPeriod(P1Y))
	require.False(t, IsValidPeriod(Period("10y")))
}
