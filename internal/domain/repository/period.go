package repository

// Period is the requested history window.
type Period string

const (
	P1D  Period = "1d"
	P5D  Period = "5d"
	P1Mo Period = "1mo"
	P3Mo Period = "3mo"
	P6Mo Period = "6mo"
	P1Y  Period = "1y"
)

// IsValidPeriod returns true if p is a supported period.
func IsValidPeriod(p Period) bool {
	switch p {
	case P1D, P5D, P1Mo, P3Mo, P6Mo, P1Y:
		return true
	default:
		return false
	}
}

// DefaultPeriod returns the default history window.
func DefaultPeriod() Period { return P1Mo }

// NormalizePeriod converts a raw string to a valid period (or default).
// Unrecognized input defaults silently rather than erroring.
func NormalizePeriod(s string) Period {
	if s == "" {
		return DefaultPeriod()
	}
	p := Period(s)
	if IsValidPeriod(p) {
		return p
	}
	return DefaultPeriod()
}

// Days maps a period to its synthesized day count. Unknown periods get
// the 30-day default.
func (p Period) Days() int {
	switch p {
	case P1D:
		return 1
	case P5D:
		return 5
	case P1Mo:
		return 30
	case P3Mo:
		return 90
	case P6Mo:
		return 180
	case P1Y:
		return 365
	default:
		return 30
	}
}
