package synth

import (
	"strings"
	"time"

	"FinQuote/internal/domain/models"
	"FinQuote/internal/domain/repository"
)

// History derives a day-by-day price series anchored to a synthetic
// quote for symbol, using a bounded random walk. Dates are consecutive
// calendar days ending today, oldest first. It never fails; aggregates
// are computed from the generated sequence.
func (g *Generator) History(symbol string, period repository.Period) *models.HistorySeries {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	days := period.Days()

	anchor := g.Quote(symbol).Price

	points := make([]models.HistoryPoint, 0, days)
	now := time.Now()
	prevClose := 0.0
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - i - 1)).Format("2006-01-02")

		var closePrice float64
		if i == 0 {
			// Extra jitter on the very first point so series do not
			// all start from an identical baseline.
			closePrice = anchor * (1 + g.uniform(-0.1, 0.1))
		} else {
			closePrice = prevClose * (1 + g.uniform(-0.03, 0.03))
		}
		openPrice := closePrice * (1 + g.uniform(-0.01, 0.01))

		// High/low bound max/min(open, close) rather than close alone,
		// which keeps the per-point ordering valid for any draw.
		hi, lo := closePrice, closePrice
		if openPrice > hi {
			hi = openPrice
		}
		if openPrice < lo {
			lo = openPrice
		}
		high := hi * (1 + g.uniform(0, 0.02))
		low := lo * (1 - g.uniform(0, 0.02))

		points = append(points, models.HistoryPoint{
			Date:   date,
			Open:   models.Round2(openPrice),
			High:   models.Round2(high),
			Low:    models.Round2(low),
			Close:  models.Round2(closePrice),
			Volume: g.intBetween(1_000_000, 20_000_000),
		})
		prevClose = closePrice
	}

	series := models.NewHistorySeries(symbol, string(period), points, models.SourceSynthetic)
	series.Note = models.NoteSynthetic
	return series
}
