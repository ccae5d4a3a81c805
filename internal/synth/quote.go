package synth

import (
	"strings"
	"time"

	"FinQuote/internal/catalog"
	"FinQuote/internal/domain/models"
)

// Quote derives a plausible point-in-time quote for symbol. It never
// fails: known symbols are perturbed around their catalog baseline,
// unknown symbols are drawn from randomized bounds. All dependent
// fields are derived algebraically from price and change so the quote
// invariants hold by construction.
func (g *Generator) Quote(symbol string) *models.Quote {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var (
		name      string
		price     float64
		change    float64
		volume    int64
		marketCap int64
	)

	if base, ok := catalog.Lookup(symbol); ok {
		name = base.Name
		price = base.Price * (1 + g.uniform(-0.02, 0.02))
		change = base.Change + g.uniform(-0.5, 0.5)
		volume = base.Volume + g.intBetween(-1_000_000, 1_000_000)
		marketCap = base.MarketCap
	} else {
		name = symbol + " Corporation"
		price = g.uniform(50, 300)
		change = g.uniform(-10, 10)
		volume = g.intBetween(1_000_000, 50_000_000)
		marketCap = g.intBetween(10_000_000_000, 500_000_000_000)
	}

	return derive(symbol, name, price, change, volume, marketCap)
}

// derive computes the dependent quote fields from price and change.
func derive(symbol, name string, price, change float64, volume, marketCap int64) *models.Quote {
	previousClose := price - change

	// Guard the degenerate price == change case instead of dividing
	// by zero.
	changePercent := 0.0
	if previousClose != 0 {
		changePercent = change / previousClose * 100
	}

	abs := change
	if abs < 0 {
		abs = -abs
	}

	return &models.Quote{
		Symbol:        symbol,
		Name:          name,
		Price:         models.Round2(price),
		Change:        models.Round2(change),
		ChangePercent: models.Round2(changePercent),
		PreviousClose: models.Round2(previousClose),
		Open:          models.Round2(price - change*0.3),
		High:          models.Round2(price + abs*0.7),
		Low:           models.Round2(price - abs*0.8),
		Volume:        volume,
		MarketCap:     marketCap,
		Currency:      "USD",
		Exchange:      "NASDAQ/NYSE",
		LastUpdated:   time.Now().Format(time.RFC3339),
		DataSource:    models.SourceSynthetic,
		Status:        models.StatusSuccess,
		Note:          models.NoteSynthetic,
	}
}
