package models

import "math"

// Data source provenance tags.
const (
	SourceYahoo        = "yahoo_finance"
	SourceAlphaVantage = "alpha_vantage"
	SourceSynthetic    = "synthetic"
	SourceCatalog      = "catalog"
)

const (
	StatusSuccess = "success"

	// NoteSynthetic marks payloads whose values are fabricated.
	NoteSynthetic = "live data unavailable - showing synthesized data for demonstration"
)

// MaxSearchResults caps every search response.
const MaxSearchResults = 10

// Quote is a point-in-time snapshot for one instrument.
// Invariants: Change == Price - PreviousClose (within rounding),
// High >= max(Open, Price, Low), Low <= min(Open, Price, High).
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	PreviousClose float64 `json:"previous_close"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Volume        int64   `json:"volume"`
	MarketCap     int64   `json:"market_cap"`
	Currency      string  `json:"currency"`
	Exchange      string  `json:"exchange"`
	LastUpdated   string  `json:"last_updated"`
	DataSource    string  `json:"data_source"`
	Status        string  `json:"status"`
	Note          string  `json:"note,omitempty"`
}

// HistoryPoint is one calendar day of OHLCV data.
// Invariant: Low <= min(Open, Close) <= max(Open, Close) <= High.
type HistoryPoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// HistorySeries is a chronological (oldest first) day-by-day series
// with aggregates derived from the points.
type HistorySeries struct {
	Symbol             string         `json:"symbol"`
	Period             string         `json:"period"`
	History            []HistoryPoint `json:"history"`
	TotalReturnPercent float64        `json:"total_return_percent"`
	DataPoints         int            `json:"data_points"`
	StartPrice         float64        `json:"start_price"`
	EndPrice           float64        `json:"end_price"`
	DataSource         string         `json:"data_source"`
	Status             string         `json:"status"`
	Note               string         `json:"note,omitempty"`
}

// NewHistorySeries builds a series and computes the aggregate fields
// from the point sequence. Aggregates are never set independently.
func NewHistorySeries(symbol, period string, points []HistoryPoint, source string) *HistorySeries {
	s := &HistorySeries{
		Symbol:     symbol,
		Period:     period,
		History:    points,
		DataPoints: len(points),
		DataSource: source,
		Status:     StatusSuccess,
	}
	if len(points) > 0 {
		s.StartPrice = points[0].Close
		s.EndPrice = points[len(points)-1].Close
		if s.StartPrice != 0 {
			s.TotalReturnPercent = Round2((s.EndPrice - s.StartPrice) / s.StartPrice * 100)
		}
	}
	return s
}

// SearchResult is one instrument match.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Type     string `json:"type"`
	Sector   string `json:"sector"`
}

// SearchResults is a capped, ordered match list. Count always equals
// len(Results).
type SearchResults struct {
	Query      string         `json:"query"`
	Results    []SearchResult `json:"results"`
	Count      int            `json:"count"`
	DataSource string         `json:"data_source"`
	Status     string         `json:"status"`
	Note       string         `json:"note,omitempty"`
}

// Round2 rounds to two decimal places, the precision used on the wire.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
