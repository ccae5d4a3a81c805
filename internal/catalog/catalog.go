// Package catalog holds the static seed table of known symbols and
// their baseline fundamentals. It is initialized once at process start
// and never mutated.
package catalog

import (
	"sort"
	"strings"

	"FinQuote/internal/domain/models"
)

// Entry is the baseline fundamentals for one known symbol.
type Entry struct {
	Name      string
	Price     float64
	Change    float64
	Volume    int64
	MarketCap int64
}

var entries = map[string]Entry{
	"AAPL":  {Name: "Apple Inc.", Price: 175.50, Change: 2.30, Volume: 45_000_000, MarketCap: 2_800_000_000_000},
	"GOOGL": {Name: "Alphabet Inc. Class A", Price: 139.25, Change: -1.85, Volume: 28_000_000, MarketCap: 1_750_000_000_000},
	"MSFT":  {Name: "Microsoft Corporation", Price: 378.90, Change: 4.20, Volume: 22_000_000, MarketCap: 2_900_000_000_000},
	"AMZN":  {Name: "Amazon.com Inc.", Price: 142.80, Change: -0.95, Volume: 35_000_000, MarketCap: 1_500_000_000_000},
	"TSLA":  {Name: "Tesla Inc.", Price: 248.50, Change: 8.75, Volume: 85_000_000, MarketCap: 790_000_000_000},
	"META":  {Name: "Meta Platforms Inc.", Price: 298.35, Change: -2.15, Volume: 18_000_000, MarketCap: 750_000_000_000},
	"NVDA":  {Name: "NVIDIA Corporation", Price: 875.30, Change: 15.60, Volume: 40_000_000, MarketCap: 2_100_000_000_000},
	"NFLX":  {Name: "Netflix Inc.", Price: 425.70, Change: -3.45, Volume: 12_000_000, MarketCap: 185_000_000_000},
	"AMD":   {Name: "Advanced Micro Devices Inc.", Price: 142.90, Change: 3.80, Volume: 38_000_000, MarketCap: 230_000_000_000},
	"CRM":   {Name: "Salesforce Inc.", Price: 215.40, Change: 1.25, Volume: 8_500_000, MarketCap: 210_000_000_000},
}

// Lookup returns the entry for a symbol, case-insensitively.
func Lookup(symbol string) (Entry, bool) {
	e, ok := entries[strings.ToUpper(strings.TrimSpace(symbol))]
	return e, ok
}

// Symbols returns all known symbols in sorted order.
func Symbols() []string {
	out := make([]string, 0, len(entries))
	for s := range entries {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Search matches query case-insensitively against symbol keys and
// display names, capped at models.MaxSearchResults. The catalog
// carries no exchange or sector fields, so matches report fixed
// placeholders.
func Search(query string) []models.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	out := make([]models.SearchResult, 0, 4)
	for _, sym := range Symbols() {
		e := entries[sym]
		if !strings.Contains(strings.ToLower(sym), q) && !strings.Contains(strings.ToLower(e.Name), q) {
			continue
		}
		out = append(out, models.SearchResult{
			Symbol:   sym,
			Name:     e.Name,
			Exchange: "NASDAQ",
			Type:     "EQUITY",
			Sector:   "Technology",
		})
		if len(out) >= models.MaxSearchResults {
			break
		}
	}
	return out
}
