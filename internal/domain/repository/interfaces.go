package repository

import (
	"context"

	"FinQuote/internal/domain/models"
)

// QuoteSource answers point-in-time quote lookups. Implementations are
// stateless per call; each call carries its own timeout via ctx.
type QuoteSource interface {
	FetchQuote(ctx context.Context, symbol string) (*models.Quote, error)
}

// HistorySource answers daily price series lookups.
type HistorySource interface {
	FetchHistory(ctx context.Context, symbol string, period Period) (*models.HistorySeries, error)
}

// SearchSource answers free-text symbol/name searches.
type SearchSource interface {
	FetchSearch(ctx context.Context, query string) (*models.SearchResults, error)
}

type Metrics interface {
	RecordResolution(query, source string)
	RecordProviderFailure(provider, reason string)
	RecordProviderLatency(provider string, seconds float64)
	RecordCacheHit(query string)
}
