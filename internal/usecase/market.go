package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"FinQuote/internal/catalog"
	"FinQuote/internal/domain/models"
	drepo "FinQuote/internal/domain/repository"
	"FinQuote/internal/synth"
	"FinQuote/pkg/cache"
	applogger "FinQuote/pkg/logger"
)

// Timeouts bounds each provider class's attempt.
type Timeouts struct {
	Quote   time.Duration
	History time.Duration
	Search  time.Duration
}

// CacheTTLs controls response cache lifetimes. History is never
// cached; every series is generated or fetched fresh.
type CacheTTLs struct {
	Quote  time.Duration
	Search time.Duration
}

// MarketResolver answers quote, history, and search queries through
// ordered provider chains ending in an always-succeeding fallback.
type MarketResolver struct {
	yahooQuote   drepo.QuoteSource
	alphaQuote   drepo.QuoteSource
	yahooHistory drepo.HistorySource
	yahooSearch  drepo.SearchSource
	gen          *synth.Generator
	cache        cache.Service
	log          *applogger.Logger
	metrics      drepo.Metrics
	timeouts     Timeouts
	ttls         CacheTTLs
}

// NewMarketResolver wires the resolver. cache may be nil to disable
// response caching.
func NewMarketResolver(
	yahooQuote drepo.QuoteSource,
	alphaQuote drepo.QuoteSource,
	yahooHistory drepo.HistorySource,
	yahooSearch drepo.SearchSource,
	gen *synth.Generator,
	c cache.Service,
	l *applogger.Logger,
	m drepo.Metrics,
	timeouts Timeouts,
	ttls CacheTTLs,
) *MarketResolver {
	if timeouts.Quote == 0 {
		timeouts.Quote = 5 * time.Second
	}
	if timeouts.History == 0 {
		timeouts.History = 8 * time.Second
	}
	if timeouts.Search == 0 {
		timeouts.Search = 5 * time.Second
	}
	return &MarketResolver{
		yahooQuote:   yahooQuote,
		alphaQuote:   alphaQuote,
		yahooHistory: yahooHistory,
		yahooSearch:  yahooSearch,
		gen:          gen,
		cache:        c,
		log:          l,
		metrics:      m,
		timeouts:     timeouts,
		ttls:         ttls,
	}
}

// GetQuote resolves a quote through [yahoo, alphavantage, synthetic].
func (r *MarketResolver) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	key := fmt.Sprintf("quote:%s", symbol)

	if r.cache != nil {
		var cached models.Quote
		if err := r.cache.Get(ctx, key, &cached); err == nil {
			r.metrics.RecordCacheHit("quote")
			return &cached, nil
		}
	}

	providers := []Provider[*models.Quote]{
		{
			Name:    models.SourceYahoo,
			Timeout: r.timeouts.Quote,
			Fetch: func(ctx context.Context) (*models.Quote, error) {
				return r.yahooQuote.FetchQuote(ctx, symbol)
			},
		},
		{
			Name:    models.SourceAlphaVantage,
			Timeout: r.timeouts.Quote,
			Fetch: func(ctx context.Context) (*models.Quote, error) {
				return r.alphaQuote.FetchQuote(ctx, symbol)
			},
		},
		{
			Name: models.SourceSynthetic,
			Fetch: func(ctx context.Context) (*models.Quote, error) {
				return r.gen.Quote(symbol), nil
			},
		},
	}

	quote, source, err := resolveChain(ctx, providers, validQuote, r.log, r.metrics)
	if err != nil {
		return nil, err
	}
	r.metrics.RecordResolution("quote", source)
	r.log.Debug("quote resolved",
		applogger.String("symbol", symbol),
		applogger.String("source", source),
		applogger.Float64("price", quote.Price),
		applogger.Int64("volume", quote.Volume),
	)

	if r.cache != nil {
		if cerr := r.cache.Set(ctx, key, quote, r.ttls.Quote); cerr != nil {
			r.log.Warn("quote cache write failed", applogger.Error(cerr))
		}
	}
	return quote, nil
}

// GetHistory resolves a daily series through [yahoo, synthetic].
func (r *MarketResolver) GetHistory(ctx context.Context, symbol string, period drepo.Period) (*models.HistorySeries, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	providers := []Provider[*models.HistorySeries]{
		{
			Name:    models.SourceYahoo,
			Timeout: r.timeouts.History,
			Fetch: func(ctx context.Context) (*models.HistorySeries, error) {
				return r.yahooHistory.FetchHistory(ctx, symbol, period)
			},
		},
		{
			Name: models.SourceSynthetic,
			Fetch: func(ctx context.Context) (*models.HistorySeries, error) {
				return r.gen.History(symbol, period), nil
			},
		},
	}

	series, source, err := resolveChain(ctx, providers, validHistory, r.log, r.metrics)
	if err != nil {
		return nil, err
	}
	r.metrics.RecordResolution("history", source)
	return series, nil
}

// Search resolves a free-text search through [yahoo, catalog]. The
// catalog fallback succeeds even with zero matches; an empty result
// set is a valid outcome, not an error.
func (r *MarketResolver) Search(ctx context.Context, query string) (*models.SearchResults, error) {
	query = strings.TrimSpace(query)
	key := fmt.Sprintf("search:%s", strings.ToLower(query))

	if r.cache != nil {
		var cached models.SearchResults
		if err := r.cache.Get(ctx, key, &cached); err == nil {
			r.metrics.RecordCacheHit("search")
			return &cached, nil
		}
	}

	providers := []Provider[*models.SearchResults]{
		{
			Name:    models.SourceYahoo,
			Timeout: r.timeouts.Search,
			Fetch: func(ctx context.Context) (*models.SearchResults, error) {
				return r.yahooSearch.FetchSearch(ctx, query)
			},
		},
		{
			Name: models.SourceCatalog,
			Fetch: func(ctx context.Context) (*models.SearchResults, error) {
				matches := catalog.Search(query)
				return &models.SearchResults{
					Query:      query,
					Results:    matches,
					Count:      len(matches),
					DataSource: models.SourceCatalog,
					Status:     models.StatusSuccess,
					Note:       models.NoteSynthetic,
				}, nil
			},
		},
	}

	// The live rung is validated for at least one allow-listed match;
	// the catalog rung is terminal and accepts empty results.
	results, source, err := resolveChain(ctx, providers, func(sr *models.SearchResults) error {
		if sr == nil {
			return fmt.Errorf("nil search payload")
		}
		if sr.DataSource != models.SourceCatalog && sr.Count == 0 {
			return fmt.Errorf("no results after instrument-type filter")
		}
		return nil
	}, r.log, r.metrics)
	if err != nil {
		return nil, err
	}
	r.metrics.RecordResolution("search", source)

	if r.cache != nil {
		if cerr := r.cache.Set(ctx, key, results, r.ttls.Search); cerr != nil {
			r.log.Warn("search cache write failed", applogger.Error(cerr))
		}
	}
	return results, nil
}

// validQuote accepts only finite, positive prices.
func validQuote(q *models.Quote) error {
	if q == nil {
		return fmt.Errorf("nil quote payload")
	}
	if math.IsNaN(q.Price) || math.IsInf(q.Price, 0) || q.Price <= 0 {
		return fmt.Errorf("invalid price %v", q.Price)
	}
	return nil
}

// validHistory requires at least one usable point.
func validHistory(s *models.HistorySeries) error {
	if s == nil {
		return fmt.Errorf("nil history payload")
	}
	if len(s.History) == 0 {
		return fmt.Errorf("history series has no points")
	}
	return nil
}
