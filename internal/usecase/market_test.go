package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"FinQuote/internal/domain/models"
	drepo "FinQuote/internal/domain/repository"
	"FinQuote/internal/synth"
	"FinQuote/pkg/cache"
	applogger "FinQuote/pkg/logger"
)

type stubQuoteSource struct {
	quote *models.Quote
	err   error
	calls int
}

func (s *stubQuoteSource) FetchQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	s.calls++
	return s.quote, s.err
}

type stubHistorySource struct {
	series *models.HistorySeries
	err    error
}

func (s *stubHistorySource) FetchHistory(ctx context.Context, symbol string, period drepo.Period) (*models.HistorySeries, error) {
	return s.series, s.err
}

type stubSearchSource struct {
	results *models.SearchResults
	err     error
}

func (s *stubSearchSource) FetchSearch(ctx context.Context, query string) (*models.SearchResults, error) {
	return s.results, s.err
}

var errDown = errors.New("connection refused")

func newTestResolver(yq, aq drepo.QuoteSource, yh drepo.HistorySource, ys drepo.SearchSource, c cache.Service, m drepo.Metrics) *MarketResolver {
	return NewMarketResolver(yq, aq, yh, ys, synth.New(42), c, applogger.Nop(), m, Timeouts{}, CacheTTLs{})
}

func TestGetQuotePrefersFirstLiveSource(t *testing.T) {
	m := &recordingMetrics{}
	yahooQuote := &models.Quote{Symbol: "AAPL", Price: 180.12, DataSource: models.SourceYahoo, Status: models.StatusSuccess}

	r := newTestResolver(
		&stubQuoteSource{quote: yahooQuote},
		&stubQuoteSource{err: errDown},
		&stubHistorySource{err: errDown},
		&stubSearchSource{err: errDown},
		nil, m,
	)

	got, err := r.GetQuote(context.Background(), "aapl")
	require.NoError(t, err)
	require.Equal(t, models.SourceYahoo, got.DataSource)
	require.Equal(t, 180.12, got.Price)
	require.Equal(t, []string{"quote/" + models.SourceYahoo}, m.resolutions)
}

func TestGetQuoteFallsBackToSecondLiveSource(t *testing.T) {
	m := &recordingMetrics{}
	avQuote := &models.Quote{Symbol: "AAPL", Price: 179.80, DataSource: models.SourceAlphaVantage, Status: models.StatusSuccess}

	r := newTestResolver(
		&stubQuoteSource{err: errDown},
		&stubQuoteSource{quote: avQuote},
		&stubHistorySource{err: errDown},
		&stubSearchSource{err: errDown},
		nil, m,
	)

	got, err := r.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, models.SourceAlphaVantage, got.DataSource)
	require.Equal(t, []string{models.SourceYahoo + "/unavailable"}, m.failures)
}

func TestGetQuoteSyntheticWhenAllLiveSourcesFail(t *testing.T) {
	m := &recordingMetrics{}

	r := newTestResolver(
		&stubQuoteSource{err: errDown},
		&stubQuoteSource{err: errDown},
		&stubHistorySource{err: errDown},
		&stubSearchSource{err: errDown},
		nil, m,
	)

	got, err := r.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, "AAPL", got.Symbol)
	require.Equal(t, models.SourceSynthetic, got.DataSource)
	require.Equal(t, models.StatusSuccess, got.Status)
	require.Equal(t, models.NoteSynthetic, got.Note)
	require.Greater(t, got.Price, 0.0)
	require.Len(t, m.failures, 2)
}

func TestGetQuoteRejectsMalformedLivePayload(t *testing.T) {
	m := &recordingMetrics{}
	// A non-positive price must not be served even when the transport
	// succeeded.
	bad := &models.Quote{Symbol: "AAPL", Price: 0, DataSource: models.SourceYahoo}

	r := newTestResolver(
		&stubQuoteSource{quote: bad},
		&stubQuoteSource{err: errDown},
		&stubHistorySource{err: errDown},
		&stubSearchSource{err: errDown},
		nil, m,
	)

	got, err := r.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, models.SourceSynthetic, got.DataSource)
	require.Contains(t, m.failures, models.SourceYahoo+"/malformed")
}

func TestGetQuoteServedFromCache(t *testing.T) {
	m := &recordingMetrics{}
	c := cache.NewMemoryCache()
	defer c.Close()

	yahooSrc := &stubQuoteSource{quote: &models.Quote{Symbol: "AAPL", Price: 181.00, DataSource: models.SourceYahoo}}
	r := newTestResolver(
		yahooSrc,
		&stubQuoteSource{err: errDown},
		&stubHistorySource{err: errDown},
		&stubSearchSource{err: errDown},
		c, m,
	)

	first, err := r.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)

	second, err := r.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)

	require.Equal(t, 1, yahooSrc.calls, "second resolution must not reach the provider")
	require.Equal(t, first.Price, second.Price)
	require.Equal(t, []string{"quote"}, m.cacheHits)
}

func TestGetHistoryFallsBackToSynthetic(t *testing.T) {
	m := &recordingMetrics{}

	r := newTestResolver(
		&stubQuoteSource{err: errDown},
		&stubQuoteSource{err: errDown},
		&stubHistorySource{err: errDown},
		&stubSearchSource{err: errDown},
		nil, m,
	)

	got, err := r.GetHistory(context.Background(), "aapl", drepo.P5D)
	require.NoError(t, err)
	require.Equal(t, "AAPL", got.Symbol)
	require.Equal(t, models.SourceSynthetic, got.DataSource)
	require.Len(t, got.History, 5)
	require.Equal(t, 5, got.DataPoints)
}

func TestGetHistoryRejectsEmptyLiveSeries(t *testing.T) {
	m := &recordingMetrics{}
	empty := models.NewHistorySeries("AAPL", "1mo", nil, models.SourceYahoo)

	r := newTestResolver(
		&stubQuoteSource{err: errDown},
		&stubQuoteSource{err: errDown},
		&stubHistorySource{series: empty},
		&stubSearchSource{err: errDown},
		nil, m,
	)

	got, err := r.GetHistory(context.Background(), "AAPL", drepo.P1Mo)
	require.NoError(t, err)
	require.Equal(t, models.SourceSynthetic, got.DataSource)
	require.Equal(t, 30, got.DataPoints)
	require.Contains(t, m.failures, models.SourceYahoo+"/malformed")
}

func TestSearchFallsBackToCatalog(t *testing.T) {
	m := &recordingMetrics{}

	r := newTestResolver(
		&stubQuoteSource{err: errDown},
		&stubQuoteSource{err: errDown},
		&stubHistorySource{err: errDown},
		&stubSearchSource{err: errDown},
		nil, m,
	)

	got, err := r.Search(context.Background(), "apple")
	require.NoError(t, err)
	require.Equal(t, models.SourceCatalog, got.DataSource)
	require.Equal(t, models.StatusSuccess, got.Status)
	require.Equal(t, models.NoteSynthetic, got.Note)
	require.Equal(t, 1, got.Count)
	require.Len(t, got.Results, 1)
	require.Equal(t, "AAPL", got.Results[0].Symbol)
}

func TestSearchEmptyCatalogResultIsSuccess(t *testing.T) {
	m := &recordingMetrics{}

	r := newTestResolver(
		&stubQuoteSource{err: errDown},
		&stubQuoteSource{err: errDown},
		&stubHistorySource{err: errDown},
		&stubSearchSource{err: errDown},
		nil, m,
	)

	got, err := r.Search(context.Background(), "zzzzNoMatch")
	require.NoError(t, err)
	require.Equal(t, 0, got.Count)
	require.Empty(t, got.Results)
	require.Equal(t, models.StatusSuccess, got.Status)
	require.Equal(t, models.SourceCatalog, got.DataSource)
}

func TestSearchFiltersEmptyLiveResponse(t *testing.T) {
	m := &recordingMetrics{}
	// Yahoo answered but everything was filtered out; the chain must
	// advance to the catalog instead of returning the empty live set.
	emptyLive := &models.SearchResults{Query: "apple", Count: 0, DataSource: models.SourceYahoo, Status: models.StatusSuccess}

	r := newTestResolver(
		&stubQuoteSource{err: errDown},
		&stubQuoteSource{err: errDown},
		&stubHistorySource{err: errDown},
		&stubSearchSource{results: emptyLive},
		nil, m,
	)

	got, err := r.Search(context.Background(), "apple")
	require.NoError(t, err)
	require.Equal(t, models.SourceCatalog, got.DataSource)
	require.Equal(t, 1, got.Count)
}

func TestSearchServedFromCache(t *testing.T) {
	m := &recordingMetrics{}
	c := cache.NewMemoryCache()
	defer c.Close()

	live := &models.SearchResults{
		Query:      "tesla",
		Results:    []models.SearchResult{{Symbol: "TSLA", Name: "Tesla Inc."}},
		Count:      1,
		DataSource: models.SourceYahoo,
		Status:     models.StatusSuccess,
	}

	r := newTestResolver(
		&stubQuoteSource{err: errDown},
		&stubQuoteSource{err: errDown},
		&stubHistorySource{err: errDown},
		&stubSearchSource{results: live},
		c, m,
	)

	first, err := r.Search(context.Background(), "tesla")
	require.NoError(t, err)
	second, err := r.Search(context.Background(), "Tesla")
	require.NoError(t, err)

	require.Equal(t, first.Results, second.Results)
	require.Equal(t, []string{"search"}, m.cacheHits)
}

func TestGetQuoteCanceledContext(t *testing.T) {
	m := &recordingMetrics{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestResolver(
		&stubQuoteSource{err: errDown},
		&stubQuoteSource{err: errDown},
		&stubHistorySource{err: errDown},
		&stubSearchSource{err: errDown},
		nil, m,
	)

	_, err := r.GetQuote(ctx, "AAPL")
	require.ErrorIs(t, err, context.Canceled)
}
