package di

import (
	"FinQuote/internal/handler/api"
	"FinQuote/internal/service/alphavantage"
	"FinQuote/internal/service/transactions"
	"FinQuote/internal/service/yahoo"
	"FinQuote/internal/synth"
	"FinQuote/internal/usecase"
	"FinQuote/pkg/cache"
	"FinQuote/pkg/config"
	xhttp "FinQuote/pkg/http"
	applogger "FinQuote/pkg/logger"
	"FinQuote/pkg/metrics"
	"FinQuote/pkg/server"
)

// ProvideLogger builds the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics builds the Prometheus recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideCache selects the cache backend. Redis disabled means a
// process-local cache; enabled means L1 memory over L2 Redis. A Redis
// connection failure is fatal at startup rather than silently degraded.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	)
	if err != nil {
		return nil, err
	}
	return cache.NewLayeredCache(rc), nil
}

// ProvideYahooClient builds the Yahoo Finance source with its own
// outbound client bounded by the largest per-call timeout.
func ProvideYahooClient(cfg *config.Config) *yahoo.Client {
	hc := xhttp.NewClient(xhttp.WithTimeout(cfg.Yahoo.HistoryTimeout))
	return yahoo.New(yahoo.Config{
		ChartURL:  cfg.Yahoo.ChartURL,
		SearchURL: cfg.Yahoo.SearchURL,
		UserAgent: cfg.Yahoo.UserAgent,
	}, hc)
}

// ProvideAlphaVantageClient builds the secondary quote source.
func ProvideAlphaVantageClient(cfg *config.Config) *alphavantage.Client {
	hc := xhttp.NewClient(xhttp.WithTimeout(cfg.AlphaVantage.Timeout))
	return alphavantage.New(alphavantage.Config{
		URL:    cfg.AlphaVantage.URL,
		APIKey: cfg.AlphaVantage.APIKey,
	}, hc)
}

// ProvideSyntheticGenerator builds the terminal fallback generator,
// seeded from the clock.
func ProvideSyntheticGenerator() *synth.Generator {
	return synth.NewRandom()
}

// ProvideTransactionsClient builds the backend transactions proxy.
func ProvideTransactionsClient(cfg *config.Config, l *applogger.Logger) *transactions.Client {
	hc := xhttp.NewClient(xhttp.WithTimeout(cfg.Backend.Timeout))
	return transactions.New(transactions.Config{
		BaseURL:      cfg.Backend.URL,
		FallbackFile: cfg.Backend.FallbackFile,
	}, hc, l)
}

// ProvideMarketResolver assembles the resolution chains.
func ProvideMarketResolver(
	cfg *config.Config,
	y *yahoo.Client,
	av *alphavantage.Client,
	gen *synth.Generator,
	c cache.Service,
	l *applogger.Logger,
	m *metrics.Recorder,
) *usecase.MarketResolver {
	return usecase.NewMarketResolver(
		y, av, y, y,
		gen,
		c,
		l,
		m,
		usecase.Timeouts{
			Quote:   cfg.Yahoo.QuoteTimeout,
			History: cfg.Yahoo.HistoryTimeout,
			Search:  cfg.Yahoo.SearchTimeout,
		},
		usecase.CacheTTLs{
			Quote:  cfg.Cache.QuoteTTL,
			Search: cfg.Cache.SearchTTL,
		},
	)
}

// ProvideMarketHandler builds the HTTP handler.
func ProvideMarketHandler(l *applogger.Logger, r *usecase.MarketResolver, tx *transactions.Client) *api.MarketEchoHandler {
	return api.NewMarketEchoHandler(l, r, tx)
}

// ProvideApp builds the application.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h *api.MarketEchoHandler, c cache.Service) *server.App {
	return server.New(cfg, l, h, c)
}
