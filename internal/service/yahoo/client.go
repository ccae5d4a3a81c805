// Package yahoo implements the Yahoo Finance chart and search APIs as
// quote, history, and search sources.
package yahoo

import (
	"context"
	"fmt"
	"time"

	"FinQuote/internal/domain/models"
	drepo "FinQuote/internal/domain/repository"
	xhttp "FinQuote/pkg/http"
)

// Config holds the Yahoo Finance endpoints.
type Config struct {
	ChartURL  string // base URL, symbol appended as path segment
	SearchURL string
	UserAgent string
}

// Client implements QuoteSource, HistorySource, and SearchSource.
type Client struct {
	cfg  Config
	http *xhttp.Client
}

// New creates a Yahoo Finance client.
func New(cfg Config, hc *xhttp.Client) *Client {
	if cfg.ChartURL == "" {
		cfg.ChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	}
	if cfg.SearchURL == "" {
		cfg.SearchURL = "https://query2.finance.yahoo.com/v1/finance/search"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	return &Client{cfg: cfg, http: hc}
}

type chartMeta struct {
	Currency           string  `json:"currency"`
	ExchangeName       string  `json:"exchangeName"`
	LongName           string  `json:"longName"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	PreviousClose      float64 `json:"previousClose"`
	RegularMarketOpen  float64 `json:"regularMarketOpen"`
	RegularMarketHigh  float64 `json:"regularMarketDayHigh"`
	RegularMarketLow   float64 `json:"regularMarketDayLow"`
	RegularMarketVol   int64   `json:"regularMarketVolume"`
	MarketCap          int64   `json:"marketCap"`
}

// chartResponse is the v8 chart envelope. Quote slots use pointers
// because Yahoo emits nulls for halted or missing days.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta       chartMeta `json:"meta"`
			Timestamp  []int64   `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error interface{} `json:"error"`
	} `json:"chart"`
}

// FetchQuote resolves a quote from the chart meta block.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	var resp chartResponse
	err := c.http.GetJSON(ctx, &xhttp.RequestOptions{
		URL:     fmt.Sprintf("%s/%s", c.cfg.ChartURL, symbol),
		Headers: map[string]string{"User-Agent": c.cfg.UserAgent},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}

	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo quote %s: empty result", symbol)
	}
	meta := resp.Chart.Result[0].Meta

	change := meta.RegularMarketPrice - meta.PreviousClose
	changePercent := 0.0
	if meta.PreviousClose != 0 {
		changePercent = change / meta.PreviousClose * 100
	}

	name := meta.LongName
	if name == "" {
		name = symbol
	}

	return &models.Quote{
		Symbol:        symbol,
		Name:          name,
		Price:         models.Round2(meta.RegularMarketPrice),
		Change:        models.Round2(change),
		ChangePercent: models.Round2(changePercent),
		PreviousClose: models.Round2(meta.PreviousClose),
		Open:          models.Round2(meta.RegularMarketOpen),
		High:          models.Round2(meta.RegularMarketHigh),
		Low:           models.Round2(meta.RegularMarketLow),
		Volume:        meta.RegularMarketVol,
		MarketCap:     meta.MarketCap,
		Currency:      orDefault(meta.Currency, "USD"),
		Exchange:      meta.ExchangeName,
		LastUpdated:   time.Now().Format(time.RFC3339),
		DataSource:    models.SourceYahoo,
		Status:        models.StatusSuccess,
	}, nil
}

// FetchHistory resolves a daily series from the chart API. Slots with
// a null close are skipped; an all-null payload is an error so the
// chain can fall through.
func (c *Client) FetchHistory(ctx context.Context, symbol string, period drepo.Period) (*models.HistorySeries, error) {
	var resp chartResponse
	err := c.http.GetJSON(ctx, &xhttp.RequestOptions{
		URL:     fmt.Sprintf("%s/%s", c.cfg.ChartURL, symbol),
		Headers: map[string]string{"User-Agent": c.cfg.UserAgent},
		QueryParams: map[string]string{
			"range":    string(period),
			"interval": "1d",
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("yahoo history %s: %w", symbol, err)
	}

	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo history %s: empty result", symbol)
	}
	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo history %s: no quote block", symbol)
	}
	quote := result.Indicators.Quote[0]

	points := make([]models.HistoryPoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		points = append(points, models.HistoryPoint{
			Date:   time.Unix(ts, 0).Format("2006-01-02"),
			Open:   models.Round2(deref(quote.Open, i)),
			High:   models.Round2(deref(quote.High, i)),
			Low:    models.Round2(deref(quote.Low, i)),
			Close:  models.Round2(*quote.Close[i]),
			Volume: derefInt(quote.Volume, i),
		})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("yahoo history %s: no usable points", symbol)
	}

	return models.NewHistorySeries(symbol, string(period), points, models.SourceYahoo), nil
}

type searchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		Exchange  string `json:"exchange"`
		QuoteType string `json:"quoteType"`
		Sector    string `json:"sector"`
	} `json:"quotes"`
}

// FetchSearch resolves a full-text search, filtered to equities and
// exchange-traded funds and capped at models.MaxSearchResults.
func (c *Client) FetchSearch(ctx context.Context, query string) (*models.SearchResults, error) {
	var resp searchResponse
	err := c.http.GetJSON(ctx, &xhttp.RequestOptions{
		URL:     c.cfg.SearchURL,
		Headers: map[string]string{"User-Agent": c.cfg.UserAgent},
		QueryParams: map[string]string{
			"q":           query,
			"quotesCount": "10",
			"newsCount":   "0",
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("yahoo search %q: %w", query, err)
	}

	results := make([]models.SearchResult, 0, models.MaxSearchResults)
	for _, q := range resp.Quotes {
		if q.QuoteType != "EQUITY" && q.QuoteType != "ETF" {
			continue
		}
		name := q.LongName
		if name == "" {
			name = q.ShortName
		}
		results = append(results, models.SearchResult{
			Symbol:   q.Symbol,
			Name:     name,
			Exchange: q.Exchange,
			Type:     q.QuoteType,
			Sector:   q.Sector,
		})
		if len(results) >= models.MaxSearchResults {
			break
		}
	}

	return &models.SearchResults{
		Query:      query,
		Results:    results,
		Count:      len(results),
		DataSource: models.SourceYahoo,
		Status:     models.StatusSuccess,
	}, nil
}

func deref(xs []*float64, i int) float64 {
	if i < len(xs) && xs[i] != nil {
		return *xs[i]
	}
	return 0
}

func derefInt(xs []*int64, i int) int64 {
	if i < len(xs) && xs[i] != nil {
		return *xs[i]
	}
	return 0
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
