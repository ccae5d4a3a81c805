// Package alphavantage implements the Alpha Vantage GLOBAL_QUOTE API
// as a secondary quote source.
package alphavantage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"FinQuote/internal/domain/models"
	xhttp "FinQuote/pkg/http"
)

// Config holds the Alpha Vantage endpoint and credentials.
type Config struct {
	URL    string
	APIKey string // the shared "demo" key works with limited calls
}

// Client implements QuoteSource.
type Client struct {
	cfg  Config
	http *xhttp.Client
}

// New creates an Alpha Vantage client.
func New(cfg Config, hc *xhttp.Client) *Client {
	if cfg.URL == "" {
		cfg.URL = "https://www.alphavantage.co/query"
	}
	if cfg.APIKey == "" {
		cfg.APIKey = "demo"
	}
	return &Client{cfg: cfg, http: hc}
}

// globalQuoteResponse mirrors Alpha Vantage's numbered string fields.
type globalQuoteResponse struct {
	GlobalQuote struct {
		Open             string `json:"02. open"`
		High             string `json:"03. high"`
		Low              string `json:"04. low"`
		Price            string `json:"05. price"`
		Volume           string `json:"06. volume"`
		LatestTradingDay string `json:"07. latest trading day"`
		PreviousClose    string `json:"08. previous close"`
		Change           string `json:"09. change"`
		ChangePercent    string `json:"10. change percent"`
	} `json:"Global Quote"`
}

// FetchQuote resolves a quote from GLOBAL_QUOTE. An empty quote block
// (rate-limited or unknown symbol) is an error so the chain can fall
// through.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	var resp globalQuoteResponse
	err := c.http.GetJSON(ctx, &xhttp.RequestOptions{
		URL: c.cfg.URL,
		QueryParams: map[string]string{
			"function": "GLOBAL_QUOTE",
			"symbol":   symbol,
			"apikey":   c.cfg.APIKey,
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("alphavantage quote %s: %w", symbol, err)
	}

	gq := resp.GlobalQuote
	if gq.Price == "" {
		return nil, fmt.Errorf("alphavantage quote %s: empty payload", symbol)
	}

	price, err := strconv.ParseFloat(gq.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("alphavantage quote %s: bad price %q: %w", symbol, gq.Price, err)
	}
	change := parseFloatDefault(gq.Change, 0)
	changePercent := parseFloatDefault(strings.TrimSuffix(gq.ChangePercent, "%"), 0)

	updated := gq.LatestTradingDay
	if updated == "" {
		updated = time.Now().Format("2006-01-02")
	}

	return &models.Quote{
		Symbol:        symbol,
		Name:          symbol + " Inc.",
		Price:         models.Round2(price),
		Change:        models.Round2(change),
		ChangePercent: models.Round2(changePercent),
		PreviousClose: models.Round2(parseFloatDefault(gq.PreviousClose, price-change)),
		Open:          models.Round2(parseFloatDefault(gq.Open, price)),
		High:          models.Round2(parseFloatDefault(gq.High, price)),
		Low:           models.Round2(parseFloatDefault(gq.Low, price)),
		Volume:        parseIntDefault(gq.Volume, 0),
		MarketCap:     0,
		Currency:      "USD",
		Exchange:      "NASDAQ/NYSE",
		LastUpdated:   updated,
		DataSource:    models.SourceAlphaVantage,
		Status:        models.StatusSuccess,
	}, nil
}

func parseFloatDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

func parseIntDefault(s string, def int64) int64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return def
	}
	return v
}
