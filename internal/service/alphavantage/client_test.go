package alphavantage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"FinQuote/internal/domain/models"
	xhttp "FinQuote/pkg/http"
)

const globalQuoteFixture = `{
  "Global Quote": {
    "01. symbol": "IBM",
    "02. open": "185.10",
    "03. high": "187.25",
    "04. low": "184.50",
    "05. price": "186.75",
    "06. volume": "4200000",
    "07. latest trading day": "2026-08-21",
    "08. previous close": "184.90",
    "09. change": "1.85",
    "10. change percent": "1.0006%"
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{URL: srv.URL, APIKey: "test-key"}, xhttp.NewClient())
}

func TestFetchQuote(t *testing.T) {
	var gotQuery map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"function": r.URL.Query().Get("function"),
			"symbol":   r.URL.Query().Get("symbol"),
			"apikey":   r.URL.Query().Get("apikey"),
		}
		w.Write([]byte(globalQuoteFixture))
	})

	q, err := c.FetchQuote(context.Background(), "IBM")
	require.NoError(t, err)
	require.Equal(t, "GLOBAL_QUOTE", gotQuery["function"])
	require.Equal(t, "IBM", gotQuery["symbol"])
	require.Equal(t, "test-key", gotQuery["apikey"])

	require.Equal(t, "IBM", q.Symbol)
	require.Equal(t, 186.75, q.Price)
	require.Equal(t, 1.85, q.Change)
	require.Equal(t, 1.0, q.ChangePercent)
	require.Equal(t, 184.90, q.PreviousClose)
	require.Equal(t, 185.10, q.Open)
	require.Equal(t, 187.25, q.High)
	require.Equal(t, 184.50, q.Low)
	require.Equal(t, int64(4_200_000), q.Volume)
	require.Equal(t, "2026-08-21", q.LastUpdated)
	require.Equal(t, models.SourceAlphaVantage, q.DataSource)
	require.Equal(t, models.StatusSuccess, q.Status)
}

func TestFetchQuoteEmptyPayload(t *testing.T) {
	// Rate-limited responses come back 200 with an empty quote block.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Global Quote": {}}`))
	})

	_, err := c.FetchQuote(context.Background(), "IBM")
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty payload")
}

func TestFetchQuoteBadPrice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Global Quote": {"05. price": "not-a-number"}}`))
	})

	_, err := c.FetchQuote(context.Background(), "IBM")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad price")
}

func TestFetchQuoteHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	})

	_, err := c.FetchQuote(context.Background(), "IBM")
	require.Error(t, err)
}
