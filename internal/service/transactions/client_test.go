package transactions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	xhttp "FinQuote/pkg/http"
	applogger "FinQuote/pkg/logger"
)

func TestGetTransactionsFromBackend(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/me/transactions/mock", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"added": [{"id": "txn-1", "symbol": "AAPL"}]}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL}, xhttp.NewClient(), applogger.Nop())
	got := c.GetTransactions(context.Background(), "tok-123")

	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Contains(t, got, "transactions")
	txns, ok := got["transactions"].([]interface{})
	require.True(t, ok)
	require.Len(t, txns, 1)
}

func TestGetTransactionsNoToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"other": "shape"}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL}, xhttp.NewClient(), applogger.Nop())
	got := c.GetTransactions(context.Background(), "")

	require.Empty(t, gotAuth)
	// Unwrapped payloads are passed through under the same key.
	require.Contains(t, got, "transactions")
}

func TestGetTransactionsFallsBackToSnapshot(t *testing.T) {
	snapshot := filepath.Join(t.TempDir(), "transaction_data.json")
	require.NoError(t, os.WriteFile(snapshot, []byte(`{"transactions": [{"id": "txn-local"}]}`), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, FallbackFile: snapshot}, xhttp.NewClient(), applogger.Nop())
	got := c.GetTransactions(context.Background(), "tok")

	txns, ok := got["transactions"].([]interface{})
	require.True(t, ok)
	require.Len(t, txns, 1)
}

func TestGetTransactionsTotalFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(Config{
		BaseURL:      srv.URL,
		FallbackFile: filepath.Join(t.TempDir(), "missing.json"),
	}, xhttp.NewClient(), applogger.Nop())

	got := c.GetTransactions(context.Background(), "")
	require.Contains(t, got, "error")
}
