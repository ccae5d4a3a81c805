// Package transactions proxies the backend transaction API with a
// local snapshot fallback. Same cascade shape as the market resolver,
// collapsed into a single client because the chain has one live rung.
package transactions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	applogger "FinQuote/pkg/logger"

	xhttp "FinQuote/pkg/http"
)

// Config holds the backend endpoint and the fallback snapshot path.
type Config struct {
	BaseURL      string
	FallbackFile string
}

// Client fetches transaction records for the current user.
type Client struct {
	cfg  Config
	http *xhttp.Client
	log  *applogger.Logger
}

// New creates a transactions client.
func New(cfg Config, hc *xhttp.Client, l *applogger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.FallbackFile == "" {
		cfg.FallbackFile = "transaction_data.json"
	}
	return &Client{cfg: cfg, http: hc, log: l}
}

// GetTransactions asks the backend first and falls back to the local
// snapshot file. It never returns a transport error to the caller: a
// total failure yields an error-shaped payload instead.
func (c *Client) GetTransactions(ctx context.Context, token string) map[string]interface{} {
	headers := map[string]string{}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	var payload map[string]interface{}
	err := c.http.GetJSON(ctx, &xhttp.RequestOptions{
		URL:     c.cfg.BaseURL + "/user/me/transactions/mock",
		Headers: headers,
	}, &payload)
	if err == nil {
		// The backend wraps the current records under "added".
		if added, ok := payload["added"]; ok {
			return map[string]interface{}{"transactions": added}
		}
		return map[string]interface{}{"transactions": payload}
	}

	c.log.Warn("backend transactions unavailable, using local snapshot",
		applogger.Error(err),
	)
	return c.fallback()
}

func (c *Client) fallback() map[string]interface{} {
	b, err := os.ReadFile(c.cfg.FallbackFile)
	if err != nil {
		return map[string]interface{}{
			"error": fmt.Sprintf("transaction data file not found and backend unavailable: %v", err),
		}
	}

	var snapshot map[string]interface{}
	if err := json.Unmarshal(b, &snapshot); err != nil {
		return map[string]interface{}{
			"error": "invalid JSON in transaction snapshot and backend unavailable",
		}
	}
	return snapshot
}
