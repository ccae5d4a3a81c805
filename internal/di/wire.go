//go:build wireinject
// +build wireinject

package di

import (
	"FinQuote/pkg/config"
	"FinQuote/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideCache,

		// Data sources
		ProvideYahooClient,
		ProvideAlphaVantageClient,
		ProvideSyntheticGenerator,
		ProvideTransactionsClient,

		// Use cases
		ProvideMarketResolver,

		// HTTP surface
		ProvideMarketHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
