package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"FinQuote/pkg/cache"
	"FinQuote/pkg/config"
	xhttp "FinQuote/pkg/http"
	applogger "FinQuote/pkg/logger"
)

// App encapsulates the application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	handler    xhttp.Handler
	cache      cache.Service
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, c cache.Service) *App {
	return &App{
		cfg:     cfg,
		log:     l,
		handler: handler,
		cache:   c,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	a.log.Info("starting",
		applogger.String("environment", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port),
		applogger.Bool("redis", a.cfg.Cache.Redis.Enabled),
	)

	a.httpServer = xhttp.NewServer(a.handler, a.log,
		xhttp.WithHost(a.cfg.Server.Host),
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(len(a.cfg.Server.CORSOrigins) > 0),
		xhttp.WithCORSOrigins(a.cfg.Server.CORSOrigins),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	a.log.Info("shutting down", applogger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http server shutdown error", applogger.Error(err))
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.log.Error("cache close error", applogger.Error(err))
		}
	}

	return nil
}
