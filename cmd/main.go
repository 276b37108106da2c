package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pena92022/Tekken/internal/adapters/fetch"
	"github.com/pena92022/Tekken/internal/adapters/http/api"
	"github.com/pena92022/Tekken/internal/adapters/repository"
	app "github.com/pena92022/Tekken/internal/app"
	"github.com/pena92022/Tekken/internal/config"
	"github.com/pena92022/Tekken/pkg/logger"
	"github.com/pena92022/Tekken/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout          = 10 * time.Second
	writeTimeout         = 30 * time.Second
	idleTimeout          = 60 * time.Second
	readHeaderTimeout    = 5 * time.Second
	shutdownTimeout      = 30 * time.Second
	cacheMetricsInterval = 15 * time.Second
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Upstream client -> TTL cache -> matchup service.
	client := fetch.NewClient(cfg.SourceBaseURL,
		fetch.WithGameID(cfg.GameID),
		fetch.WithTimeout(time.Duration(cfg.FetchTimeoutSeconds)*time.Second),
	)
	cache := repository.New(client.Movelist,
		repository.WithTTL(time.Duration(cfg.CacheTTLMinutes)*time.Minute),
	)
	svc := app.New(cache,
		app.WithLogger(log),
		app.WithKeyMoveCap(cfg.KeyMoveCap),
		app.WithPunishableCap(cfg.PunishableCap),
		app.WithWindowCandidateCap(cfg.WindowCandidateCap),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Keep the cached-movelists gauge fresh between requests.
	go startCacheMetricsUpdater(ctx, cache)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startCacheMetricsUpdater periodically refreshes the cached-movelists
// gauge so the value stays accurate after TTL expiry and cache clears.
func startCacheMetricsUpdater(ctx context.Context, cache *repository.MovelistCache) {
	ticker := time.NewTicker(cacheMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.UpdateCachedMovelists(cache.Count())
		}
	}
}
