package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/scout/internal/adapters/dataset"
	"github.com/okian/scout/internal/adapters/http/api"
	"github.com/okian/scout/internal/adapters/http/swagger"
	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/config"
	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/profile"
	"github.com/okian/scout/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout          = 30 * time.Second
	writeTimeout         = 30 * time.Second
	idleTimeout          = 60 * time.Second
	readHeaderTimeout    = 5 * time.Second
	shutdownTimeout      = 30 * time.Second
	statsRefreshInterval = 15 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, err := newService(ctx, cfg)
	if err != nil {
		log.Error(ctx, "failed to configure service", logger.Error(err))
		return
	}
	if err := svc.Start(ctx); err != nil {
		log.Error(ctx, "failed to start service", logger.Error(err))
		return
	}

	go startStatsRefresher(ctx, svc)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(ctx, cfg, svc),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

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

// newService maps configuration onto service options. Start is left to the
// caller.
func newService(ctx context.Context, cfg *config.Config) (*service.Service, error) {
	catalog, err := profile.Load(ctx, cfg.ProfilesPath)
	if err != nil {
		return nil, err
	}
	scope, err := filter.ParseScope(cfg.DefaultScope)
	if err != nil {
		return nil, err
	}
	identity, err := model.ParseIdentityKey(cfg.IdentityKey)
	if err != nil {
		return nil, err
	}

	svcLogger := logger.Named("service")
	fetcher := dataset.NewFetcher(
		dataset.WithTimeout(time.Duration(cfg.FetchTimeoutMS)*time.Millisecond),
		dataset.WithMaxBytes(cfg.MaxUploadBytes),
		dataset.WithBreaker(cfg.BreakerMaxFailures, time.Duration(cfg.BreakerTimeoutMS)*time.Millisecond),
		dataset.WithFetchLogger(svcLogger.Named("fetch")),
	)

	opts := []service.Option{
		service.WithLogger(svcLogger),
		service.WithCatalog(catalog),
		service.WithFetcher(fetcher),
		service.WithDatasetPath(cfg.DatasetPath),
		service.WithDatasetURL(cfg.DatasetURL),
		service.WithDefaultLanguage(cfg.DefaultLanguage),
		service.WithDefaultScope(scope),
		service.WithIdentityKey(identity),
		service.WithDedupe(cfg.Dedupe),
		service.WithDedupeCaseFolding(cfg.DedupeFoldCase),
		service.WithMaxTopN(cfg.MaxTopN),
	}
	if cfg.DatasetSheet != "" {
		opts = append(opts, service.WithParseOptions(dataset.WithSheet(cfg.DatasetSheet)))
	}
	return service.New(opts...), nil
}

// newHandler registers the docs and API routes and wraps them with request
// ID tagging.
func newHandler(ctx context.Context, cfg *config.Config, svc *service.Service) http.Handler {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(svc, svc, api.WithMaxUploadBytes(cfg.MaxUploadBytes)).Register(ctx, mux)
	return api.RequestIDMiddleware(mux)
}

// startStatsRefresher keeps the dataset gauges current between requests.
func startStatsRefresher(ctx context.Context, svc *service.Service) {
	ticker := time.NewTicker(statsRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.GetStats(ctx)
		}
	}
}
