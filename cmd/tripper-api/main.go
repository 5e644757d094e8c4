// README: Entry point; loads config, wires the AI provider, share store and HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripper/internal/ai"
	"tripper/internal/config"
	httptransport "tripper/internal/http"
	"tripper/internal/infra"
	"tripper/internal/logger"
	"tripper/internal/maps"
	"tripper/internal/modules/planner"
	"tripper/internal/modules/share"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Get()
	defer func() { _ = logger.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := newProvider(ctx, cfg.AI)
	if err != nil {
		log.Fatalw("ai provider init", "provider", cfg.AI.Provider, "error", err)
	}

	backend, err := newBackend(ctx, cfg.Store)
	if err != nil {
		log.Fatalw("share store init", "backend", cfg.Store.Backend, "error", err)
	}

	var geocoder planner.Geocoder
	if cfg.Maps.APIKey != "" {
		g, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalw("maps init", "error", err)
		}
		geocoder = g
	}

	plannerSvc := planner.NewService(provider, geocoder)
	shareSvc := share.NewService(backend, cfg.BaseURL)

	router := httptransport.NewRouter(plannerSvc, shareSvc, cfg.HTTP.CORSOrigin)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Infow("listening", "addr", cfg.HTTP.Addr, "store", cfg.Store.Backend, "provider", cfg.AI.Provider)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalw("server", "error", err)
	}
}

func newProvider(ctx context.Context, cfg config.AIConfig) (ai.Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return ai.NewGeminiProvider(ctx, cfg.GeminiKey)
	case "grok", "":
		return ai.NewGrokProvider(cfg.GrokKey, cfg.GrokModel), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

func newBackend(ctx context.Context, cfg config.StoreConfig) (share.Backend, error) {
	switch cfg.Backend {
	case "redis":
		client, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return share.NewRedisBackend(client), nil
	case "postgres":
		pool, err := infra.NewDB(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		backend := share.NewPostgresBackend(pool)
		if err := backend.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return backend, nil
	case "memory":
		logger.Get().Warnw("no share store configured, using in-memory fallback")
		return share.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
