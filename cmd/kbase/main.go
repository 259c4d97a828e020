package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/execai/kbase/internal/config"
	"github.com/execai/kbase/internal/domain"
	logpkg "github.com/execai/kbase/internal/logger"
	"github.com/execai/kbase/internal/metrics"
	"github.com/execai/kbase/internal/repository/corpus"
	"github.com/execai/kbase/internal/repository/querycache"
	chiTransport "github.com/execai/kbase/internal/transport/chi"
	healthuc "github.com/execai/kbase/internal/usecase/health"
	personauc "github.com/execai/kbase/internal/usecase/persona"
	retrievaluc "github.com/execai/kbase/internal/usecase/retrieval"
	"github.com/execai/kbase/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting kbase API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// Load the knowledge corpus; fall back to the built-in seed when no
	// paths are configured.
	items, domains, err := loadCorpus(cfg.Corpus)
	if err != nil {
		logger.Fatal("Failed to load corpus", zap.Error(err))
	}
	if err := corpus.Validate(items, domains); err != nil {
		logger.Fatal("Invalid corpus", zap.Error(err))
	}
	logger.Info("Corpus loaded",
		zap.Int("items", len(items)),
		zap.Int("domains", len(domains)),
	)

	// Register retrieval metrics explicitly (no init())
	metrics.RegisterRetrievalMetrics()

	// Fit the retrieval engine at startup. A corpus that yields an empty
	// vocabulary is a deployment error, not something to limp past.
	retrievalSvc, err := retrievaluc.New(items, domains, logger)
	if err != nil {
		if errors.Is(err, domain.ErrDegenerateCorpus) {
			logger.Fatal("Corpus produced an empty vocabulary", zap.Error(err))
		}
		logger.Fatal("Failed to build retrieval engine", zap.Error(err))
	}
	retrievalSvc = retrievalSvc.WithMetrics(metrics.RetrievalQueriesTotal, metrics.RetrievalResultsReturned)

	// Optional query cache in front of the engine.
	var knowledge chiTransport.Querier = retrievalSvc
	var cachePinger healthuc.CachePinger
	if cfg.Cache.Enabled {
		store, err := querycache.NewRedisStore(querycache.RedisConfig{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			logger.Fatal("Failed to connect to cache", zap.Error(err))
		}
		defer store.Close()

		cache := querycache.New(
			retrievalSvc, store,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			metrics.QueryCacheTotal, logger,
		)
		knowledge = cache
		cachePinger = cache
		logger.Info("Query cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	personaSvc := personauc.New(knowledge)
	healthSvc := healthuc.New(retrievalSvc, cachePinger)

	server := chiTransport.NewServer(knowledge, retrievalSvc, personaSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.CORSMiddleware(""))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	r.Mount("/", server.Routes())

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// loadCorpus reads items and domains from the configured YAML files,
// or returns the built-in seed corpus when no paths are set.
func loadCorpus(cfg config.CorpusConfig) ([]domain.KnowledgeItem, []domain.Domain, error) {
	if cfg.ItemsPath == "" {
		return corpus.SeedItems(), corpus.SeedDomains(), nil
	}

	items, err := corpus.LoadItems(cfg.ItemsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load items: %w", err)
	}
	domains, err := corpus.LoadDomains(cfg.DomainsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load domains: %w", err)
	}
	return items, domains, nil
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
