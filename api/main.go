package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"keyword-index/api/adapters/indexer"
	"keyword-index/api/adapters/rest"
	"keyword-index/api/adapters/rest/middleware"
	"keyword-index/api/config"
	"keyword-index/api/core"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	var cfg config.Config
	config.MustLoad(configPath, &cfg)

	// Logger
	log := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// backend is everything the gateway asks of the indexer.
type backend interface {
	core.Pinger
	core.Extractor
	core.Indexer
}

// newRouter maps the gateway routes onto the indexer. Indexing, drop and
// reference reload require an admin token.
func newRouter(log *slog.Logger, cfg config.Config, indexer backend) (http.Handler, error) {
	admin, err := middleware.NewJwtAuthenticator(
		log, cfg.Admin.User, cfg.Admin.Password, cfg.Admin.JwtSecret, cfg.Admin.TokenTtl,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init jwt authenticator: %w", err)
	}
	keywordsLimiter := middleware.NewConcurrencyLimiter(log, "keywords", cfg.Limits.KeywordsConcurrency)
	termsLimiter := middleware.NewRateLimiter(log, "terms", cfg.Limits.TermsRate)

	mux := http.NewServeMux()

	// Extraction
	mux.Handle("POST /api/login", rest.NewLoginHandler(log, admin))
	mux.Handle("POST /api/keywords", keywordsLimiter.Limit(rest.NewKeywordsHandler(log, indexer)))
	mux.Handle("POST /api/terms", termsLimiter.Limit(rest.NewTermsHandler(log, indexer)))

	// Stored documents
	mux.Handle("POST /api/documents", admin.CheckToken(rest.NewIndexHandler(log, indexer)))
	mux.Handle("GET /api/documents/{id}", rest.NewDocumentHandler(log, indexer))
	mux.Handle("DELETE /api/documents", admin.CheckToken(rest.NewDropHandler(log, indexer)))
	mux.Handle("POST /api/reference/reload", admin.CheckToken(rest.NewReloadHandler(log, indexer)))

	// Status
	mux.Handle("GET /api/stats", rest.NewStatsHandler(log, indexer))
	mux.Handle("GET /api/ping", rest.NewPingHandler(log, map[string]core.Pinger{"indexer": indexer}))

	handler := middleware.PanicRecovery(mux, log)
	return middleware.Logging(handler, log), nil
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting keyword gateway")
	log.Debug("debug messages are enabled")

	client, err := indexer.NewClient(cfg.IndexerAddress, log)
	if err != nil {
		return fmt.Errorf("cannot init Indexer adapter: %w", err)
	}
	defer client.Close()

	handler, err := newRouter(log, cfg, client)
	if err != nil {
		return err
	}

	server := http.Server{
		Addr:         cfg.Server.Address,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      handler,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		log.Debug("shutting down keyword gateway...")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctxTimeout); err != nil {
			log.Error("erroneous shutdown", "error", err)
			return
		}
		log.Debug("keyword gateway stopped gracefully")
	}()

	log.Info("keyword gateway listening", "address", cfg.Server.Address, "indexer", cfg.IndexerAddress)
	if err := server.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server closed unexpectedly: %w", err)
		}
	}
	return nil
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		panic("unknown log level: " + logLevel)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	return slog.New(handler)
}
