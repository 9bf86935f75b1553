package main

import (
	"context"
	"flag"
	"fmt"
	"keyword-index/indexer/adapters/corpus"
	"keyword-index/indexer/adapters/db"
	indexergrpc "keyword-index/indexer/adapters/grpc"
	"keyword-index/indexer/adapters/publisher"
	"keyword-index/indexer/adapters/scheduler"
	"keyword-index/indexer/adapters/stemmer"
	"keyword-index/indexer/adapters/subscriber"
	"keyword-index/indexer/adapters/tokenizer"
	"keyword-index/indexer/config"
	"keyword-index/indexer/core"
	indexerpb "keyword-index/proto/indexer"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
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

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting Indexer service...")
	log.Debug("debug messages are enabled")

	// Reference limit is checked before anything is touched
	if err := core.ValidateReferenceLimit(cfg.Reference.Limit); err != nil {
		return fmt.Errorf("bad reference configuration: %w", err)
	}
	mode, err := core.ParseFilterMode(cfg.Reference.FilterMode)
	if err != nil {
		return fmt.Errorf("bad filter mode %q: %w", cfg.Reference.FilterMode, err)
	}

	// Database adapter
	storage, err := db.New(log, cfg.DBAddress)
	if err != nil {
		return fmt.Errorf("failed to connect to db: %v", err)
	}
	defer storage.Close()

	if err := storage.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate db: %v", err)
	}

	// Publisher adapter
	events, err := publisher.NewNatsPublisher(cfg.Broker.Address, cfg.Broker.EventsSubject, log)
	if err != nil {
		return fmt.Errorf("failed create Nats publisher: %w", err)
	}
	defer events.Close()

	// Pipeline
	stem, err := stemmer.New(cfg.Extract.Stemmer)
	if err != nil {
		return fmt.Errorf("failed create stemmer: %w", err)
	}
	pipeline := core.NewPipeline(tokenizer.New(cfg.Extract.StopWords), stem)

	// Service
	indexer, err := core.NewService(log, pipeline, storage, corpus.New(log, cfg.Reference.Path), events, core.Options{
		Concurrency:     cfg.Extract.Concurrency,
		MaxDocumentSize: cfg.Extract.MaxDocumentSize,
		ReferenceLimit:  cfg.Reference.Limit,
		ExcludePOS:      cfg.Reference.ExcludePOS,
		FilterMode:      mode,
	})
	if err != nil {
		return fmt.Errorf("failed create Indexer service: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Reference reload scheduler
	if err := scheduler.NewReloadScheduler(log, indexer, cfg.Reference.ReloadPeriod).Start(ctx); err != nil {
		return fmt.Errorf("failed to load reference list: %w", err)
	}

	// Subscriber adapter
	ingest, err := subscriber.NewNatsSubscriber(
		cfg.Broker.Address, cfg.Broker.IngestSubject, indexer, cfg.Broker.HandlerTimeout, log,
	)
	if err != nil {
		return fmt.Errorf("failed create Nats subscriber: %w", err)
	}
	defer ingest.Unsubscribe()

	// gRPC server
	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}

	s := grpc.NewServer(indexerpb.ServerCodec())
	indexerpb.RegisterIndexerServer(s, indexergrpc.NewServer(indexer))
	reflection.Register(s)

	go func() {
		<-ctx.Done()
		log.Debug("shutting down Indexer service...")

		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
			log.Debug("Indexer service stopped gracefully")
		case <-time.After(30 * time.Second):
			log.Debug("Indexer service forcing shutdown")
			s.Stop()
		}
	}()

	log.Info("Indexer service started", "address", cfg.Address, "log_level", cfg.LogLevel)
	if err := s.Serve(listener); err != nil {
		return fmt.Errorf("failed to serve: %v", err)
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
