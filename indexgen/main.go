package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"keyword-index/indexer/adapters/corpus"
	"keyword-index/indexer/adapters/files"
	"keyword-index/indexer/adapters/stemmer"
	"keyword-index/indexer/adapters/tokenizer"
	"keyword-index/indexer/core"
	"keyword-index/indexgen/config"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type options struct {
	input      string
	output     string
	reference  string
	limit      int
	excludePOS string
	mode       string
	stemmer    string
	stopWords  bool
	verbose    bool
	maxSize    int
	logLevel   string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read environment: %s\n", err)
		os.Exit(1)
	}

	opts, err := parseFlags(cfg, os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	log := mustMakeLogger(opts.logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts, os.Stdout, log); err != nil {
		log.Error("indexgen failed", "error", err)
		fmt.Fprintln(os.Stderr, "indexgen:", err)
		os.Exit(1)
	}
}

func parseFlags(cfg config.Config, args []string, output io.Writer) (options, error) {
	fs := flag.NewFlagSet("indexgen", flag.ContinueOnError)
	fs.SetOutput(output)

	opts := options{maxSize: cfg.MaxDocumentSize, logLevel: cfg.LogLevel}
	fs.StringVar(&opts.input, "input", "", "document to extract keywords from")
	fs.StringVar(&opts.output, "output", "", "file to write the filtered terms to")
	fs.StringVar(&opts.reference, "reference", cfg.ReferencePath, "reference corpus, rank<TAB>word<TAB>pos per line")
	fs.IntVar(&opts.limit, "limit", cfg.ReferenceLimit, "number of reference corpus lines to read")
	fs.StringVar(&opts.excludePOS, "exclude-pos", cfg.ExcludePOS, "part of speech tag skipped in the reference corpus")
	fs.StringVar(&opts.mode, "mode", cfg.FilterMode, "filter mode: include or exclude")
	fs.StringVar(&opts.stemmer, "stemmer", cfg.Stemmer, "stemmer: snowball or porter")
	fs.BoolVar(&opts.stopWords, "stopwords", cfg.StopWords, "drop english stop words")
	fs.BoolVar(&opts.verbose, "verbose", false, "print ranked keywords")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.verbose && opts.logLevel == "ERROR" {
		opts.logLevel = "DEBUG"
	}
	return opts, nil
}

func run(ctx context.Context, opts options, stdout io.Writer, log *slog.Logger) error {
	if err := core.ValidateReferenceLimit(opts.limit); err != nil {
		return fmt.Errorf("bad reference limit: %w", err)
	}
	mode, err := core.ParseFilterMode(opts.mode)
	if err != nil {
		return fmt.Errorf("bad filter mode %q: %w", opts.mode, err)
	}
	if opts.input == "" || opts.output == "" {
		return fmt.Errorf("input and output are required: %w", core.ErrBadArguments)
	}

	defer func(start time.Time) {
		log.Info("indexgen finished", "duration", time.Since(start))
	}(time.Now())

	st, err := stemmer.New(opts.stemmer)
	if err != nil {
		return err
	}
	pipeline := core.NewPipeline(tokenizer.New(opts.stopWords), st)

	// reference configuration errors surface before the document is touched
	entries, err := corpus.New(log, opts.reference).Entries(ctx)
	if err != nil {
		return err
	}
	reference, err := pipeline.LoadReference(entries, opts.limit, opts.excludePOS)
	if err != nil {
		return fmt.Errorf("failed to build reference list: %w", err)
	}
	log.Debug("reference list loaded", "entries", len(entries), "keywords", len(reference))

	text, err := files.ReadDocument(opts.input, opts.maxSize)
	if err != nil {
		return err
	}

	keywords := pipeline.Keywords(text)
	log.Debug("keywords extracted", "bytes", len(text), "keywords", len(keywords))
	if opts.verbose {
		for _, keyword := range keywords {
			fmt.Fprintf(stdout, "%d\t%s\n", keyword.Frequency, keyword.Label())
		}
	}

	terms := core.Expand(core.Filter(keywords, reference, mode))
	if err := files.WriteTerms(opts.output, terms); err != nil {
		return err
	}
	log.Debug("terms written", "path", opts.output, "terms", len(terms))
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
