package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

type Options struct {
	Concurrency     int
	MaxDocumentSize int
	ReferenceLimit  int
	ExcludePOS      string
	FilterMode      FilterMode
}

type Service struct {
	log       *slog.Logger
	pipeline  *Pipeline
	db        DB
	reference Reference
	publisher Publisher
	opts      Options

	lock       sync.RWMutex
	keywords   []Keyword
	inProgress atomic.Bool
}

func NewService(
	log *slog.Logger, pipeline *Pipeline, db DB, reference Reference, publisher Publisher, opts Options,
) (*Service, error) {
	if opts.Concurrency < 1 {
		return nil, fmt.Errorf("wrong concurrency specified: %d", opts.Concurrency)
	}
	if opts.MaxDocumentSize < 1 {
		return nil, fmt.Errorf("wrong max document size specified: %d", opts.MaxDocumentSize)
	}
	if err := ValidateReferenceLimit(opts.ReferenceLimit); err != nil {
		return nil, err
	}
	if opts.FilterMode == "" {
		opts.FilterMode = FilterInclude
	}
	return &Service{
		log:       log,
		pipeline:  pipeline,
		db:        db,
		reference: reference,
		publisher: publisher,
		opts:      opts,
	}, nil
}

func (s *Service) checkSize(text string) error {
	if len(text) > s.opts.MaxDocumentSize {
		return fmt.Errorf("%d bytes, limit %d: %w", len(text), s.opts.MaxDocumentSize, ErrTooLarge)
	}
	return nil
}

func (s *Service) Extract(_ context.Context, text string) ([]Keyword, error) {
	if err := s.checkSize(text); err != nil {
		return nil, err
	}
	keywords := s.pipeline.Keywords(text)
	s.log.Debug("keywords extracted", "bytes", len(text), "keywords", len(keywords))
	return keywords, nil
}

func (s *Service) Terms(ctx context.Context, text string) ([]string, error) {
	keywords, err := s.Extract(ctx, text)
	if err != nil {
		return nil, err
	}
	return Expand(s.filter(keywords)), nil
}

func (s *Service) filter(keywords []Keyword) []Keyword {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return Filter(keywords, s.keywords, s.opts.FilterMode)
}

type indexJob struct {
	pos int
	doc Document
}

type indexResult struct {
	pos int
	doc DocumentKeywords
}

// Index extracts keywords of every document on a pool of workers, stores the
// per-document keywords and filtered terms, and returns the merged ranking.
func (s *Service) Index(ctx context.Context, docs ...Document) ([]Keyword, error) {
	if len(docs) == 0 {
		return nil, ErrBadArguments
	}
	for _, doc := range docs {
		if doc.ID == "" {
			return nil, fmt.Errorf("document without id: %w", ErrBadArguments)
		}
		if err := s.checkSize(doc.Text); err != nil {
			return nil, fmt.Errorf("document %q: %w", doc.ID, err)
		}
	}

	s.log.Info("indexing started", "documents", len(docs))
	defer func(start time.Time) {
		s.log.Info("indexing finished", "duration", time.Since(start))
	}(time.Now())

	jobs := make(chan indexJob, len(docs))
	results := make(chan indexResult, len(docs))

	for w := 1; w <= min(s.opts.Concurrency, len(docs)); w++ {
		go s.worker(jobs, results)
	}
	for pos, doc := range docs {
		jobs <- indexJob{pos: pos, doc: doc}
	}
	close(jobs)

	indexed := make([]DocumentKeywords, len(docs))
	for range docs {
		res := <-results
		indexed[res.pos] = res.doc
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.db.Add(ctx, indexed...); err != nil {
		s.log.Error("failed to store documents", "error", err)
		return nil, fmt.Errorf("failed to store documents: %w", err)
	}
	s.log.Debug("stored documents", "counter", len(indexed))

	if err := s.publisher.Publish(EventIndexed); err != nil {
		s.log.Error("failed to publish", "error", err)
	}

	lists := make([][]Keyword, len(indexed))
	for i, doc := range indexed {
		lists[i] = doc.Keywords
	}
	return Rank(Merge(lists...)), nil
}

func (s *Service) worker(jobs <-chan indexJob, results chan<- indexResult) {
	for job := range jobs {
		keywords := s.pipeline.Keywords(job.doc.Text)
		results <- indexResult{
			pos: job.pos,
			doc: DocumentKeywords{
				ID:       job.doc.ID,
				Keywords: keywords,
				Terms:    Expand(s.filter(keywords)),
			},
		}
	}
}

func (s *Service) HandleDocument(ctx context.Context, doc Document) error {
	if _, err := s.Index(ctx, doc); err != nil {
		return fmt.Errorf("failed to index document %q: %w", doc.ID, err)
	}
	return nil
}

func (s *Service) Document(ctx context.Context, id string) ([]string, error) {
	if id == "" {
		return nil, ErrBadArguments
	}
	terms, err := s.db.Terms(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document terms: %w", err)
	}
	return terms, nil
}

func (s *Service) Stats(ctx context.Context) (ServiceStats, error) {
	stats, err := s.db.Stats(ctx)
	if err != nil {
		s.log.Error("failed to get database stats", "error", err)
		return ServiceStats{}, fmt.Errorf("failed to get database stats: %w", err)
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	return ServiceStats{
		DBStats:       stats,
		ReferenceSize: int64(len(s.keywords)),
	}, nil
}

func (s *Service) Drop(ctx context.Context) error {
	if err := s.db.Drop(ctx); err != nil {
		s.log.Error("failed to drop db entries", "error", err)
		return fmt.Errorf("failed to drop db entries: %w", err)
	}
	if err := s.publisher.Publish(EventReset); err != nil {
		s.log.Error("failed to publish", "error", err)
	}
	return nil
}

// Reference returns the currently loaded reference keywords.
func (s *Service) Reference() []Keyword {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.keywords
}

func (s *Service) ReloadReference(ctx context.Context) error {
	if !s.inProgress.CompareAndSwap(false, true) {
		return ErrAlreadyExists
	}
	defer s.inProgress.Store(false)

	s.log.Info("reference reload started")
	defer func(start time.Time) {
		s.log.Info("reference reload finished", "duration", time.Since(start))
	}(time.Now())

	entries, err := s.reference.Entries(ctx)
	if err != nil {
		s.log.Error("failed to read reference corpus", "error", err)
		return fmt.Errorf("failed to read reference corpus: %w", err)
	}
	keywords, err := s.pipeline.LoadReference(entries, s.opts.ReferenceLimit, s.opts.ExcludePOS)
	if err != nil {
		s.log.Error("failed to build reference list", "error", err)
		return fmt.Errorf("failed to build reference list: %w", err)
	}

	s.lock.Lock()
	s.keywords = keywords
	s.lock.Unlock()

	s.log.Debug("reference list loaded", "entries", len(entries), "keywords", len(keywords))
	return nil
}
