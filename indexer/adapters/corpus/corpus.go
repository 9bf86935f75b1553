package corpus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"keyword-index/indexer/core"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed corpus line")

// Corpus reads the word frequency list: one "rank<TAB>word<TAB>pos" entry per
// line, most frequent first.
type Corpus struct {
	log  *slog.Logger
	path string
}

func New(log *slog.Logger, path string) *Corpus {
	return &Corpus{
		log:  log,
		path: path,
	}
}

func (c *Corpus) Entries(ctx context.Context) ([]core.ReferenceEntry, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			c.log.Warn("failed to close corpus", "error", err)
		}
	}()

	entries, err := Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.path, err)
	}
	c.log.Debug("corpus read", "path", c.path, "entries", len(entries))
	return entries, nil
}

// Read parses at most core.MaxReferenceEntries entries. Blank lines are skipped.
func Read(ctx context.Context, r io.Reader) ([]core.ReferenceEntry, error) {
	entries := make([]core.ReferenceEntry, 0, core.MaxReferenceEntries)
	scanner := bufio.NewScanner(r)
	line := 0
	for len(entries) < core.MaxReferenceEntries && scanner.Scan() {
		line++
		if line%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		entry, err := parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	return entries, nil
}

func parse(text string) (core.ReferenceEntry, error) {
	fields := strings.Split(text, "\t")
	if len(fields) < 3 {
		return core.ReferenceEntry{}, fmt.Errorf("%d fields: %w", len(fields), ErrMalformed)
	}
	rank, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return core.ReferenceEntry{}, fmt.Errorf("rank %q: %w", fields[0], ErrMalformed)
	}
	return core.ReferenceEntry{
		Rank: rank,
		Word: strings.TrimSpace(fields[1]),
		POS:  strings.TrimSpace(fields[2]),
	}, nil
}
