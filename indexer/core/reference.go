package core

import (
	"fmt"
	"strings"
)

const (
	// MaxReferenceEntries is the size of the bundled frequency corpus.
	MaxReferenceEntries = 5000
	// DefaultExcludedPOS skips nouns when building the reference list.
	DefaultExcludedPOS = "n"
)

// ValidateReferenceLimit reports a configuration error for limits outside (0, MaxReferenceEntries].
func ValidateReferenceLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("reference limit %d: %w", limit, ErrBadArguments)
	}
	if limit > MaxReferenceEntries {
		return fmt.Errorf("reference limit %d is above %d: %w", limit, MaxReferenceEntries, ErrReferenceLimit)
	}
	return nil
}

// LoadReference builds the reference keyword list from the first limit corpus
// entries. Entries tagged with excludePOS are skipped but still use up the budget:
// limit counts lines read, not words kept. An empty excludePOS keeps every entry.
func (p *Pipeline) LoadReference(entries []ReferenceEntry, limit int, excludePOS string) ([]Keyword, error) {
	if err := ValidateReferenceLimit(limit); err != nil {
		return nil, err
	}
	if limit > len(entries) {
		return nil, fmt.Errorf("reference limit %d, corpus has %d entries: %w", limit, len(entries), ErrReferenceLimit)
	}

	var words strings.Builder
	for _, entry := range entries[:limit] {
		if excludePOS != "" && entry.POS == excludePOS {
			continue
		}
		words.WriteString(entry.Word)
		words.WriteString("\n")
	}
	return p.Keywords(words.String()), nil
}
