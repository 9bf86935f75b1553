package core

import "strings"

type EventType string

const (
	EventIndexed EventType = "indexed"
	EventReset   EventType = "reset"
)

type FilterMode string

const (
	// FilterInclude keeps document keywords that also occur in the reference list.
	FilterInclude FilterMode = "include"
	// FilterExclude keeps document keywords that are absent from the reference list.
	FilterExclude FilterMode = "exclude"
)

// Keyword groups every surface form that resolved to one stem.
// Stem is the identity: a keyword list never holds two entries with the same Stem.
type Keyword struct {
	Stem      string   `json:"stem"`
	Terms     []string `json:"terms"`
	Frequency int      `json:"frequency"`
}

// Label renders the keyword as "stem:" followed by one tab-indented line per term.
func (k Keyword) Label() string {
	var b strings.Builder
	b.WriteString(k.Stem)
	b.WriteString(":")
	for _, term := range k.Terms {
		b.WriteString("\n\t")
		b.WriteString(term)
	}
	return b.String()
}

// ReferenceEntry is one line of the frequency corpus.
type ReferenceEntry struct {
	Rank int
	Word string
	POS  string
}

type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type DocumentKeywords struct {
	ID       string
	Keywords []Keyword
	Terms    []string
}

type DBStats struct {
	Documents   int64 `db:"documents"`
	TermsTotal  int64 `db:"terms_total"`
	TermsUnique int64 `db:"terms_unique"`
}

type ServiceStats struct {
	DBStats
	ReferenceSize int64
}
