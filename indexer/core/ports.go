package core

import (
	"context"
	"iter"
)

//go:generate mockgen -source=ports.go -destination=mocks.go -package=core

// Tokenizer splits normalized text into raw surface tokens.
// Every call returns a fresh sequence.
type Tokenizer interface {
	Tokens(text string) iter.Seq[string]
}

// Stemmer returns the root of a single token, or false when no root can be determined.
type Stemmer interface {
	Stem(token string) (string, bool)
}

type Reference interface {
	Entries(ctx context.Context) ([]ReferenceEntry, error)
}

type DB interface {
	Add(ctx context.Context, docs ...DocumentKeywords) error
	Terms(ctx context.Context, id string) ([]string, error)
	Stats(ctx context.Context) (DBStats, error)
	Drop(ctx context.Context) error
}

type Publisher interface {
	Publish(event EventType) error
}

type Indexer interface {
	Extract(ctx context.Context, text string) ([]Keyword, error)
	Terms(ctx context.Context, text string) ([]string, error)
	Index(ctx context.Context, docs ...Document) ([]Keyword, error)
	Document(ctx context.Context, id string) ([]string, error)
	Stats(ctx context.Context) (ServiceStats, error)
	Drop(ctx context.Context) error
	ReloadReference(ctx context.Context) error
}

type ReferenceLoader interface {
	ReloadReference(ctx context.Context) error
}

type DocumentHandler interface {
	HandleDocument(ctx context.Context, doc Document) error
}
