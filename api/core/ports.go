package core

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks.go -package=core

type Pinger interface {
	Ping(ctx context.Context) error
}

type Extractor interface {
	Extract(ctx context.Context, text string) ([]Keyword, error)
	Terms(ctx context.Context, text string) ([]string, error)
}

type Indexer interface {
	Index(ctx context.Context, doc Document) ([]Keyword, error)
	Document(ctx context.Context, id string) ([]string, error)
	Stats(ctx context.Context) (IndexStats, error)
	Drop(ctx context.Context) error
	Reload(ctx context.Context) error
}

type Authenticator interface {
	CreateToken(name, password string) (string, error)
	ValidateToken(tokenString string) error
}
