package stemmer

import (
	"fmt"
	"keyword-index/indexer/core"

	"github.com/kljensen/snowball/english"
	"github.com/reiver/go-porterstemmer"
)

const (
	NameSnowball = "snowball"
	NamePorter   = "porter"
)

// Snowball stems with the Porter2 English algorithm.
type Snowball struct{}

func (Snowball) Stem(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	stem := english.Stem(token, true)
	return stem, stem != ""
}

// Porter stems with the classic Porter algorithm.
type Porter struct{}

func (Porter) Stem(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	stem := porterstemmer.StemString(token)
	return stem, stem != ""
}

func New(name string) (core.Stemmer, error) {
	switch name {
	case NameSnowball, "":
		return Snowball{}, nil
	case NamePorter:
		return Porter{}, nil
	default:
		return nil, fmt.Errorf("unknown stemmer %q: %w", name, core.ErrBadArguments)
	}
}
