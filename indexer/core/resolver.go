package core

import (
	"regexp"
	"strconv"
	"strings"
)

var validStem = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// Resolver maps a surface token to its stem using the injected Tokenizer and Stemmer.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	tokenizer Tokenizer
	stemmer   Stemmer
}

func NewResolver(tokenizer Tokenizer, stemmer Stemmer) *Resolver {
	return &Resolver{
		tokenizer: tokenizer,
		stemmer:   stemmer,
	}
}

// Resolve returns the stem of token, or false when the token is ambiguous
// (zero or several stems), contains characters outside [a-zA-Z0-9-] or is a bare integer.
// The hyphen sentinel in the returned stem is restored to a literal hyphen.
func (r *Resolver) Resolve(token string) (string, bool) {
	var stem string
	found := false
	for t := range r.tokenizer.Tokens(token) {
		s, ok := r.stemmer.Stem(t)
		if !ok {
			return "", false
		}
		if found && s != stem {
			return "", false
		}
		stem, found = s, true
	}
	if !found {
		return "", false
	}
	if !validStem.MatchString(stem) {
		return "", false
	}
	if _, err := strconv.Atoi(stem); err == nil {
		return "", false
	}
	return restoreHyphens(stem), true
}

func restoreHyphens(s string) string {
	return strings.ReplaceAll(s, HyphenSentinel, "-")
}
