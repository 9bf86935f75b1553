package core_test

import (
	"iter"
	"strings"
)

// spaceTokenizer splits on whitespace and lowercases.
type spaceTokenizer struct{}

func (spaceTokenizer) Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, field := range strings.Fields(strings.ToLower(text)) {
			if !yield(field) {
				return
			}
		}
	}
}

// suffixStemmer strips a handful of English suffixes.
type suffixStemmer struct{}

func (suffixStemmer) Stem(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	for _, suffix := range []string{"ing", "s", "ed"} {
		if stem, ok := strings.CutSuffix(token, suffix); ok && len(stem) > 2 {
			return stem, true
		}
	}
	return token, true
}
