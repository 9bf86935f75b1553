package tokenizer

import (
	"iter"
	"keyword-index/indexer/core"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits normalized text into lowercase, accent-folded word tokens.
// A token is a run of letters, digits, apostrophes and hyphens; the hyphen
// sentinel and stray apostrophes or hyphens at its edges are trimmed.
type Tokenizer struct {
	stopWords bool
}

// New returns a Tokenizer. With stopWords set English stop words are dropped.
func New(stopWords bool) *Tokenizer {
	return &Tokenizer{stopWords: stopWords}
}

func (t *Tokenizer) Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, field := range strings.FieldsFunc(text, isSeparator) {
			token := fold(trim(field))
			if token == "" {
				continue
			}
			if t.stopWords && english.IsStopWord(token) {
				continue
			}
			if !yield(token) {
				return
			}
		}
	}
}

func isSeparator(c rune) bool {
	return !unicode.IsLetter(c) && !unicode.IsNumber(c) && c != '\'' && c != '-'
}

func trim(token string) string {
	for {
		trimmed := strings.TrimPrefix(token, core.HyphenSentinel)
		trimmed = strings.TrimSuffix(trimmed, core.HyphenSentinel)
		trimmed = strings.Trim(trimmed, "'")
		if trimmed == token {
			return strings.Trim(token, "-")
		}
		token = trimmed
	}
}

// fold drops combining marks and lowercases. Transformers keep state, so a
// fresh chain is built per call and Tokens stays safe for concurrent use.
func fold(token string) string {
	if token == "" {
		return ""
	}
	chain := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		cases.Lower(language.English),
	)
	folded, _, err := transform.String(chain, token)
	if err != nil {
		return strings.ToLower(token)
	}
	return folded
}
