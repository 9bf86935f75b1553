package core

import (
	"cmp"
	"slices"
)

// Rank orders keywords by descending frequency. The sort is stable, so keywords
// with equal frequency keep their first-seen order. The input is left untouched.
func Rank(keywords []Keyword) []Keyword {
	ranked := slices.Clone(keywords)
	slices.SortStableFunc(ranked, func(a, b Keyword) int {
		return cmp.Compare(b.Frequency, a.Frequency)
	})
	return ranked
}
