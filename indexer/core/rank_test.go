package core_test

import (
	"keyword-index/indexer/core"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	given := []core.Keyword{
		{Stem: "a", Frequency: 1},
		{Stem: "b", Frequency: 3},
		{Stem: "c", Frequency: 1},
		{Stem: "d", Frequency: 3},
		{Stem: "e", Frequency: 2},
	}
	ranked := core.Rank(given)

	var stems []string
	for _, kw := range ranked {
		stems = append(stems, kw.Stem)
	}
	require.Equal(t, []string{"b", "d", "e", "a", "c"}, stems)
	require.Equal(t, "a", given[0].Stem, "input must not be reordered")
	require.Empty(t, core.Rank(nil))
}
