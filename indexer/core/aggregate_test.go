package core_test

import (
	"keyword-index/indexer/core"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func newPipeline() *core.Pipeline {
	return core.NewPipeline(spaceTokenizer{}, suffixStemmer{})
}

func TestKeywords(t *testing.T) {
	testCases := []struct {
		desc     string
		given    string
		expected []core.Keyword
	}{
		{
			desc:     "empty",
			given:    "",
			expected: []core.Keyword{},
		},
		{
			desc:  "inflected forms share a stem",
			given: "meet meets meeting",
			expected: []core.Keyword{
				{Stem: "meet", Terms: []string{"meet", "meets", "meeting"}, Frequency: 3},
			},
		},
		{
			desc:     "numbers only",
			given:    "100 200 300",
			expected: []core.Keyword{},
		},
		{
			desc:  "hyphenated compound stays whole",
			given: "well-known well known",
			expected: []core.Keyword{
				{Stem: "well-known", Terms: []string{"well-known"}, Frequency: 1},
				{Stem: "well", Terms: []string{"well"}, Frequency: 1},
				{Stem: "known", Terms: []string{"known"}, Frequency: 1},
			},
		},
		{
			desc:  "repeated form counts without growing terms",
			given: "cats cat cats cats",
			expected: []core.Keyword{
				{Stem: "cat", Terms: []string{"cats", "cat"}, Frequency: 4},
			},
		},
		{
			desc:  "ranked by frequency, ties in first-seen order",
			given: "dog tree dogs bird trees dogs",
			expected: []core.Keyword{
				{Stem: "dog", Terms: []string{"dog", "dogs"}, Frequency: 3},
				{Stem: "tree", Terms: []string{"tree", "trees"}, Frequency: 2},
				{Stem: "bird", Terms: []string{"bird"}, Frequency: 1},
			},
		},
		{
			desc:  "punctuation and contractions",
			given: "Walker's walking, walked; WALKS!",
			expected: []core.Keyword{
				{Stem: "walk", Terms: []string{"walking", "walked", "walks"}, Frequency: 3},
				{Stem: "walker", Terms: []string{"walker"}, Frequency: 1},
			},
		},
		{
			desc:  "apostrophes and numbers are skipped",
			given: "o'clock 42 clocks",
			expected: []core.Keyword{
				{Stem: "clock", Terms: []string{"clocks"}, Frequency: 1},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			keywords := newPipeline().Keywords(tc.given)
			require.Equal(t, tc.expected, keywords)
		})
	}
}

func TestKeywordsProperties(t *testing.T) {
	text := "The runner runs; runners ran, running and run-down runs. Run! 7 runs"
	p := newPipeline()

	first := p.Keywords(text)
	require.Equal(t, first, p.Keywords(text))

	stems := map[string]bool{}
	for _, kw := range first {
		require.False(t, stems[kw.Stem], "duplicate stem %q", kw.Stem)
		stems[kw.Stem] = true
		require.GreaterOrEqual(t, kw.Frequency, len(kw.Terms))
	}
	for i := 1; i < len(first); i++ {
		require.GreaterOrEqual(t, first[i-1].Frequency, first[i].Frequency)
	}
}

func TestMerge(t *testing.T) {
	first := []core.Keyword{
		{Stem: "meet", Terms: []string{"meet", "meets"}, Frequency: 3},
		{Stem: "dog", Terms: []string{"dog"}, Frequency: 1},
	}
	second := []core.Keyword{
		{Stem: "cat", Terms: []string{"cats"}, Frequency: 2},
		{Stem: "meet", Terms: []string{"meeting", "meet"}, Frequency: 2},
	}

	merged := core.Merge(first, second)
	require.Equal(t, []core.Keyword{
		{Stem: "meet", Terms: []string{"meet", "meets", "meeting"}, Frequency: 5},
		{Stem: "dog", Terms: []string{"dog"}, Frequency: 1},
		{Stem: "cat", Terms: []string{"cats"}, Frequency: 2},
	}, merged)

	reversed := core.Merge(second, first)
	require.Len(t, reversed, len(merged))
	for _, kw := range reversed {
		i := slices.IndexFunc(merged, func(m core.Keyword) bool { return m.Stem == kw.Stem })
		require.NotEqual(t, -1, i)
		require.Equal(t, merged[i].Frequency, kw.Frequency)
		require.ElementsMatch(t, merged[i].Terms, kw.Terms)
	}
	require.Empty(t, core.Merge())
}

func TestLabel(t *testing.T) {
	kw := core.Keyword{Stem: "meet", Terms: []string{"meet", "meets"}, Frequency: 2}
	require.Equal(t, "meet:\n\tmeet\n\tmeets", kw.Label())
}
