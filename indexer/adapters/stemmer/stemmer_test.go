package stemmer_test

import (
	"keyword-index/indexer/adapters/stemmer"
	"keyword-index/indexer/adapters/tokenizer"
	"keyword-index/indexer/core"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStem(t *testing.T) {
	testCases := []struct {
		desc     string
		given    string
		expected string
		ok       bool
	}{
		{desc: "empty", given: "", expected: "", ok: false},
		{desc: "inflection", given: "meeting", expected: "meet", ok: true},
		{desc: "plural", given: "cats", expected: "cat", ok: true},
		{desc: "sses", given: "caresses", expected: "caress", ok: true},
		{desc: "ies", given: "ponies", expected: "poni", ok: true},
	}
	for _, name := range []string{stemmer.NameSnowball, stemmer.NamePorter} {
		s, err := stemmer.New(name)
		require.NoError(t, err)
		for _, tc := range testCases {
			t.Run(name+"/"+tc.desc, func(t *testing.T) {
				stem, ok := s.Stem(tc.given)
				require.Equal(t, tc.ok, ok)
				require.Equal(t, tc.expected, stem)
			})
		}
	}
}

func TestNew(t *testing.T) {
	s, err := stemmer.New("")
	require.NoError(t, err)
	require.IsType(t, stemmer.Snowball{}, s)

	s, err = stemmer.New(stemmer.NamePorter)
	require.NoError(t, err)
	require.IsType(t, stemmer.Porter{}, s)

	_, err = stemmer.New("lancaster")
	require.ErrorIs(t, err, core.ErrBadArguments)
}

func TestPipeline(t *testing.T) {
	for _, s := range []core.Stemmer{stemmer.Snowball{}, stemmer.Porter{}} {
		pipeline := core.NewPipeline(tokenizer.New(false), s)

		keywords := pipeline.Keywords("meet meets meeting")
		require.Equal(t, []core.Keyword{
			{Stem: "meet", Terms: []string{"meet", "meets", "meeting"}, Frequency: 3},
		}, keywords)

		require.Empty(t, pipeline.Keywords("100 200 300"))

		stems := []string{}
		for _, kw := range pipeline.Keywords("well-known well known") {
			stems = append(stems, kw.Stem)
		}
		require.Contains(t, stems, "well-known")
		require.Contains(t, stems, "well")
	}
}
