package core_test

import (
	"keyword-index/indexer/core"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	document = []core.Keyword{
		{Stem: "court", Terms: []string{"court", "courts"}, Frequency: 4},
		{Stem: "deed", Terms: []string{"deed"}, Frequency: 3},
		{Stem: "make", Terms: []string{"make", "making"}, Frequency: 2},
		{Stem: "lander", Terms: []string{"lander"}, Frequency: 1},
	}
	reference = []core.Keyword{
		{Stem: "make", Terms: []string{"make"}, Frequency: 1},
		{Stem: "court", Terms: []string{"court"}, Frequency: 1},
		{Stem: "go", Terms: []string{"go"}, Frequency: 1},
	}
)

func TestFilter(t *testing.T) {
	testCases := []struct {
		desc      string
		document  []core.Keyword
		reference []core.Keyword
		mode      core.FilterMode
		expected  []string
	}{
		{
			desc:      "include - intersection keeps document order",
			document:  document,
			reference: reference,
			mode:      core.FilterInclude,
			expected:  []string{"court", "make"},
		},
		{
			desc:      "exclude - document distinctive stems",
			document:  document,
			reference: reference,
			mode:      core.FilterExclude,
			expected:  []string{"deed", "lander"},
		},
		{
			desc:      "include - empty reference yields nothing",
			document:  document,
			reference: nil,
			mode:      core.FilterInclude,
			expected:  []string{},
		},
		{
			desc:      "exclude - empty reference keeps everything",
			document:  document,
			reference: nil,
			mode:      core.FilterExclude,
			expected:  []string{"court", "deed", "make", "lander"},
		},
		{
			desc:      "include - empty document",
			document:  nil,
			reference: reference,
			mode:      core.FilterInclude,
			expected:  []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			filtered := core.Filter(tc.document, tc.reference, tc.mode)
			stems := []string{}
			for _, kw := range filtered {
				stems = append(stems, kw.Stem)
			}
			require.Equal(t, tc.expected, stems)
		})
	}
}

func TestFilterIntersection(t *testing.T) {
	refStems := map[string]bool{}
	for _, kw := range reference {
		refStems[kw.Stem] = true
	}
	docStems := map[string]bool{}
	for _, kw := range document {
		docStems[kw.Stem] = true
	}
	for _, kw := range core.Filter(document, reference, core.FilterInclude) {
		require.True(t, refStems[kw.Stem])
		require.True(t, docStems[kw.Stem])
	}
}

func TestExpand(t *testing.T) {
	require.Equal(t,
		[]string{"court", "courts", "make", "making"},
		core.Expand(core.Filter(document, reference, core.FilterInclude)),
	)
	require.Empty(t, core.Expand(nil))
}

func TestParseFilterMode(t *testing.T) {
	testCases := []struct {
		desc     string
		given    string
		expected core.FilterMode
		wantErr  bool
	}{
		{desc: "default", given: "", expected: core.FilterInclude},
		{desc: "include", given: "include", expected: core.FilterInclude},
		{desc: "exclude", given: "exclude", expected: core.FilterExclude},
		{desc: "unknown", given: "both", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			mode, err := core.ParseFilterMode(tc.given)
			if tc.wantErr {
				require.ErrorIs(t, err, core.ErrBadArguments)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, mode)
		})
	}
}
