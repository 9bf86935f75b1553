package corpus_test

import (
	"context"
	"fmt"
	"keyword-index/indexer/adapters/corpus"
	"keyword-index/indexer/core"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	testCases := []struct {
		desc     string
		given    string
		expected []core.ReferenceEntry
		wantErr  string
	}{
		{
			desc:     "empty",
			given:    "",
			expected: []core.ReferenceEntry{},
		},
		{
			desc:  "entries in file order",
			given: "1\tthe\ta\n2\tbe\tv\n3\tand\tc\n",
			expected: []core.ReferenceEntry{
				{Rank: 1, Word: "the", POS: "a"},
				{Rank: 2, Word: "be", POS: "v"},
				{Rank: 3, Word: "and", POS: "c"},
			},
		},
		{
			desc:  "blank lines and carriage returns",
			given: "1\tthe\ta\r\n\r\n\n2\tbe\tv\r\n",
			expected: []core.ReferenceEntry{
				{Rank: 1, Word: "the", POS: "a"},
				{Rank: 2, Word: "be", POS: "v"},
			},
		},
		{
			desc:  "extra columns ignored",
			given: "1\tthe\ta\t22038615\n",
			expected: []core.ReferenceEntry{
				{Rank: 1, Word: "the", POS: "a"},
			},
		},
		{
			desc:    "error - missing column",
			given:   "1\tthe\ta\n2\tbe\n",
			wantErr: "line 2",
		},
		{
			desc:    "error - rank is not a number",
			given:   "first\tthe\ta\n",
			wantErr: "line 1",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			entries, err := corpus.Read(context.TODO(), strings.NewReader(tc.given))
			if tc.wantErr != "" {
				require.ErrorIs(t, err, corpus.ErrMalformed)
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, entries)
		})
	}
}

func TestReadCapsEntries(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= core.MaxReferenceEntries+10; i++ {
		fmt.Fprintf(&b, "%d\tword%d\tn\n", i, i)
	}
	b.WriteString("broken line\n")

	entries, err := corpus.Read(context.TODO(), strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Len(t, entries, core.MaxReferenceEntries)
	require.Equal(t, core.MaxReferenceEntries, entries[len(entries)-1].Rank)
}

func TestEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.tsv")
	require.NoError(t, os.WriteFile(path, []byte("1\ttime\tn\n2\tgo\tv\n"), 0o600))

	entries, err := corpus.New(slog.Default(), path).Entries(context.TODO())
	require.NoError(t, err)
	require.Equal(t, []core.ReferenceEntry{
		{Rank: 1, Word: "time", POS: "n"},
		{Rank: 2, Word: "go", POS: "v"},
	}, entries)

	_, err = corpus.New(slog.Default(), filepath.Join(t.TempDir(), "missing.tsv")).Entries(context.TODO())
	require.ErrorIs(t, err, os.ErrNotExist)
}
