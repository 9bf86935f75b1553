package config_test

import (
	"keyword-index/indexer/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: INFO
indexer_address: localhost:9000
reference:
  path: /data/corpus.tsv
  limit: 500
  reload_period: 1h
extract:
  stemmer: porter
`), 0o600))

	var cfg config.Config
	config.MustLoad(path, &cfg)

	require.Equal(t, "INFO", cfg.LogLevel)
	require.Equal(t, "localhost:9000", cfg.Address)
	require.Equal(t, "/data/corpus.tsv", cfg.Reference.Path)
	require.Equal(t, 500, cfg.Reference.Limit)
	require.Equal(t, time.Hour, cfg.Reference.ReloadPeriod)
	require.Equal(t, "n", cfg.Reference.ExcludePOS)
	require.Equal(t, "porter", cfg.Extract.Stemmer)
	require.Equal(t, 1048576, cfg.Extract.MaxDocumentSize)
	require.True(t, cfg.Extract.StopWords)
	require.Equal(t, "keywords.documents", cfg.Broker.IngestSubject)
}
