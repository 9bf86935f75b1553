package config_test

import (
	"keyword-index/indexgen/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 200, cfg.ReferenceLimit)
	require.Equal(t, "n", cfg.ExcludePOS)
	require.Equal(t, "include", cfg.FilterMode)
	require.Equal(t, "snowball", cfg.Stemmer)
	require.True(t, cfg.StopWords)

	t.Setenv("EXTRACT_STOP_WORDS", "false")
	t.Setenv("REFERENCE_LIMIT", "50")
	cfg, err = config.Load()
	require.NoError(t, err)
	require.False(t, cfg.StopWords)
	require.Equal(t, 50, cfg.ReferenceLimit)
}
