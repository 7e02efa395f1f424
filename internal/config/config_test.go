package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "yahoo", cfg.Source.Provider)
	assert.Equal(t, "data/symbols.csv", cfg.Universe.File)
	assert.Equal(t, "SPX500", cfg.Universe.IndexSymbol)
	assert.Equal(t, "charts", cfg.Charts.OutputDir)
	assert.Equal(t, 20, cfg.Charts.SMAWindow)
	assert.Equal(t, 2.0, cfg.Charts.BandWidth)
	assert.NotEmpty(t, cfg.Source.StartDate)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
source:
  provider: stooq
  start_date: "2023-01-01"
  end_date: "2023-12-31"
universe:
  file: testdata/sp500.csv
  prefix: A
charts:
  output_dir: out
  volume: true
`)
	t.Setenv("CHARTBOOK_PROVIDER", "mock")
	t.Setenv("CHARTBOOK_PREFIX", "B")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.Source.Provider, "env beats file")
	assert.Equal(t, "B", cfg.Universe.Prefix)
	assert.Equal(t, "testdata/sp500.csv", cfg.Universe.File)
	assert.True(t, cfg.Charts.Volume)
	require.NoError(t, cfg.Validate())

	from, err := cfg.StartTime()
	require.NoError(t, err)
	to, err := cfg.EndTime()
	require.NoError(t, err)
	assert.True(t, from.Before(to))
}

func TestValidate_Errors(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.Source.Provider = "bloomberg"
	require.Error(t, cfg.Validate())
	cfg.Source.Provider = "yahoo"

	cfg.Source.StartDate = "2024-06-01"
	cfg.Source.EndDate = "2024-01-01"
	require.Error(t, cfg.Validate(), "start after end")

	cfg.Source.EndDate = "not-a-date"
	require.Error(t, cfg.Validate())
}
