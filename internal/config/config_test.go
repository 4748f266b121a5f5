package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Extract.Years)
	assert.Equal(t, "keyword", cfg.Extract.Strategy)
	assert.True(t, cfg.Miner.Enabled)
	assert.Equal(t, 8, cfg.Miner.MaxFilings)
	assert.Equal(t, 25, cfg.Miner.MaxTables)
	assert.Equal(t, 300, cfg.Miner.PacingMS)
	assert.Equal(t, 30, cfg.EDGAR.TimeoutSecs)
	assert.NotEmpty(t, cfg.EDGAR.UserAgent)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EDGAR_EXTRACT_YEARS", "5")
	t.Setenv("EDGAR_EXTRACT_STRATEGY", "allowlist")
	t.Setenv("EDGAR_MINER_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Extract.Years)
	assert.Equal(t, "allowlist", cfg.Extract.Strategy)
	assert.False(t, cfg.Miner.Enabled)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	assert.Error(t, err)
}
