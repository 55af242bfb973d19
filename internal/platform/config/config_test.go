package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "MAJDA TAKNOUTI", cfg.RegisseurName)
	assert.Equal(t, "OULED NACEUR", cfg.CommuneName)
	assert.Equal(t, 60, cfg.RCARAgeLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("REGIE_REGISSEUR_NAME", "FATIMA ZAHRA")
	t.Setenv("REGIE_RCAR_AGE_LIMIT", "55")

	cfg := Load()

	assert.Equal(t, "FATIMA ZAHRA", cfg.RegisseurName)
	assert.Equal(t, 55, cfg.RCARAgeLimit)
}

func TestLoadIgnoresUnparsableInt(t *testing.T) {
	t.Setenv("REGIE_RCAR_AGE_LIMIT", "soixante")

	cfg := Load()

	assert.Equal(t, 60, cfg.RCARAgeLimit)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	require.NoError(t, cfg.Validate())

	cfg.RCARAgeLimit = 0
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.RegisseurName = ""
	assert.Error(t, cfg.Validate())
}
