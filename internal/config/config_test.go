package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/triage")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.ClassifyModel)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, "postgres://localhost/triage", cfg.DatabaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/triage")
	t.Setenv("PORT", "9090")
	t.Setenv("TOP_K", "5")
	t.Setenv("OPENAI_MODEL_CLASSIFY", "gpt-4o")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.TopK)
	assert.Equal(t, "gpt-4o", cfg.ClassifyModel)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
