package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, "/api/files", cfg.Upload.BaseURL)
	assert.Empty(t, cfg.AI.Endpoint) // absent generator is a valid config
	assert.False(t, cfg.R2.Configured())
	assert.Equal(t, 15*time.Second, cfg.AI.Timeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AI_DRAFT_ENDPOINT", "https://gen.example.com/v1/text")
	t.Setenv("AI_DRAFT_API_KEY", "secret")
	t.Setenv("AI_DRAFT_TIMEOUT", "30s")
	t.Setenv("R2_ACCOUNT_ID", "acct")
	t.Setenv("R2_ACCESS_KEY", "ak")
	t.Setenv("R2_SECRET_KEY", "sk")
	t.Setenv("R2_BUCKET", "evidence")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://gen.example.com/v1/text", cfg.AI.Endpoint)
	assert.Equal(t, "secret", cfg.AI.APIKey)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.True(t, cfg.R2.Configured())
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("AI_DRAFT_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
