package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("TRIPGEN_AI_PROVIDER", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadMissingOpenAIKey(t *testing.T) {
	t.Setenv("TRIPGEN_AI_PROVIDER", "openai")
	t.Setenv("GEMINI_API_KEY", "present-but-unused")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingCredential)
}

func TestLoadUnknownProvider(t *testing.T) {
	t.Setenv("TRIPGEN_AI_PROVIDER", "llama")

	_, err := Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingCredential)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("TRIPGEN_AI_PROVIDER", "")
	t.Setenv("TRIPGEN_HTTP_ADDR", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("TRIPGEN_STATIC_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.Equal(t, "gm-key", cfg.AI.GeminiKey)
	assert.True(t, cfg.AI.GeminiJSON)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.Equal(t, "public", cfg.HTTP.StaticDir)
	assert.Empty(t, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TRIPGEN_AI_PROVIDER", " OpenAI ")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "8081")
	t.Setenv("TRIPGEN_HTTP_ADDR", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://trips.example.edu ,")
	t.Setenv("TRIPGEN_MAPS_API_KEY", "maps-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, ":8081", cfg.HTTP.Addr)
	assert.Equal(t, []string{"http://localhost:5173", "https://trips.example.edu"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "maps-key", cfg.Maps.APIKey)
}

func TestLoadGeminiKeyIgnoresSelectedProvider(t *testing.T) {
	t.Setenv("TRIPGEN_AI_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", " gm-key ")

	key, err := LoadGeminiKey()
	require.NoError(t, err)
	assert.Equal(t, "gm-key", key)

	t.Setenv("GEMINI_API_KEY", "")
	_, err = LoadGeminiKey()
	assert.ErrorIs(t, err, ErrMissingCredential)
}
