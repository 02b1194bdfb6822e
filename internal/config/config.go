// README: Config loader; env (and .env via the binaries) read once through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingCredential is returned when the selected model provider has no API key.
var ErrMissingCredential = errors.New("missing model provider credential")

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type AIConfig struct {
	Provider    string
	GeminiKey   string
	GeminiModel string
	GeminiJSON  bool
	OpenAIKey   string
	OpenAIModel string
	OpenAIURL   string
}

type LogConfig struct {
	Level  string
	Format string
}

type Config struct {
	HTTP struct {
		Addr        string
		GinMode     string
		StaticDir   string
		CORSOrigins []string
	}
	AI   AIConfig
	Maps struct {
		APIKey string
	}
	Log    LogConfig
	Sentry struct {
		DSN         string
		Environment string
	}
}

// Load reads configuration from the environment. It fails when the credential
// for the selected provider is absent so the process never starts degraded.
func Load() (Config, error) {
	return load(newViper())
}

// LoadGeminiKey reads only GEMINI_API_KEY, for tools that talk to Gemini
// regardless of the selected provider.
func LoadGeminiKey() (string, error) {
	key := strings.TrimSpace(newViper().GetString("GEMINI_API_KEY"))
	if key == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY is required", ErrMissingCredential)
	}
	return key, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "3000")
	v.SetDefault("TRIPGEN_AI_PROVIDER", ProviderGemini)
	v.SetDefault("TRIPGEN_GEMINI_JSON_MODE", true)
	v.SetDefault("TRIPGEN_STATIC_DIR", "public")
	v.SetDefault("TRIPGEN_LOG_LEVEL", "info")
	v.SetDefault("TRIPGEN_LOG_FORMAT", "json")
	v.SetDefault("SENTRY_ENVIRONMENT", "development")
	return v
}

func load(v *viper.Viper) (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = strings.TrimSpace(v.GetString("TRIPGEN_HTTP_ADDR"))
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":" + strings.TrimSpace(v.GetString("PORT"))
	}
	cfg.HTTP.GinMode = strings.TrimSpace(v.GetString("GIN_MODE"))
	cfg.HTTP.StaticDir = v.GetString("TRIPGEN_STATIC_DIR")
	cfg.HTTP.CORSOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(v.GetString("TRIPGEN_AI_PROVIDER")))
	cfg.AI.GeminiKey = strings.TrimSpace(v.GetString("GEMINI_API_KEY"))
	cfg.AI.GeminiModel = v.GetString("TRIPGEN_GEMINI_MODEL")
	cfg.AI.GeminiJSON = v.GetBool("TRIPGEN_GEMINI_JSON_MODE")
	cfg.AI.OpenAIKey = strings.TrimSpace(v.GetString("OPENAI_API_KEY"))
	cfg.AI.OpenAIModel = v.GetString("TRIPGEN_OPENAI_MODEL")
	cfg.AI.OpenAIURL = v.GetString("TRIPGEN_OPENAI_URL")

	cfg.Maps.APIKey = strings.TrimSpace(v.GetString("TRIPGEN_MAPS_API_KEY"))

	cfg.Log.Level = v.GetString("TRIPGEN_LOG_LEVEL")
	cfg.Log.Format = v.GetString("TRIPGEN_LOG_FORMAT")

	cfg.Sentry.DSN = strings.TrimSpace(v.GetString("SENTRY_DSN"))
	cfg.Sentry.Environment = v.GetString("SENTRY_ENVIRONMENT")

	switch cfg.AI.Provider {
	case ProviderGemini:
		if cfg.AI.GeminiKey == "" {
			return cfg, fmt.Errorf("%w: GEMINI_API_KEY is required", ErrMissingCredential)
		}
	case ProviderOpenAI:
		if cfg.AI.OpenAIKey == "" {
			return cfg, fmt.Errorf("%w: OPENAI_API_KEY is required", ErrMissingCredential)
		}
	default:
		return cfg, fmt.Errorf("unknown TRIPGEN_AI_PROVIDER %q", cfg.AI.Provider)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
