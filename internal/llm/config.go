package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the LLM provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// AnthropicConfig configures the Anthropic provider.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig configures the OpenAI provider. BaseURL makes it work with
// any OpenAI-compatible API.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig tunes retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from PRACTIQ_* environment variables,
// falling back to standard API key variables and then to defaults. Returns
// ok=false when no provider has a key, in which case AI summaries are
// simply disabled.
func ConfigFromEnv() (Config, bool) {
	cfg := DefaultConfig()

	if p := os.Getenv("PRACTIQ_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if m := os.Getenv("PRACTIQ_LLM_MODEL"); m != "" {
		cfg.Anthropic.Model = m
		cfg.OpenAI.Model = m
		cfg.Gemini.Model = m
	}
	if u := os.Getenv("PRACTIQ_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")

	if os.Getenv("PRACTIQ_LLM_PROVIDER") == "" {
		// No explicit choice: take the first provider with a key.
		switch {
		case cfg.Anthropic.APIKey != "":
			cfg.Provider = "anthropic"
		case cfg.OpenAI.APIKey != "":
			cfg.Provider = "openai"
		case cfg.Gemini.APIKey != "":
			cfg.Provider = "gemini"
		default:
			return Config{}, false
		}
	}

	return cfg, cfg.Validate() == nil
}

// Validate checks the selected provider has its key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
