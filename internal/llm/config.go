package llm

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the completion gateway: anthropic, openai, gemini,
	// openrouter or mock.
	Provider string `yaml:"provider"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`

	// Timeout bounds a single completion call. Zero means no timeout
	// beyond the SDK's own.
	Timeout time.Duration `yaml:"timeout"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// endpoint is the common view of one vendor's settings.
type endpoint struct {
	key, model, baseURL *string
	keyVar              string // standard credential variable
	models              map[string]string
}

func (c *Config) endpoints() map[string]endpoint {
	return map[string]endpoint{
		"anthropic":  {&c.Anthropic.APIKey, &c.Anthropic.Model, &c.Anthropic.BaseURL, "ANTHROPIC_API_KEY", anthropicModels},
		"openai":     {&c.OpenAI.APIKey, &c.OpenAI.Model, &c.OpenAI.BaseURL, "OPENAI_API_KEY", openaiModels},
		"gemini":     {&c.Gemini.APIKey, &c.Gemini.Model, &c.Gemini.BaseURL, "GEMINI_API_KEY", geminiModels},
		"openrouter": {&c.OpenRouter.APIKey, &c.OpenRouter.Model, &c.OpenRouter.BaseURL, "OPENROUTER_API_KEY", nil},
	}
}

// Providers lists the accepted Provider values.
func Providers() []string {
	var c Config
	names := make([]string, 0, 5)
	for name := range c.endpoints() {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, "mock")
}

// DefaultConfig returns a Config targeting Anthropic.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-sonnet"},
		OpenAI:     OpenAIConfig{Model: "gpt"},
		Gemini:     GeminiConfig{Model: "gemini-pro"},
		OpenRouter: OpenRouterConfig{Model: "anthropic/claude-sonnet-4.5"},
	}
}

// ApplyEnv overlays environment variables onto cfg. For each vendor,
// ASSESSGEN_<VENDOR>_API_KEY wins over the standard key variable
// (ANTHROPIC_API_KEY, ...); model and base URL come from
// ASSESSGEN_<VENDOR>_MODEL and ASSESSGEN_<VENDOR>_BASE_URL. A malformed
// ASSESSGEN_LLM_TIMEOUT is returned as an *EnvError.
func ApplyEnv(cfg *Config) error {
	if p := os.Getenv("ASSESSGEN_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if d := os.Getenv("ASSESSGEN_LLM_TIMEOUT"); d != "" {
		v, err := time.ParseDuration(d)
		if err != nil {
			return &EnvError{Name: "ASSESSGEN_LLM_TIMEOUT", Value: d, Err: err}
		}
		if v < 0 {
			return &EnvError{Name: "ASSESSGEN_LLM_TIMEOUT", Value: d, Err: errors.New("must not be negative")}
		}
		cfg.Timeout = v
	}

	for name, ep := range cfg.endpoints() {
		prefix := "ASSESSGEN_" + strings.ToUpper(name) + "_"
		*ep.key = firstEnv(*ep.key, prefix+"API_KEY", ep.keyVar)
		*ep.model = firstEnv(*ep.model, prefix+"MODEL")
		*ep.baseURL = firstEnv(*ep.baseURL, prefix+"BASE_URL")
	}
	return nil
}

// EnvError reports an environment variable whose value cannot be used.
type EnvError struct {
	Name  string
	Value string
	Err   error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("%s=%q: %v", e.Name, e.Value, e.Err)
}

func (e *EnvError) Unwrap() error { return e.Err }

// firstEnv returns the first non-empty env var, or cur when all are unset.
func firstEnv(cur string, names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return cur
}

// Validate checks that the selected provider exists and has a credential.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	ep, ok := c.endpoints()[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider %q (want one of %s)", c.Provider, strings.Join(Providers(), ", "))
	}
	if *ep.key == "" {
		return fmt.Errorf("%s is required for the %s provider", ep.keyVar, c.Provider)
	}
	return nil
}

// ModelName returns the resolved model ID for the selected provider.
func (c Config) ModelName() string {
	ep, ok := c.endpoints()[c.Provider]
	if !ok {
		return c.Provider
	}
	return resolveModel(*ep.model, ep.models)
}
