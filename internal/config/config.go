// Package config builds the process-wide configuration once at startup.
// Values come from defaults, then an optional YAML file, then ASSESSGEN_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/assessgen/internal/llm"
	"github.com/abhisek/assessgen/internal/reference"
)

// Config is the immutable application configuration.
type Config struct {
	LLM llm.Config `yaml:"llm"`

	// MaxTokens is the completion token ceiling.
	MaxTokens int `yaml:"max_tokens"`

	Reference ReferenceConfig `yaml:"reference"`

	// DBPath locates the LLM usage database. Empty means the default
	// data directory.
	DBPath string `yaml:"db_path"`

	// LogMode is "production" (JSON) or "development".
	LogMode string `yaml:"log_mode"`

	Server ServerConfig `yaml:"server"`
}

// ReferenceConfig locates reference PDFs and picks the extraction backend.
type ReferenceConfig struct {
	Root    string `yaml:"root"`
	Backend string `yaml:"backend"` // auto, native, pdftotext, none
}

// ServerConfig configures the web server.
type ServerConfig struct {
	Addr string `yaml:"addr"`

	// RatePerMinute limits generation requests per client. Zero disables
	// the limit.
	RatePerMinute int `yaml:"rate_per_minute"`
}

// ConfigError reports configuration that makes the app unusable, such as a
// missing completion credential.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error (%s): %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LLM:       llm.DefaultConfig(),
		MaxTokens: 4000,
		Reference: ReferenceConfig{
			Root:    reference.DefaultRoot,
			Backend: reference.BackendAuto,
		},
		LogMode: "production",
		Server: ServerConfig{
			Addr:          "127.0.0.1:8501",
			RatePerMinute: 6,
		},
	}
}

// Load builds the configuration. path may be empty; a named file that does
// not exist is an error. Environment values that do not parse are returned
// as a *ConfigError; everything else is checked by Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := llm.ApplyEnv(&cfg.LLM); err != nil {
		var ee *llm.EnvError
		if errors.As(err, &ee) {
			return Config{}, &ConfigError{Field: ee.Name, Err: ee}
		}
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envInt sets *dst from an integer variable. A value that does not parse
// is a *ConfigError naming the variable.
func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return &ConfigError{Field: name, Err: fmt.Errorf("%q is not an integer", v)}
	}
	*dst = n
	return nil
}

func applyEnv(cfg *Config) error {
	if err := envInt("ASSESSGEN_MAX_TOKENS", &cfg.MaxTokens); err != nil {
		return err
	}
	if v := os.Getenv("ASSESSGEN_REFERENCE_ROOT"); v != "" {
		cfg.Reference.Root = v
	}
	if v := os.Getenv("ASSESSGEN_REFERENCE_BACKEND"); v != "" {
		cfg.Reference.Backend = v
	}
	if v := os.Getenv("ASSESSGEN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ASSESSGEN_LOG_MODE"); v != "" {
		cfg.LogMode = v
	}
	if v := os.Getenv("ASSESSGEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	return envInt("ASSESSGEN_RATE_PER_MINUTE", &cfg.Server.RatePerMinute)
}

// Validate returns a *ConfigError for settings that must stop the app
// before it accepts any input.
func (c Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return &ConfigError{Field: "llm", Err: err}
	}
	if c.MaxTokens <= 0 {
		return &ConfigError{Field: "max_tokens", Err: errors.New("must be positive")}
	}
	switch c.Reference.Backend {
	case reference.BackendAuto, reference.BackendNative, reference.BackendPdftotext, reference.BackendNone:
	default:
		return &ConfigError{Field: "reference.backend", Err: fmt.Errorf("unknown backend %q", c.Reference.Backend)}
	}
	switch c.LogMode {
	case "production", "development":
	default:
		return &ConfigError{Field: "log_mode", Err: fmt.Errorf("unknown log mode %q", c.LogMode)}
	}
	return nil
}
