package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessgen/internal/assessment"
	"github.com/abhisek/assessgen/internal/config"
	"github.com/abhisek/assessgen/internal/llm"
	"github.com/abhisek/assessgen/internal/logger"
	"github.com/abhisek/assessgen/internal/reference"
	"github.com/abhisek/assessgen/internal/store"
)

// loadConfig reads --config and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if m, _ := cmd.Flags().GetString("log-mode"); m != "" {
		cfg.LogMode = m
	}
	return cfg, nil
}

// newLibrary builds the reference library from configuration.
func newLibrary(cfg config.Config, log *logger.Logger) (*reference.Library, error) {
	backend, err := reference.NewBackend(cfg.Reference.Backend)
	if err != nil {
		return nil, err
	}
	extractor := reference.NewExtractor(cfg.Reference.Root, backend, log.With("component", "reference"))
	return reference.NewLibrary(extractor, log.With("component", "reference")), nil
}

// runtime is everything a generating command needs.
type runtime struct {
	cfg       config.Config
	log       *logger.Logger
	store     *store.Store
	provider  llm.Provider
	generator *assessment.Generator
}

// Close releases the store and flushes the logger.
func (r *runtime) Close() {
	if r.store != nil {
		r.store.Close()
	}
	r.log.Sync()
}

// newRuntime validates configuration before anything else, so a missing
// credential stops the command before it reads any input. A quiet runtime
// discards logs.
func newRuntime(cmd *cobra.Command, quiet bool) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.Nop()
	if !quiet {
		if log, err = logger.New(cfg.LogMode); err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	rt := &runtime{cfg: cfg, log: log, store: st}

	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, st.EventRepo(), log.With("component", "llm"))
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	rt.provider = provider

	library, err := newLibrary(cfg, log)
	if err != nil {
		rt.Close()
		return nil, err
	}

	rt.generator = assessment.NewGenerator(provider, library, assessment.Config{MaxTokens: cfg.MaxTokens}, log.With("component", "assessment"))
	return rt, nil
}
