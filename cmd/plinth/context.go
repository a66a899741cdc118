package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"plinth/internal/catalog"
	"plinth/internal/config"
	"plinth/internal/infer"
	"plinth/internal/logging"
	"plinth/internal/vocab"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{"stderr"},
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// withStore opens the catalog for the duration of fn.
func (c *commandContext) withStore(fn func(*catalog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// buildEngine loads the vocabulary and optional word-frequency corpus and
// assembles an inference engine per the configuration.
func (c *commandContext) buildEngine() (*infer.Engine, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger := c.ensureLogger()

	snap, stats, err := vocab.LoadDir(cfg.Paths.VocabDir, logger)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	logger.Debug("vocabulary loaded",
		logging.Int("files", stats.Files),
		logging.Int("franchises", stats.Franchises),
		logging.Int("skipped", stats.Skipped))

	opts := []infer.Option{
		infer.WithLogger(logging.NewComponentLogger(logger, "infer")),
		infer.WithOriginalNameInference(cfg.Enrich.InferOriginalNames),
	}
	if cfg.Enrich.WordFrequencyPath != "" {
		freq, err := infer.LoadWordFreq(cfg.Enrich.WordFrequencyPath)
		if err != nil {
			return nil, fmt.Errorf("load word frequency corpus: %w", err)
		}
		opts = append(opts, infer.WithWordFreq(freq))
	}
	return infer.New(snap, opts...), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
