package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.StateDir == "" {
		return errors.New("paths.state_dir must be set")
	}
	if c.Paths.VocabDir == "" {
		return errors.New("paths.vocab_dir must be set")
	}
	if c.Enrich.BatchSize <= 0 {
		return fmt.Errorf("enrich.batch_size must be positive, got %d", c.Enrich.BatchSize)
	}
	if c.Enrich.MaxRecords < 0 {
		return fmt.Errorf("enrich.max_records must not be negative, got %d", c.Enrich.MaxRecords)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
