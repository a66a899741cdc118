package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// LibraryRoot is the root of the model collection being cataloged.
	LibraryRoot string `toml:"library_root"`
	// StateDir holds the catalog database and run locks.
	StateDir string `toml:"state_dir"`
	LogDir   string `toml:"log_dir"`
	// VocabDir holds the curated vocabulary documents.
	VocabDir string `toml:"vocab_dir"`
}

// Enrich contains settings for the inference/apply passes.
type Enrich struct {
	// BatchSize bounds both paging and apply transaction size.
	BatchSize int `toml:"batch_size"`
	// MaxRecords caps a run when non-zero.
	MaxRecords int `toml:"max_records"`
	// InferOriginalNames enables the strict original-character fallback.
	InferOriginalNames bool `toml:"infer_original_names"`
	// WordFrequencyPath points at an optional word-frequency corpus used by
	// the original-name heuristic. Empty disables the frequency check.
	WordFrequencyPath string `toml:"word_frequency_path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for plinth.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Enrich  Enrich  `toml:"enrich"`
	Logging Logging `toml:"logging"`
}

// SampleConfig returns the embedded sample configuration text.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the embedded sample configuration to the target path.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/plinth/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return is
// the resolved path, the third whether a file was actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("plinth.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates the state and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.Paths.LogDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DatabasePath returns the catalog database location.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.StateDir, "catalog.db")
}

// LockPath returns the file guarding concurrent apply runs.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, "apply.lock")
}
