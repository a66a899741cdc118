package config

const (
	defaultLibraryRoot = "~/models"
	defaultStateDir    = "~/.local/share/plinth"
	defaultLogDir      = "~/.local/share/plinth/logs"
	defaultVocabDir    = "~/.config/plinth/vocab"
	defaultBatchSize   = 200
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryRoot: defaultLibraryRoot,
			StateDir:    defaultStateDir,
			LogDir:      defaultLogDir,
			VocabDir:    defaultVocabDir,
		},
		Enrich: Enrich{
			BatchSize:          defaultBatchSize,
			InferOriginalNames: false,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
