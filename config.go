package taskline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Default configuration values.
const (
	DefaultDataFile = "tasks.json"
	DefaultLogLevel = "warn"
)

// Config holds the tool's configuration.
type Config struct {
	// DataFile is the path of the persisted task file. Relative paths
	// resolve against the working directory.
	DataFile string `toml:"data_file"`
	// LogLevel is the minimum level written to stderr (debug, info,
	// warn, error).
	LogLevel string `toml:"log_level"`
}

// LoadConfig builds the configuration in priority order: defaults, then
// a taskline.toml or .taskline.toml in the working directory, then
// TASKLINE_* environment variables. CLI flags override on top of this
// in the command layer.
//
// A malformed config file is a hard error: unlike the task file it is
// user-authored input, not something the tool wrote itself.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DataFile: DefaultDataFile,
		LogLevel: DefaultLogLevel,
	}

	for _, name := range []string{"taskline.toml", ".taskline.toml"} {
		if _, err := toml.DecodeFile(name, cfg); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("loading config file %s: %w", name, err)
		}
		break
	}

	if v := os.Getenv("TASKLINE_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TASKLINE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
