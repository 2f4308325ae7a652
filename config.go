package salad

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the configuration file looked up by tools.
const ConfigFile = "salad.toml"

// Config is the salad.toml configuration file.
type Config struct {
	Library LibraryConfig `toml:"library"`
	Log     LogConfig     `toml:"log"`
}

// LibraryConfig controls library discovery and resolution.
type LibraryConfig struct {
	// Names replaces the platform candidate list when non-empty.
	Names []string `toml:"names,omitempty"`
	// Strict fails loads that leave a required entry point unresolved.
	// Unset means the build default.
	Strict *bool `toml:"strict,omitempty"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig reads the configuration at path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if _, err := config.Level(); err != nil {
		return config, fmt.Errorf("invalid %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig writes the configuration to path.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Level returns the configured log level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Log.Level))
	return level, err
}

// Options returns the loader options the configuration describes.
func (c Config) Options() []Option {
	var opts []Option
	if len(c.Library.Names) != 0 {
		opts = append(opts, WithLibraryNames(c.Library.Names...))
	}
	if c.Library.Strict != nil {
		opts = append(opts, WithStrict(*c.Library.Strict))
	}
	return opts
}
