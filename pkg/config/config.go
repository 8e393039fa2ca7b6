// Package config loads the toolkit's optional configuration file from the
// XDG config directory. A missing file is not an error; defaults apply.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/jhoelz/fancyio/pkg/errors"
	"github.com/jhoelz/fancyio/pkg/logging"
)

var log = logging.GetLogger("config")

// Config holds the user-tunable settings for the CLI and the game.
type Config struct {
	Output OutputConfig `toml:"output"`
	Game   GameConfig   `toml:"game"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	// Format is "auto", "term" or "text".
	Format string `toml:"format"`
	// Brackets is the two-character tag delimiter pair, e.g. "<>".
	Brackets string `toml:"brackets"`
}

// GameConfig controls the mastermind game.
type GameConfig struct {
	// Rows is the number of guesses the player gets.
	Rows int `toml:"rows"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:   "auto",
			Brackets: "<>",
		},
		Game: GameConfig{
			Rows: 7,
		},
	}
}

// Path returns the location of the configuration file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "fancyio", "config.toml")
}

// Load reads the configuration file, merged over the defaults. A missing
// file yields the defaults unchanged.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads and parses a configuration file at an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("no config file, using defaults")
			return cfg, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Msg("loaded config file")
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "auto", "term", "terminal", "text", "plain", "":
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format)
	}
	if b := c.Output.Brackets; len([]rune(b)) != 2 {
		return errors.Newf(errors.ErrConfigValid, "brackets must be exactly two characters, got %q", b)
	}
	if c.Game.Rows < 1 {
		return errors.Newf(errors.ErrConfigValid, "game rows must be at least 1, got %d", c.Game.Rows)
	}
	return nil
}
