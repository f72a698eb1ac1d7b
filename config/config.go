package config

import (
	"errors"
	"fmt"
	"strings"

	"enclosure/meta"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "ENCLOSURE"

type Config struct {
	BoardSize  int    `mapstructure:"board-size"`
	Depth      int    `mapstructure:"depth"`
	Goroutines int    `mapstructure:"goroutines"`
	Games      int    `mapstructure:"games"`
	Seed       uint64 `mapstructure:"seed"`
	LogLevel   string `mapstructure:"log-level"`
	OutputDir  string `mapstructure:"output-dir"`
}

// Load resolves the configuration from, in increasing priority: built-in
// defaults, an optional YAML file named by --config, ENCLOSURE_* environment
// variables and command-line flags.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("enclosure", pflag.ContinueOnError)
	fs.String("config", "", "optional YAML config file")
	fs.Int("board-size", meta.BOARD_SIZE, "side length of the square board")
	fs.Int("depth", meta.SEARCH_DEPTH, "number of plies the computer looks ahead")
	fs.Int("goroutines", meta.GO_ROUTINES, "root branches expanded concurrently")
	fs.Int("games", meta.GAMES, "self-play games per experiment")
	fs.Uint64("seed", 1, "seed for the random human stand-in")
	fs.String("log-level", "info", "zerolog level (trace, debug, info, warn, error)")
	fs.String("output-dir", "results", "directory for experiment CSV files")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.BoardSize < 3:
		return fmt.Errorf("%w: board size %d is smaller than 3", ErrInvalidConfig, c.BoardSize)
	case c.Depth < 1:
		return fmt.Errorf("%w: depth %d is smaller than 1", ErrInvalidConfig, c.Depth)
	case c.Goroutines < 1:
		return fmt.Errorf("%w: goroutines %d is smaller than 1", ErrInvalidConfig, c.Goroutines)
	case c.Games < 0:
		return fmt.Errorf("%w: negative game count %d", ErrInvalidConfig, c.Games)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ApplyLogLevel sets the global zerolog level.
func (c Config) ApplyLogLevel() error {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	return nil
}
