package config

import (
	"os"
	"path/filepath"
	"testing"

	"enclosure/meta"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := Load(nil)

		require.NoError(t, err)
		require.Equal(t, meta.BOARD_SIZE, c.BoardSize)
		require.Equal(t, meta.SEARCH_DEPTH, c.Depth)
		require.Equal(t, meta.GO_ROUTINES, c.Goroutines)
		require.Equal(t, meta.GAMES, c.Games)
		require.Equal(t, "info", c.LogLevel)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		c, err := Load([]string{"--board-size", "5", "--depth=3", "--seed", "99"})

		require.NoError(t, err)
		require.Equal(t, 5, c.BoardSize)
		require.Equal(t, 3, c.Depth)
		require.Equal(t, uint64(99), c.Seed)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("ENCLOSURE_BOARD_SIZE", "6")
		t.Setenv("ENCLOSURE_LOG_LEVEL", "debug")

		c, err := Load(nil)

		require.NoError(t, err)
		require.Equal(t, 6, c.BoardSize)
		require.Equal(t, "debug", c.LogLevel)
	})

	t.Run("flags beat the environment", func(t *testing.T) {
		t.Setenv("ENCLOSURE_DEPTH", "4")

		c, err := Load([]string{"--depth", "1"})

		require.NoError(t, err)
		require.Equal(t, 1, c.Depth)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "enclosure.yaml")
		content := "board-size: 4\ngames: 2\noutput-dir: out\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		c, err := Load([]string{"--config", path})

		require.NoError(t, err)
		require.Equal(t, 4, c.BoardSize)
		require.Equal(t, 2, c.Games)
		require.Equal(t, "out", c.OutputDir)
		require.Equal(t, meta.SEARCH_DEPTH, c.Depth, "Unset keys keep their defaults")
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})

		require.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := Load([]string{"--bogus"})

		require.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		_, err := Load([]string{"--board-size", "2"})

		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{BoardSize: 8, Depth: 2, Goroutines: 1, Games: 1, LogLevel: "info"}
	require.NoError(t, valid.Validate())

	cases := map[string]func(c *Config){
		"board too small":  func(c *Config) { c.BoardSize = 2 },
		"no depth":         func(c *Config) { c.Depth = 0 },
		"no goroutines":    func(c *Config) { c.Goroutines = 0 },
		"negative games":   func(c *Config) { c.Games = -1 },
		"unknown loglevel": func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)

			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestApplyLogLevel(t *testing.T) {
	previous := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(previous)

	require.NoError(t, Config{LogLevel: "warn"}.ApplyLogLevel())
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.Error(t, Config{LogLevel: "loud"}.ApplyLogLevel())
}
