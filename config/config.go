package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the search and experiment settings shared by every command.
// Values come from the environment and may be overridden by flags.
type Config struct {
	Ply        int    `env:"YUT_PLY" envDefault:"3"`
	Rollouts   int    `env:"YUT_ROLLOUTS" envDefault:"10"`
	Goroutines int    `env:"YUT_GOROUTINES" envDefault:"8"`
	Repeats    int    `env:"YUT_REPEATS" envDefault:"1"`
	Episodes   int    `env:"YUT_EPISODES" envDefault:"200"`
	Games      int    `env:"YUT_GAMES" envDefault:"10"`
	Seed       uint64 `env:"YUT_SEED"` // 0 picks a time based seed
	OutputDir  string `env:"YUT_OUTPUT_DIR" envDefault:"experiments"`
	LogLevel   string `env:"YUT_LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Ply < 0:
		return fmt.Errorf("ply must not be negative, got %d", c.Ply)
	case c.Rollouts <= 0:
		return fmt.Errorf("rollouts must be positive, got %d", c.Rollouts)
	case c.Goroutines <= 0:
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	case c.Repeats <= 0:
		return fmt.Errorf("repeats must be positive, got %d", c.Repeats)
	case c.Episodes <= 0:
		return fmt.Errorf("episodes must be positive, got %d", c.Episodes)
	case c.Games <= 0:
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
