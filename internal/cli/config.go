package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mcoot/tictactoe-go/internal/factory"
	"github.com/mcoot/tictactoe-go/internal/model"
)

// First player choices besides "1" and "2"
const (
	FirstPlayerAsk    = ""
	FirstPlayerRandom = "random"
)

// Log output formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	BoardSize   int    `yaml:"board-size" env:"TICTACTOE_BOARD_SIZE" env-description:"Board size, 3 or 4 (0 asks at the start of each match)"`
	FirstPlayer string `yaml:"first-player" env:"TICTACTOE_FIRST_PLAYER" env-description:"First player: 1, 2 or random (empty asks)"`
	LogLevel    string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" env-description:"Log level: debug, info, warn, error"`
	LogFormat   string `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"text" env-description:"Log format: text or json"`
	Storage     string `yaml:"storage" env:"TICTACTOE_STORAGE" env-default:"memory" env-description:"Match store: memory or redis"`
	RedisURL    string `yaml:"redis-url" env:"TICTACTOE_REDIS_URL" env-default:"redis://localhost:6379" env-description:"Redis URL for the redis match store"`
}

// LoadConfig reads the config file at path, or only the environment when path is empty.
// Environment variables override values from the file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return cfg, nil
}

// Validate checks every setting before a session starts
func (c *Config) Validate() error {
	if c.BoardSize != 0 && !model.IsValidBoardSize(c.BoardSize) {
		return fmt.Errorf("%w: %d (must be %d or %d)", model.ErrInvalidBoardSize, c.BoardSize, model.MinBoardSize, model.MaxBoardSize)
	}

	switch c.FirstPlayer {
	case FirstPlayerAsk, "1", "2", FirstPlayerRandom:
	default:
		return fmt.Errorf("invalid first player %q: must be 1, 2 or random", c.FirstPlayer)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}

	switch c.Storage {
	case factory.StorageTypeMemory, factory.StorageTypeRedis:
	default:
		return fmt.Errorf("invalid storage %q: must be memory or redis", c.Storage)
	}

	return nil
}

// Level parses the configured log level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger builds the application logger writing to w
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
