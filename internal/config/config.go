package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Wshid/effective-java/pkg/api"
	"github.com/Wshid/effective-java/pkg/log"
)

// Config holds configuration settings for the pizza command
type Config struct {
	LogLevel    string
	Env         string
	DefaultSize api.Size
	MaxToppings int
}

const (
	DefaultLogLevel    = "info"
	DefaultEnv         = "dev"
	DefaultSize        = api.Medium
	DefaultMaxToppings = 3
	DefaultDotEnvFile  = ".env"
)

var (
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidMaxToppings = errors.New("max toppings out of range")
)

// NewDefaultConfig creates a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:    DefaultLogLevel,
		Env:         DefaultEnv,
		DefaultSize: DefaultSize,
		MaxToppings: DefaultMaxToppings,
	}
}

// LoadDotEnv seeds the process environment from the given files, or from
// .env in the working directory when none are given. Variables already set
// in the environment win. A missing default file is not an error
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		err := godotenv.Load(DefaultDotEnvFile)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(paths...)
}

// LoadFromEnv populates configuration values from environment variables.
// Returns an error if any env var cannot be parsed.
func (c *Config) LoadFromEnv() error {
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.LogLevel = logLevel
	}
	if env := os.Getenv("ENV"); env != "" {
		c.Env = env
	}
	if size := os.Getenv("PIZZA_DEFAULT_SIZE"); size != "" {
		s, err := api.ParseSize(size)
		if err != nil {
			return fmt.Errorf("invalid PIZZA_DEFAULT_SIZE: %w", err)
		}
		c.DefaultSize = s
	}

	return loadEnvInt(
		"PIZZA_MAX_TOPPINGS", &c.MaxToppings, 0, len(api.AllToppings()),
	)
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: %s", ErrInvalidLogLevel, c.LogLevel)
	}

	if err := c.DefaultSize.Validate(); err != nil {
		return err
	}

	if c.MaxToppings <= 0 || c.MaxToppings > len(api.AllToppings()) {
		return fmt.Errorf("%w: %d", ErrInvalidMaxToppings, c.MaxToppings)
	}

	return nil
}

// loadEnvInt reads key from the environment, parses it as an integer, and
// sets *dst if the value is in the range (min, max]. Returns an error if
// the value cannot be parsed or falls outside the valid range.
func loadEnvInt(key string, dst *int, min, max int) error {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", key, s)
	}
	if v <= min || v > max {
		return fmt.Errorf("invalid %s: %d out of range [%d, %d]",
			key, v, min+1, max)
	}
	*dst = v
	return nil
}
