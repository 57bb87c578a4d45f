package logging

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	Level  string            `koanf:"level"`
	Format string            `koanf:"format"`
	Caller CallerConfig      `koanf:"caller"`
	Fields map[string]string `koanf:"fields"`
}

// CallerConfig controls caller information in logs.
type CallerConfig struct {
	Enabled bool `koanf:"enabled"`
	Skip    int  `koanf:"skip"`
}

// NewDefaultConfig returns config suited to an interactive CLI run:
// console encoding, warnings and above only.
func NewDefaultConfig() *Config {
	return &Config{
		Level:  "warn",
		Format: "console",
		Fields: map[string]string{
			"service": "driftd",
		},
	}
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("format must be 'json' or 'console', got %q", c.Format)
	}
	if _, err := ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid level %q: %w", c.Level, err)
	}
	return nil
}

// ParseLevel parses a string into a zapcore.Level.
func ParseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return l, nil
}
