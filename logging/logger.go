package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the log level, encoding and destination
// The terminal is in raw mode while running, so File should not be a console stream
type Config struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"` // json or console
	File     string `yaml:"file"`     // empty disables logging
}

// DefaultConfig logs info and above as JSON to logs/drift.log
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		Encoding: "json",
		File:     filepath.Join("logs", "drift.log"),
	}
}

// ParseLevel maps a config level name to a zap level
func ParseLevel(name string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return zap.InfoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

// New builds a logger writing to cfg.File, creating its directory if needed
// An empty File yields a no-op logger
func New(cfg Config) (*zap.Logger, error) {
	if cfg.File == "" {
		return Nop(), nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "json"
	}
	if encoding != "json" && encoding != "console" {
		return nil, fmt.Errorf("log encoding %q: must be json or console", cfg.Encoding)
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{cfg.File},
		ErrorOutputPaths: []string{cfg.File},
		DisableCaller:    true,
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything
func Nop() *zap.Logger {
	return zap.NewNop()
}
