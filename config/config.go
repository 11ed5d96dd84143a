package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/drift/input"
	"github.com/lixenwraith/drift/logging"
	"github.com/lixenwraith/drift/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration written as a Go duration string ("150ms")
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Cell is the world size of one terminal cell
type Cell struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Config is the runtime configuration loaded from YAML over Default
type Config struct {
	TickRate      int      `yaml:"tick_rate"`
	StepDistance  float32  `yaml:"step_distance"`
	FrameInterval Duration `yaml:"frame_interval"`

	// Key tracking for hosts without release events
	HoldWindow   Duration `yaml:"hold_window"`
	RepeatWindow Duration `yaml:"repeat_window"`

	Cell Cell           `yaml:"cell"`
	Log  logging.Config `yaml:"log"`

	// Keys maps action names to key names; a listed action replaces its default keys
	Keys map[string][]string `yaml:"keys"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		TickRate:      parameter.DesiredTPS,
		StepDistance:  parameter.StepDistance,
		FrameInterval: Duration(parameter.FrameUpdateInterval),
		HoldWindow:    Duration(parameter.KeyHoldWindow),
		RepeatWindow:  Duration(parameter.KeyRepeatWindow),
		Cell:          Cell{Width: parameter.CellWidth, Height: parameter.CellHeight},
		Log:           logging.DefaultConfig(),
	}
}

// Load reads a YAML file over the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r over the defaults and validates the result
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and that the key bindings resolve
func (c *Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	case c.StepDistance <= 0:
		return fmt.Errorf("%w: step_distance must be positive, got %g", ErrInvalidConfig, c.StepDistance)
	case c.FrameInterval <= 0:
		return fmt.Errorf("%w: frame_interval must be positive", ErrInvalidConfig)
	case c.HoldWindow <= 0:
		return fmt.Errorf("%w: hold_window must be positive", ErrInvalidConfig)
	case c.RepeatWindow <= 0 || c.RepeatWindow > c.HoldWindow:
		return fmt.Errorf("%w: repeat_window must be positive and at most hold_window", ErrInvalidConfig)
	case c.Cell.Width <= 0 || c.Cell.Height <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %gx%g", ErrInvalidConfig, c.Cell.Width, c.Cell.Height)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.KeyTable(); err != nil {
		return err
	}
	return nil
}

// KeyTable returns the default bindings with the configured overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return base, nil
	}
	override, replaced, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return input.MergeKeyTable(base, override, replaced...), nil
}
