package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/uirouter/internal/input/mouse"
	"github.com/dshills/uirouter/internal/logging"
	"github.com/dshills/uirouter/internal/platform"
)

// Config is the complete router configuration.
type Config struct {
	Logging Logging `toml:"logging" yaml:"logging"`
	Router  Router  `toml:"router" yaml:"router"`
	Script  Script  `toml:"script" yaml:"script"`
}

// Logging configures the logger.
type Logging struct {
	Level string `toml:"level" yaml:"level"`
}

// Router configures input routing.
type Router struct {
	// Platform selects keyboard conventions: auto, windows, darwin or other.
	Platform string `toml:"platform" yaml:"platform"`
	// ClickInterval is the multi-click interval.
	ClickInterval Duration `toml:"click_interval" yaml:"click_interval"`
	// InputDisabled drops every input event.
	InputDisabled bool `toml:"input_disabled" yaml:"input_disabled"`
	// KeyboardDisabled drops keyboard and text events.
	KeyboardDisabled bool `toml:"keyboard_disabled" yaml:"keyboard_disabled"`
}

// Script configures the notification script.
type Script struct {
	// Path is a Lua file run at startup. Empty disables scripting.
	Path string `toml:"path" yaml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: Logging{Level: "info"},
		Router: Router{
			Platform:      "auto",
			ClickInterval: Duration(mouse.DefaultClickInterval),
		},
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if _, err := platform.Parse(c.Router.Platform); err != nil {
		errs = append(errs, fmt.Errorf("router.platform: %w", err))
	}
	if c.Router.ClickInterval < 0 {
		errs = append(errs, fmt.Errorf("router.click_interval: must not be negative, got %v", c.Router.ClickInterval))
	}
	return errors.Join(errs...)
}

// Family returns the configured platform family. Invalid names fall back
// to the running platform; Validate reports them.
func (r Router) Family() platform.Family {
	f, err := platform.Parse(r.Platform)
	if err != nil {
		return platform.Current()
	}
	return f
}

// Duration is a time.Duration written as a Go duration string ("600ms").
type Duration time.Duration

// String returns the duration in Go syntax.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}
