package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every configuration environment variable.
const EnvPrefix = "UIROUTER_"

// Load reads the configuration file at path, applies environment overrides
// and validates the result. An empty path or a missing file yields the
// defaults plus environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := Decode(path, data, cfg); err != nil {
				return nil, err
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data into cfg. The format is chosen by the extension of
// name.
func Decode(name string, data []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}

	if err != nil {
		return &ParseError{Path: name, Message: err.Error(), Err: err}
	}
	return nil
}

// ApplyEnv overrides cfg from environment variables obtained via lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvPrefix + "PLATFORM"); ok {
		cfg.Router.Platform = v
	}
	if v, ok := lookup(EnvPrefix + "SCRIPT"); ok {
		cfg.Script.Path = v
	}
	if v, ok := lookup(EnvPrefix + "CLICK_INTERVAL"); ok {
		if err := cfg.Router.ClickInterval.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%sCLICK_INTERVAL: %w", EnvPrefix, err)
		}
	}
	for name, dst := range map[string]*bool{
		"INPUT_DISABLED":    &cfg.Router.InputDisabled,
		"KEYBOARD_DISABLED": &cfg.Router.KeyboardDisabled,
	} {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = b
	}
	return nil
}
