// Package config loads the banner settings from, in increasing precedence:
// embedded defaults, the user's TOML file, BKFETCH_* environment variables,
// and explicitly set command-line flags.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"
)

// AppName names the XDG config directory and prefixes environment variables.
const AppName = "bkfetch"

// EnvPrefix is the prefix of environment variable overrides, e.g. BKFETCH_COLOR.
const EnvPrefix = "BKFETCH_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Config is the resolved banner configuration.
type Config struct {
	Color          string `koanf:"color" toml:"color"`
	Art            string `koanf:"art" toml:"art"`
	Gap            int    `koanf:"gap" toml:"gap"`
	Bias           int    `koanf:"bias" toml:"bias"`
	Delimiter      string `koanf:"delimiter" toml:"delimiter"`
	DelimiterWidth int    `koanf:"delimiter_width" toml:"delimiter_width"`
	MaxWidth       int    `koanf:"max_width" toml:"max_width"`
	NoColor        bool   `koanf:"no_color" toml:"no_color"`
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set. When empty,
	// DefaultPath is used if the file exists.
	Path string

	// Overrides are flag values the user set explicitly, keyed by config key.
	Overrides map[string]interface{}
}

// DefaultPath returns $XDG_CONFIG_HOME/bkfetch/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// Load merges every configuration layer and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, koanftoml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. User config file
	path := opts.Path
	if path == "" {
		if _, err := os.Stat(DefaultPath()); err == nil {
			path = DefaultPath()
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), koanftoml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Environment variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Explicit flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load flag overrides: %w", err)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that cannot be rendered.
func (c *Config) Validate() error {
	var errs []error
	if c.Gap < 0 {
		errs = append(errs, fmt.Errorf("gap must not be negative, got %d", c.Gap))
	}
	if c.MaxWidth < 0 {
		errs = append(errs, fmt.Errorf("max_width must not be negative, got %d", c.MaxWidth))
	}
	if c.DelimiterWidth < 0 {
		errs = append(errs, fmt.Errorf("delimiter_width must not be negative, got %d", c.DelimiterWidth))
	}
	if c.Delimiter == "" {
		errs = append(errs, errors.New("delimiter must not be empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Dump renders the configuration as TOML.
func (c *Config) Dump() ([]byte, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return b, nil
}
