// Package config loads the driver settings from a TOML or YAML file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ltungv/minilang/internal/minilang"
)

// Config holds everything the driver can be told from a file.
type Config struct {
	Trace TraceConfig `toml:"trace" yaml:"trace"`
	Dump  DumpConfig  `toml:"dump" yaml:"dump"`
}

// TraceConfig controls the production trace.
type TraceConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
	Indent  int  `toml:"indent" yaml:"indent"`
	Color   bool `toml:"color" yaml:"color"`
}

// DumpConfig controls what is printed after the parse.
type DumpConfig struct {
	Format string `toml:"format" yaml:"format"`
	Banner bool   `toml:"banner" yaml:"banner"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Trace: TraceConfig{Enabled: true, Indent: 2, Color: true},
		Dump:  DumpConfig{Format: string(minilang.DumpText), Banner: true},
	}
}

// Load reads path over the defaults. The format is picked from the file
// extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "loading config %s", path)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "loading config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "loading config %s", path)
		}
	default:
		return nil, errors.Errorf("loading config %s: unsupported extension %q", path, ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (cfg *Config) Validate() error {
	if cfg.Trace.Indent < 0 {
		return errors.Errorf("trace.indent must not be negative, got %d", cfg.Trace.Indent)
	}
	if _, err := minilang.ParseDumpFormat(cfg.Dump.Format); err != nil {
		return errors.Wrap(err, "dump.format")
	}
	return nil
}

// DumpFormat returns the validated dump format.
func (cfg *Config) DumpFormat() minilang.DumpFormat {
	return minilang.DumpFormat(cfg.Dump.Format)
}
