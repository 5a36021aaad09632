// Package config provides configuration management.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"bwcalc/internal/errors"
	"bwcalc/internal/logging"
)

// Output formats understood by the result formatters.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the main application configuration
type Config struct {
	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format selects the result formatter (text, json)
	Format string `json:"format"`

	// Color highlights banners on the console
	Color bool `json:"color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Logging: logging.DefaultConfig(),
		Output: OutputConfig{
			Format: FormatText,
			Color:  false,
		},
	}
}

// fileConfig mirrors Config with every setting optional, so a file only
// overrides what it names.
type fileConfig struct {
	Logging *fileLogging `hcl:"logging,block" yaml:"logging"`
	Output  *fileOutput  `hcl:"output,block" yaml:"output"`
}

type fileLogging struct {
	Level       *string `hcl:"level,optional" yaml:"level"`
	Format      *string `hcl:"format,optional" yaml:"format"`
	Output      *string `hcl:"output,optional" yaml:"output"`
	Development *bool   `hcl:"development,optional" yaml:"development"`
}

type fileOutput struct {
	Format *string `hcl:"format,optional" yaml:"format"`
	Color  *bool   `hcl:"color,optional" yaml:"color"`
}

// Load reads configuration from path. HCL and JSON files are decoded with
// hclsimple, YAML files with yaml.v3. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("cannot read config file", err).WithContext("path", path)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Config("cannot read config file", err).WithContext("path", path)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, errors.Config("invalid YAML config", err).WithContext("path", path)
		}
	case ".hcl", ".json":
		if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
			return nil, errors.Config("invalid config", err).WithContext("path", path)
		}
	default:
		return nil, errors.Config("unsupported config file extension "+filepath.Ext(path), nil).
			WithContext("path", path)
	}

	cfg := Default()
	fc.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fc *fileConfig) apply(cfg *Config) {
	if l := fc.Logging; l != nil {
		setString(&cfg.Logging.Level, l.Level)
		setString(&cfg.Logging.Format, l.Format)
		setString(&cfg.Logging.Output, l.Output)
		if l.Development != nil {
			cfg.Logging.Development = *l.Development
		}
	}
	if o := fc.Output; o != nil {
		setString(&cfg.Output.Format, o.Format)
		if o.Color != nil {
			cfg.Output.Color = *o.Color
		}
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks that the configuration can be used
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Config("unknown output format "+c.Output.Format, nil)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return errors.Config("unknown log level "+c.Logging.Level, nil)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return errors.Config("unknown log format "+c.Logging.Format, nil)
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
