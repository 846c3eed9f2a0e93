package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chunker-go/internal/errors"
)

// Format identifies a configuration file syntax.
type Format int

const (
	TOML Format = iota
	YAML
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("unsupported config file extension %q: %w", filepath.Ext(path), errors.ErrInvalidConfig)
}

// Load reads a configuration file over the defaults and validates it.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &errors.ConfigError{Err: err, File: path}
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user on purpose
	if err != nil {
		return nil, &errors.ConfigError{Err: err, File: path}
	}

	cfg, err := Parse(data, format)
	if err != nil {
		var cfgErr *errors.ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.File = path
			return nil, cfgErr
		}
		return nil, &errors.ConfigError{Err: err, File: path}
	}
	return cfg, nil
}

// Parse decodes configuration data over the defaults and validates it.
// Fields missing from data keep their default values.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := NewConfig()

	var err error
	switch format {
	case TOML:
		_, err = toml.Decode(string(data), cfg)
	case YAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		err = fmt.Errorf("unknown config format %d", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
