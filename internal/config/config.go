// Package config loads nbtctl settings from a single YAML file.
//
// The file is chosen by the --config flag or the NBTKIT_CONFIG environment
// variable. There is no discovery: without either, built-in defaults apply.
// Command-line flags override whatever the file sets.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/nbtkit/internal/container"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "NBTKIT_CONFIG"

// DefaultTarget is the list the producer stores a player's items in: the
// Inventory field of the unnamed wrapper compound.
const DefaultTarget = "//Inventory"

// Config is the complete nbtctl configuration.
type Config struct {
	// Target is the slash path of the list to rank and edit. The leading
	// empty segment selects the producer's unnamed wrapper compound.
	Target string `yaml:"target"`

	// AppendRootTerminator appends the compound terminator the producer
	// leaves off the root before decoding. The byte is dropped again before
	// the file is written back.
	AppendRootTerminator bool `yaml:"append_root_terminator"`

	// Backup copies the file to <file>.bak before it is rewritten.
	Backup bool `yaml:"backup"`

	// Compression configures the container read and written.
	Compression CompressionConfig `yaml:"compression"`

	// Limits bounds decoding work.
	Limits LimitsConfig `yaml:"limits"`
}

// CompressionConfig configures the file container.
type CompressionConfig struct {
	// Format is auto, gzip, zlib or none. With auto the detected format is
	// written back.
	Format string `yaml:"format"`

	// Level is the deflate level used when writing (-2..9).
	// Default: 9
	Level int `yaml:"level"`
}

// LimitsConfig bounds decoding work.
type LimitsConfig struct {
	// MaxDepth is the maximum nesting depth. Default: 512
	MaxDepth int `yaml:"max_depth"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Target:               DefaultTarget,
		AppendRootTerminator: true,
		Backup:               true,
		Compression: CompressionConfig{
			Format: container.Auto.String(),
			Level:  container.DefaultLevel,
		},
		Limits: LimitsConfig{
			MaxDepth: types.DefaultMaxDepth,
		},
	}
}

// Load resolves the config path from explicit (a --config value) or the
// environment and loads it. With neither set it returns Default().
func Load(explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. Keys absent from
// the file keep their defaults; unknown keys are an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := container.ParseFormat(c.Compression.Format); err != nil {
		return fmt.Errorf("compression.format: %w", err)
	}
	if c.Compression.Level < -2 || c.Compression.Level > 9 {
		return fmt.Errorf("compression.level %d outside -2..9", c.Compression.Level)
	}
	if c.Limits.MaxDepth < 0 {
		return fmt.Errorf("limits.max_depth %d is negative", c.Limits.MaxDepth)
	}
	return nil
}

// Format returns the parsed compression format.
func (c *Config) Format() container.Format {
	f, _ := container.ParseFormat(c.Compression.Format)
	return f
}
