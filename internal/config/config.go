// Package config loads the lzostream settings.
//
// Settings are layered, later layers overriding earlier ones: built-in
// defaults, an optional YAML file, LZOSTREAM_* environment variables and
// finally command-line flags, which the cmd package applies itself.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/format"
	"github.com/arloliu/lzostream/registry"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfig    = "LZOSTREAM_CONFIG"
	EnvFormat    = "LZOSTREAM_FORMAT"
	EnvBlockSize = "LZOSTREAM_BLOCK_SIZE"
	EnvLogLevel  = "LZOSTREAM_LOG_LEVEL"
)

// Config holds the user-configurable options. You can view the effective
// configuration with `lzostream config`.
type Config struct {
	// DefaultFormat is the method used when no -f flag is given
	DefaultFormat string `yaml:"defaultFormat"`

	// BlockSize is the decompressed size limit for headerless decompression
	BlockSize int `yaml:"blockSize"`

	// Limitless keeps compressed output even when it is not smaller than the input
	Limitless bool `yaml:"limitless"`

	// Headerless omits the container header
	Headerless bool `yaml:"headerless"`

	// LenientHashes treats stored zero hashes as unchecked
	LenientHashes bool `yaml:"lenientHashes"`

	// MaxSize caps every buffer allocation; zero keeps the pipeline default
	MaxSize int64 `yaml:"maxSize,omitempty"`

	// LogLevel is a logrus level name; diagnostics go to stderr
	LogLevel string `yaml:"logLevel"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultFormat: format.Default.String(),
		LogLevel:      logrus.WarnLevel.String(),
	}
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment read through getenv.
//
// An empty path falls back to $LZOSTREAM_CONFIG; when both are empty no file
// is read. A named file that does not exist is an error.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = getenv(EnvConfig)
	}

	if path != "" {
		if err := cfg.ReadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ReadFile merges the YAML file at path into c.
func (c *Config) ReadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errs.Wrap(errs.NoSuchFile, fmt.Errorf("config: %w", err))
		}

		return errs.Wrap(errs.NoDevice, fmt.Errorf("config: %w", err))
	}

	return c.Decode(bytes.NewReader(content))
}

// Decode merges a YAML document into c. Unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return errs.Wrap(errs.InvalidArgument, fmt.Errorf("config: %w", err))
	}

	return nil
}

// ApplyEnv overrides fields from LZOSTREAM_* environment variables that are set.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvFormat); v != "" {
		c.DefaultFormat = v
	}

	if v := getenv(EnvBlockSize); v != "" {
		n, err := ParseBlockSize(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBlockSize, err)
		}
		c.BlockSize = n
	}

	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	return nil
}

// Validate checks that the method name is registered and the log level parses.
func (c *Config) Validate() error {
	if _, ok := registry.Builtin().Lookup(c.DefaultFormat); !ok {
		return fmt.Errorf("%w: %s", errs.ErrUnknownFormat, c.DefaultFormat)
	}

	if c.BlockSize < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBlockSize, c.BlockSize)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errs.Wrap(errs.InvalidArgument, fmt.Errorf("config: %w", err))
	}

	return nil
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ParseBlockSize parses a block size given as decimal digits.
func ParseBlockSize(s string) (int, error) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidBlockSize, s)
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidBlockSize, s)
	}

	return int(n), nil
}
