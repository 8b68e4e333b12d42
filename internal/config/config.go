// Package config holds the CLI configuration, stored as YAML under the home
// directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/mahdiidarabi/asymcrypto/pkg/asymcrypto"
	"github.com/mahdiidarabi/asymcrypto/pkg/logging"
	"github.com/mahdiidarabi/asymcrypto/pkg/signature"
)

// FileName is the config file name inside the home directory.
const FileName = "config.yaml"

// Config is the on-disk CLI configuration.
type Config struct {
	Suite       string         `yaml:"suite"`
	Scheme      string         `yaml:"scheme"`
	MaxAttempts int            `yaml:"max-attempts"`
	Workers     int            `yaml:"workers"`
	Log         logging.Config `yaml:"log"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Suite:       asymcrypto.SM2.Name,
		Scheme:      string(asymcrypto.SchemeSM2),
		MaxAttempts: signature.DefaultMaxAttempts,
		Workers:     0,
		Log:         logging.DefaultConfig(),
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	bz, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(bz, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Write stores cfg at path, creating parent directories.
func (c Config) Write(path string) error {
	bz, err := yaml.Marshal(&c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o600)
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	var errs []error
	if _, err := asymcrypto.LookupSuite(c.Suite); err != nil {
		errs = append(errs, err)
	}
	if _, err := asymcrypto.ParseScheme(c.Scheme); err != nil {
		errs = append(errs, err)
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max-attempts must be positive, got %d", c.MaxAttempts))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if _, ok := logging.ParseLevel(string(c.Log.Level)); !ok {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json", "logfmt":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
