package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"keyseal/internal/crypto"
	"keyseal/internal/logging"
)

// ConfigFileName is looked up under the home directory when no explicit
// config path is given.
const ConfigFileName = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string        `yaml:"home"` // keystore directory, e.g. $HOME/.keyseal
	KDF     KDFConfig     `yaml:"kdf"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Prompt  PromptConfig  `yaml:"prompt"`
}

// KDFConfig sets the Argon2id costs used for newly written records.
type KDFConfig struct {
	MemLimitKiB uint32 `yaml:"memlimit_kib"`
	OpsLimit    uint32 `yaml:"opslimit"`
	Parallelism uint8  `yaml:"parallelism"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig names the node_exporter textfile to write after each command.
// Empty disables the export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// PromptConfig bounds interactive password retries.
type PromptConfig struct {
	Attempts int           `yaml:"attempts"`
	Interval time.Duration `yaml:"interval"`
}

// DefaultConfig returns the built-in configuration rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		Home: home,
		KDF: KDFConfig{
			MemLimitKiB: crypto.DefaultMemoryKiB,
			OpsLimit:    crypto.DefaultTimeCost,
			Parallelism: crypto.DefaultParallelism,
		},
		Log:    LogConfig{Level: "warn", Format: "text"},
		Prompt: PromptConfig{Attempts: 3, Interval: time.Second},
	}
}

// DefaultHome returns ~/.keyseal.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".keyseal"), nil
}

// LoadConfig overlays the YAML file at path onto base. A missing file is only
// an error when required is set.
func LoadConfig(path string, base Config, required bool) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return base, nil
		}
		return Config{}, err
	}
	return ParseConfig(b, base)
}

// ParseConfig overlays YAML document b onto base. Unknown keys are rejected.
func ParseConfig(b []byte, base Config) (Config, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// KDFParams converts the configured costs to crypto.KDFParams.
func (c Config) KDFParams() crypto.KDFParams {
	return crypto.KDFParams{
		MemoryKiB:   c.KDF.MemLimitKiB,
		TimeCost:    c.KDF.OpsLimit,
		Parallelism: c.KDF.Parallelism,
	}
}

// Validate checks that the configuration can be used to build a Wire.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("config: home must be set")
	}
	if err := c.KDFParams().Validate(); err != nil {
		return fmt.Errorf("config: kdf: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log: %w", err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: log: unknown format %q", c.Log.Format)
	}
	if c.Prompt.Attempts < 1 {
		return fmt.Errorf("config: prompt: attempts must be at least 1, got %d", c.Prompt.Attempts)
	}
	if c.Prompt.Interval < 0 {
		return fmt.Errorf("config: prompt: negative interval %s", c.Prompt.Interval)
	}
	return nil
}
