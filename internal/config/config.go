// Package config loads inbox settings from ~/.inbox/config.yml and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/saravenpi/inbox/internal/generator"
)

const (
	DefaultMessageCount = 5
	configFileName      = "config.yml"
)

type Config struct {
	MessageCount int    `yaml:"message_count" env:"INBOX_MESSAGE_COUNT"`
	Description  string `yaml:"description" env:"INBOX_DESCRIPTION"`
	DebugLog     string `yaml:"debug_log,omitempty" env:"INBOX_DEBUG_LOG"`
}

// GetConfigDir returns the path to the config directory (~/.inbox).
func GetConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".inbox")
}

// GetConfigPath returns the full path to the config file.
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), configFileName)
}

// Load reads the config file if it exists, then applies environment overrides.
// A missing file is not an error.
func Load() (*Config, error) {
	return LoadFile(GetConfigPath())
}

// LoadFile is Load with an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes, applies environment overrides and defaults,
// and validates the result.
func Parse(data []byte) (*Config, error) {
	// yaml and env only overwrite keys that are present
	cfg := Config{MessageCount: DefaultMessageCount}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Init writes the default config to path unless a file already exists there.
// It reports whether a file was written.
func Init(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("config: stat %s: %w", path, err)
	}

	cfg, err := Parse(nil)
	if err != nil {
		return false, err
	}
	if err := Save(path, *cfg); err != nil {
		return false, err
	}
	return true, nil
}

// String renders the config as YAML.
func (c Config) String() string {
	data, err := yaml.Marshal(&c)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (c *Config) applyDefaults() {
	if c.Description == "" {
		c.Description = generator.DefaultDescription
	}
}

func (c *Config) validate() error {
	if c.MessageCount < 0 {
		return fmt.Errorf("config: message_count must not be negative, got %d", c.MessageCount)
	}
	return nil
}
