package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

type Config struct {
	Port      string          `yaml:"port"`
	LogLevel  string          `yaml:"log_level"`
	LogFormat string          `yaml:"log_format"`
	Minerstat MinerstatConfig `yaml:"minerstat"`
}

// Default returns a configuration that talks to the public minerstat API
func Default() *Config {
	cfg := &Config{
		Minerstat: MinerstatConfig{Secure: true},
	}
	cfg.applyDefaults()
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Config{
		Minerstat: MinerstatConfig{Secure: true},
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if port := os.Getenv("PORT"); port != "" {
		config.Port = port
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}

	return c.Minerstat.Validate()
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	c.Minerstat.applyDefaults()
}
