package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths      PathsConfig      `yaml:"paths"`
	Model      ModelConfig      `yaml:"model"`
	Logging    LoggingConfig    `yaml:"logging"`
	Processing ProcessingConfig `yaml:"processing"`
}

type PathsConfig struct {
	Transcripts string `yaml:"transcripts"`
	Codebook    string `yaml:"codebook"`
	Output      string `yaml:"output"`
}

type ModelConfig struct {
	Provider string `yaml:"provider"`
	Name     string `yaml:"name"`
	BaseURL  string `yaml:"base_url"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ProcessingConfig struct {
	// HaltOnError stops the whole batch at the first failed transcript
	// instead of logging the failure and moving on.
	HaltOnError bool `yaml:"halt_on_error"`
	Watch       bool `yaml:"watch"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a config with all defaults applied, for runs that
// supply every path on the command line instead of via a file.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Paths.Transcripts == "" {
		c.Paths.Transcripts = "transcripts"
	}
	if c.Paths.Codebook == "" {
		c.Paths.Codebook = "themes.xlsx"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "coded_output"
	}
	if c.Model.Provider == "" {
		c.Model.Provider = "ollama"
	}
	if c.Model.Name == "" {
		c.Model.Name = "mistral"
	}
	if c.Model.BaseURL == "" {
		c.Model.BaseURL = "http://localhost:11434"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	switch c.Model.Provider {
	case "ollama", "gemini":
	default:
		return fmt.Errorf("model.provider must be \"ollama\" or \"gemini\", got %q", c.Model.Provider)
	}

	return nil
}
