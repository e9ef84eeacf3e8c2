package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsonparser
type Config struct {
	Output Output `yaml:"output"`
	Dev    Dev    `yaml:"dev"`
}

// Output controls how the serialized document is rendered
type Output struct {
	Indent   int  `yaml:"indent"`
	Tokens   bool `yaml:"tokens"` // dump the token sequence instead of text
	Trailing bool `yaml:"trailing_newline"`
}

// Dev contains development/debug options
type Dev struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: Output{
			Indent:   4,
			Tokens:   false,
			Trailing: true,
		},
		Dev: Dev{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	if c.Output.Indent < 1 || c.Output.Indent > 16 {
		return fmt.Errorf("output.indent must be between 1 and 16, got %d", c.Output.Indent)
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonparser.yml", ".jsonparser.yaml", "jsonparser.yml", "jsonparser.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}
