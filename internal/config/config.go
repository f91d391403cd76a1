package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Rorical/arraykit/internal/array"
)

// HomeEnv overrides the directory the config folder lives in.
const HomeEnv = "ARRAYKIT_HOME"

// Generator holds the inclusive ranges used for random arrays.
type Generator struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
	MinValue  int `yaml:"min_value"`
	MaxValue  int `yaml:"max_value"`
}

type Config struct {
	Generator Generator `yaml:"generator"`
	path      string
	loaded    bool
}

// Default returns the built-in settings.
func Default() *Config {
	b := array.DefaultBounds()
	return &Config{
		Generator: Generator{
			MinLength: b.MinLen,
			MaxLength: b.MaxLen,
			MinValue:  b.MinValue,
			MaxValue:  b.MaxValue,
		},
	}
}

// LoadConfig reads the config file if there is one. A missing file is not
// an error and nothing is written; the defaults are used instead.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.Bounds().Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator settings in %s: %w", configPath, err)
	}

	return config, nil
}

// Bounds converts the generator settings for array.Generate.
func (c *Config) Bounds() array.Bounds {
	return array.Bounds{
		MinLen:   c.Generator.MinLength,
		MaxLen:   c.Generator.MaxLength,
		MinValue: c.Generator.MinValue,
		MaxValue: c.Generator.MaxValue,
	}
}

// Path is where the config was looked up.
func (c *Config) Path() string {
	return c.path
}

// FromFile reports whether the settings came from a config file.
func (c *Config) FromFile() bool {
	return c.loaded
}

func getConfigPath() (string, error) {
	var configDir string

	if home := os.Getenv(HomeEnv); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".arraykit", "config.yaml"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	config := Default()
	config.path = configPath

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	// Fields missing from the file keep their defaults.
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	config.loaded = true

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Save validates the settings and writes them to the config file.
func (c *Config) Save() error {
	if err := c.Bounds().Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid settings: %w", err)
	}

	configPath := c.path
	if configPath == "" {
		var err error
		if configPath, err = getConfigPath(); err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if err := ensureConfigDir(configPath); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := saveConfig(c, configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	c.path = configPath
	c.loaded = true
	return nil
}
