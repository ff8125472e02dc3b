// Package config loads the registrar.toml configuration file.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

const ConfigFile = "registrar.toml"

// Config holds the registrar configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Registry RegistryConfig `toml:"registry"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig defines settings for the HTTP server.
type ServerConfig struct {
	Port int `toml:"port"`
}

// RegistryConfig defines settings for record creation.
type RegistryConfig struct {
	IDLength int    `toml:"id_length"`
	SeedFile string `toml:"seed_file,omitempty"`
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080},
		Registry: RegistryConfig{IDLength: 10},
		Log:      LogConfig{Level: "info", Pretty: true},
	}
}

// Load reads configuration from the given path.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Registry.IDLength == 0 {
		cfg.Registry.IDLength = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}

// Save writes the configuration to the given path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
