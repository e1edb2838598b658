package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/purrcrypt/purr/internal/dialect"
)

type Config struct {
	User             User   `toml:"user"`
	PreferredDialect string `toml:"preferred_dialect"`
}

type User struct {
	UUID string `toml:"user_uuid"`
}

func configPath(homeDir string) string {
	return filepath.Join(homeDir, "config.toml")
}

// Load reads the config from the purr home directory. A missing or corrupt
// config file is not an error: the command proceeds with the cat dialect
// rather than failing over a presentation setting.
func Load(homeDir string) *Config {
	config := &Config{PreferredDialect: dialect.Cat.String()}

	path := configPath(homeDir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config
	}
	if err := LoadTOML(path, config); err != nil {
		return &Config{PreferredDialect: dialect.Cat.String()}
	}
	return config
}

// Save writes the config back to the purr home directory.
func Save(homeDir string, config *Config) error {
	if err := SaveTOML(configPath(homeDir), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Ensure loads the config and assigns the installation a UUID on first run.
func Ensure(homeDir string) (*Config, error) {
	config := Load(homeDir)
	if config.User.UUID == "" {
		config.User.UUID = uuid.New().String()
		if err := Save(homeDir, config); err != nil {
			return nil, err
		}
	}
	return config, nil
}

// Dialect returns the preferred dialect, falling back to cat when the
// stored value does not parse.
func (c *Config) Dialect() dialect.Dialect {
	d, err := dialect.Parse(c.PreferredDialect)
	if err != nil {
		return dialect.Cat
	}
	return d
}

// SetDialect persists a new preferred dialect.
func SetDialect(homeDir string, d dialect.Dialect) error {
	config := Load(homeDir)
	config.PreferredDialect = d.String()
	return Save(homeDir, config)
}
