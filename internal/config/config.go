package config

import (
	"os"
	"time"

	"cardtable-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for Card Table
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Table struct {
		// MaxTables bounds how many tables may be open at once. <= 0 means unbounded.
		MaxTables int `yaml:"maxTables" envconfig:"max_tables"`

		// IdleTimeout is how long an untouched table survives. <= 0 disables the sweeper.
		IdleTimeout time.Duration `yaml:"idleTimeout" envconfig:"idle_timeout"`
	}
}

var config Config

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	var c Config
	c.Table.MaxTables = 100
	c.Table.IdleTimeout = time.Hour

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// A missing config file is fine; environment variables alone can configure
// the server.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("CARDTABLE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("cardtable", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
