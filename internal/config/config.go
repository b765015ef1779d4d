package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"teenpatti-server/internal/util"
)

// Config provides configuration for the Teen Patti server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`

	// StartGameDelay is the grace period, in seconds, between all players
	// readying up and the deal
	StartGameDelay int `yaml:"startGameDelay" envconfig:"start_game_delay"`

	// TurnTimeout, in seconds, folds the current player at the deadline.
	// Zero disables the turn clock.
	TurnTimeout int `yaml:"turnTimeout" envconfig:"turn_timeout"`

	Game struct {
		MinBet        int `yaml:"minBet" envconfig:"min_bet"`
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
	} `yaml:"game"`

	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	var c Config
	c.MigrationsPath = "./sql"
	c.StartGameDelay = 3
	c.Game.MinBet = 10
	c.Game.StartingChips = 1000

	return c
}

var config Config

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
// A missing config file is not an error; defaults plus environment
// overrides are used instead.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("TP_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("tp", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
