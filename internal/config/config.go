package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"jokerpoker/internal/util"
)

// Config provides configuration for a run
type Config struct {
	loaded bool
	Log    struct {
		Level string `yaml:"level" envconfig:"level"`
	} `yaml:"log" envconfig:"log"`
	// Seed seeds the deck shuffle and boss selection. Zero is random.
	Seed   int64 `yaml:"seed" envconfig:"seed"`
	Player struct {
		HandSize  int      `yaml:"handSize" envconfig:"hand_size"`
		Hands     int      `yaml:"hands" envconfig:"hands"`
		Discards  int      `yaml:"discards" envconfig:"discards"`
		MaxJokers int      `yaml:"maxJokers" envconfig:"max_jokers"`
		Jokers    []string `yaml:"jokers" envconfig:"jokers"`
	} `yaml:"player" envconfig:"player"`
	// Antes overrides the score target table when set
	Antes []uint64 `yaml:"antes,omitempty" envconfig:"antes"`
}

var config Config

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	c := Config{}
	c.Log.Level = "info"
	c.Player.HandSize = 8
	c.Player.Hands = 4
	c.Player.Discards = 3
	c.Player.MaxJokers = 5
	c.Player.Jokers = []string{"Joker"}

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

// Load will load the configuration from the file named by JOKERPOKER_CONFIG_FILE
func Load() error {
	c, err := LoadFile(util.Getenv("JOKERPOKER_CONFIG_FILE", "config.yaml"))
	if err != nil {
		return err
	}

	config = c
	return nil
}

// LoadFile returns the defaults, overridden by the YAML file and then by the environment.
// A missing file is not an error.
func LoadFile(configFile string) (Config, error) {
	c := DefaultConfig()

	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return Config{}, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	if err := envconfig.Process("jokerpoker", &c); err != nil {
		return Config{}, err
	}

	c.loaded = true
	return c, nil
}
