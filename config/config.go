package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is a wrapper around a viper config carrying the starworld defaults.
type Config struct {
	config *viper.Viper
}

// NewConfig creates a new config with a given viper config if given
func NewConfig(cfgs ...*viper.Viper) *Config {
	var cfg *viper.Viper
	if len(cfgs) > 0 {
		cfg = cfgs[0]
	} else {
		cfg = viper.New()
	}

	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.SetEnvPrefix("starworld")
	cfg.AutomaticEnv()
	c := &Config{config: cfg}
	c.fillDefaultValues()
	return c
}

func (c *Config) fillDefaultValues() {
	defaultsMap := map[string]interface{}{
		// destination the sample tooling aims at; a deployment convention,
		// not a protocol requirement
		"starworld.inject.host":             "127.0.0.1",
		"starworld.inject.port":             40103,
		"starworld.inject.animate.frames":   60,
		"starworld.inject.animate.interval": "100ms",
		"starworld.logger.level":            "info",
		"starworld.logger.dir":              "",
		"starworld.logger.stdout":           true,
		"starworld.logger.rotation":         false,
		"starworld.logger.maxsize":          256, // MB
		"starworld.logger.maxage":           7,   // days
		"starworld.logger.maxbackups":       3,
		"starworld.logger.localtime":        true,
		"starworld.logger.compress":         false,
	}

	for param := range defaultsMap {
		if c.config.Get(param) == nil {
			c.config.SetDefault(param, defaultsMap[param])
		}
	}
}

// GetDuration returns a duration from the inner config
func (c *Config) GetDuration(s string) time.Duration {
	return c.config.GetDuration(s)
}

// GetString returns a string from the inner config
func (c *Config) GetString(s string) string {
	return c.config.GetString(s)
}

// GetInt returns an int from the inner config
func (c *Config) GetInt(s string) int {
	return c.config.GetInt(s)
}

// GetBool returns a boolean from the inner config
func (c *Config) GetBool(s string) bool {
	return c.config.GetBool(s)
}

// Get returns an interface from the inner config
func (c *Config) Get(s string) interface{} {
	return c.config.Get(s)
}

// IsSet checks to see if the key has been set in any of the data locations
func (c *Config) IsSet(s string) bool {
	return c.config.IsSet(s)
}

// UnmarshalKey unmarshals key into v
func (c *Config) UnmarshalKey(s string, v interface{}) error {
	return c.config.UnmarshalKey(s, v)
}
