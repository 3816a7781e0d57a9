package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	c := NewConfig()
	assert.Equal(t, "127.0.0.1", c.GetString("starworld.inject.host"))
	assert.Equal(t, 40103, c.GetInt("starworld.inject.port"))
	assert.Equal(t, 60, c.GetInt("starworld.inject.animate.frames"))
	assert.Equal(t, 100*time.Millisecond, c.GetDuration("starworld.inject.animate.interval"))
	assert.Equal(t, "info", c.GetString("starworld.logger.level"))
	assert.True(t, c.GetBool("starworld.logger.stdout"))
}

func TestGivenViperWins(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("starworld.inject.port", 50000)
	v.Set("starworld.logger.level", "debug")

	c := NewConfig(v)
	assert.Equal(t, 50000, c.GetInt("starworld.inject.port"))
	assert.Equal(t, "debug", c.GetString("starworld.logger.level"))
	// untouched keys keep their defaults
	assert.Equal(t, "127.0.0.1", c.GetString("starworld.inject.host"))
}

func TestUnmarshalKey(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("starworld.protocol.packettypes", 7)
	v.Set("starworld.protocol.defaultversion", 22)

	var spec struct {
		PacketTypes    int `mapstructure:"packettypes"`
		DefaultVersion int `mapstructure:"defaultversion"`
	}
	c := NewConfig(v)
	assert.NoError(t, c.UnmarshalKey("starworld.protocol", &spec))
	assert.Equal(t, 7, spec.PacketTypes)
	assert.Equal(t, 22, spec.DefaultVersion)
}
