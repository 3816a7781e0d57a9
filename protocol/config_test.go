package protocol

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayaTheShy/Starworld/config"
)

func TestTableSpecFromConfigDefault(t *testing.T) {
	t.Parallel()

	spec, err := TableSpecFromConfig(config.NewConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultTableSpec(), spec)

	spec, err = TableSpecFromConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTableSpec(), spec)
}

func TestTableSpecFromConfigSupplied(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("starworld.protocol.packettypes", 9)
	v.Set("starworld.protocol.defaultversion", 23)
	v.Set("starworld.protocol.overrides", []map[string]interface{}{
		{"indices": []int{1}, "version": 17},
		{"indices": []int{2}, "source": "DomainListVersion::SocketTypes", "version": 25},
	})

	spec, err := TableSpecFromConfig(config.NewConfig(v))
	require.NoError(t, err)
	assert.Equal(t, 9, spec.PacketTypes)
	assert.Equal(t, 23, spec.DefaultVersion)
	require.Len(t, spec.Overrides, 2)
	assert.Equal(t, []int{1}, spec.Overrides[0].Indices)
	assert.Equal(t, "DomainListVersion::SocketTypes", spec.Overrides[1].Source)

	versions, err := spec.Versions()
	require.NoError(t, err)
	assert.Equal(t, []byte{23, 17, 25, 23, 23, 23, 23, 23, 23}, versions)
}
