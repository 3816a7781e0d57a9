package protocol

import (
	"crypto/md5"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayaTheShy/Starworld/errors"
)

func TestComputeSignatureKnownVector(t *testing.T) {
	t.Parallel()

	// count=3, default=1, no overrides packs to [0x03 0x01 0x01 0x01]
	spec := TableSpec{PacketTypes: 3, DefaultVersion: 1}

	versions, err := spec.Versions()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01, 0x01}, versions)

	sig, err := ComputeSignature(spec)
	require.NoError(t, err)

	want := md5.Sum([]byte{0x03, 0x01, 0x01, 0x01})
	assert.Equal(t, want[:], sig.Bytes())
	assert.Equal(t, "4dc448bff05efae7aea7475fcdbedfa9", sig.Hex())
	assert.Equal(t, "TcRIv/Be+ueup0dfzb7fqQ==", sig.Base64())
}

func TestComputeSignatureDeterminism(t *testing.T) {
	t.Parallel()

	spec := TableSpec{
		PacketTypes:    137,
		DefaultVersion: 22,
		Overrides: []Override{
			{Indices: []int{1}, Version: 17},
			{Indices: []int{2}, Version: 25},
		},
	}

	first, err := ComputeSignature(spec)
	require.NoError(t, err)
	second, err := ComputeSignature(spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "90b242059c5c5b18b41559d2191fb928", first.Hex())
}

func TestVersionsOverrideApplication(t *testing.T) {
	t.Parallel()

	spec := TableSpec{
		PacketTypes:    10,
		DefaultVersion: 22,
		Overrides: []Override{
			{Indices: []int{5, 6}, Version: 10},
			// later override addressing index 5 wins
			{Indices: []int{5}, Version: 11},
		},
	}

	versions, err := spec.Versions()
	require.NoError(t, err)
	assert.Equal(t, byte(11), versions[5])
	assert.Equal(t, byte(10), versions[6])
	assert.Equal(t, byte(22), versions[0])
	assert.Len(t, versions, 10)
}

func TestSignatureInputErrors(t *testing.T) {
	t.Parallel()

	tables := []struct {
		name string
		spec TableSpec
	}{
		{"empty enumeration", TableSpec{PacketTypes: 0, DefaultVersion: 1}},
		{"negative count", TableSpec{PacketTypes: -1, DefaultVersion: 1}},
		{"count over one byte", TableSpec{PacketTypes: 256, DefaultVersion: 1}},
		{"default version over one byte", TableSpec{PacketTypes: 137, DefaultVersion: 300}},
		{"negative default version", TableSpec{PacketTypes: 137, DefaultVersion: -1}},
		{"override index out of range", TableSpec{
			PacketTypes:    137,
			DefaultVersion: 22,
			Overrides:      []Override{{Indices: []int{200}, Version: 5}},
		}},
		{"negative override index", TableSpec{
			PacketTypes:    137,
			DefaultVersion: 22,
			Overrides:      []Override{{Indices: []int{-1}, Version: 5}},
		}},
		{"override version over one byte", TableSpec{
			PacketTypes:    137,
			DefaultVersion: 22,
			Overrides:      []Override{{Indices: []int{1}, Version: 256}},
		}},
	}

	for _, table := range tables {
		table := table
		t.Run(table.name, func(t *testing.T) {
			t.Parallel()

			_, err := ComputeSignature(table.spec)
			require.Error(t, err)
			assert.Equal(t, errors.ErrSignatureInputCode, errors.CodeFromError(err))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	spec := TableSpec{
		PacketTypes:    50,
		DefaultVersion: 22,
		Overrides: []Override{
			{Indices: []int{1}, Version: 17},
			{Indices: []int{2}, Source: "DomainListVersion::SocketTypes", Version: 25},
		},
	}

	resolved, err := spec.Resolve(map[string]int{"DomainListVersion::SocketTypes": 26})
	require.NoError(t, err)
	assert.Equal(t, 26, resolved.Overrides[1].Version)
	// literal overrides untouched
	assert.Equal(t, 17, resolved.Overrides[0].Version)
	// the source spec is not mutated
	assert.Equal(t, 25, spec.Overrides[1].Version)
}

func TestResolveMissingSymbol(t *testing.T) {
	t.Parallel()

	spec := TableSpec{
		PacketTypes:    50,
		DefaultVersion: 22,
		Overrides:      []Override{{Indices: []int{2}, Source: "DomainListVersion::SocketTypes", Version: 25}},
	}

	_, err := spec.Resolve(map[string]int{})
	require.Error(t, err)
	assert.Equal(t, errors.ErrSignatureInputCode, errors.CodeFromError(err))
}

func TestDefaultTableSpec(t *testing.T) {
	t.Parallel()

	spec := DefaultTableSpec()
	versions, err := spec.Versions()
	require.NoError(t, err)
	require.Len(t, versions, 137)

	// a few spot checks against the recorded observations
	assert.Equal(t, byte(17), versions[1])
	assert.Equal(t, byte(25), versions[2])
	// index 18 is claimed by both the ICE and the audio groups; the audio
	// group is declared later and wins
	assert.Equal(t, byte(24), versions[18])
	assert.Equal(t, byte(22), versions[0])

	first, err := ComputeSignature(spec)
	require.NoError(t, err)
	second, err := ComputeSignature(DefaultTableSpec())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSignatureRenderings(t *testing.T) {
	t.Parallel()

	sig, err := ComputeSignature(TableSpec{PacketTypes: 3, DefaultVersion: 1})
	require.NoError(t, err)

	assert.Len(t, sig.Bytes(), 16)
	assert.Len(t, sig.Hex(), 32)
	assert.Equal(t,
		"{ 0x4d, 0xc4, 0x48, 0xbf, 0xf0, 0x5e, 0xfa, 0xe7, 0xae, 0xa7, 0x47, 0x5f, 0xcd, 0xbe, 0xdf, 0xa9 }",
		sig.ByteArray())
}
