// Package protocol derives the compatibility fingerprint two peers compare to
// confirm they agree on the wire version of every packet type, without
// exchanging each version individually.
package protocol

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/MayaTheShy/Starworld/constants"
	"github.com/MayaTheShy/Starworld/errors"
)

// Override assigns one version number to a group of packet-type indices.
// Source optionally names the version counter the value is indirected
// through, written "Enum::Member" against the reference header. Version is
// the last value observed for that counter; resolving the spec against a
// scanned header replaces it, so a guessed entry stays visible and
// independently correctable instead of hiding inside a literal table.
type Override struct {
	Indices []int  `mapstructure:"indices"`
	Source  string `mapstructure:"source"`
	Version int    `mapstructure:"version"`
}

// TableSpec describes a full packet-type version table. Every index in
// [0, PacketTypes) starts at DefaultVersion; overrides then apply in
// declaration order, index by index, so when two overrides address the same
// index the later one wins. The order is part of the spec: it is what keeps
// the fingerprint reproducible.
type TableSpec struct {
	PacketTypes    int        `mapstructure:"packettypes"`
	DefaultVersion int        `mapstructure:"defaultversion"`
	Overrides      []Override `mapstructure:"overrides"`
}

// Resolve returns a copy of the spec with every sourced override rewritten to
// the value of its named counter. Every Source named by the spec must be
// present in symbols; a missing counter is an input error, not a silent
// fallback to the recorded literal.
func (s TableSpec) Resolve(symbols map[string]int) (TableSpec, error) {
	out := s
	out.Overrides = make([]Override, len(s.Overrides))
	copy(out.Overrides, s.Overrides)

	for i, o := range out.Overrides {
		if o.Source == "" {
			continue
		}
		v, ok := symbols[o.Source]
		if !ok {
			return TableSpec{}, errors.NewError(constants.ErrUnknownVersionSource, errors.ErrSignatureInputCode, map[string]string{
				"source": o.Source,
			})
		}
		out.Overrides[i].Version = v
	}
	return out, nil
}

// Versions builds the per-index version table, validating every entry before
// any byte is produced: the count must fit in one byte, every override index
// must address an existing slot and every version must fit in one byte.
func (s TableSpec) Versions() ([]byte, error) {
	if s.PacketTypes <= 0 {
		return nil, errors.NewError(constants.ErrNoPacketTypes, errors.ErrSignatureInputCode)
	}
	if s.PacketTypes > 255 {
		return nil, errors.NewError(constants.ErrTooManyPacketTypes, errors.ErrSignatureInputCode, map[string]string{
			"count": strconv.Itoa(s.PacketTypes),
		})
	}
	if s.DefaultVersion < 0 || s.DefaultVersion > 255 {
		return nil, errors.NewError(constants.ErrVersionRange, errors.ErrSignatureInputCode, map[string]string{
			"version": strconv.Itoa(s.DefaultVersion),
		})
	}

	versions := make([]byte, s.PacketTypes)
	for i := range versions {
		versions[i] = byte(s.DefaultVersion)
	}

	for _, o := range s.Overrides {
		if o.Version < 0 || o.Version > 255 {
			return nil, errors.NewError(constants.ErrVersionRange, errors.ErrSignatureInputCode, map[string]string{
				"source":  o.Source,
				"version": strconv.Itoa(o.Version),
			})
		}
		for _, idx := range o.Indices {
			if idx < 0 || idx >= s.PacketTypes {
				return nil, errors.NewError(constants.ErrOverrideIndexRange, errors.ErrSignatureInputCode, map[string]string{
					"index": strconv.Itoa(idx),
					"count": strconv.Itoa(s.PacketTypes),
				})
			}
			versions[idx] = byte(o.Version)
		}
	}
	return versions, nil
}

// Signature is the 16-byte digest over the packed version table. A
// compatibility checksum, not a security boundary: it only has to match the
// peer's digest bit for bit.
type Signature [md5.Size]byte

// ComputeSignature packs the table as one count byte followed by one version
// byte per packet type and digests that sequence. Identical specs always
// yield identical signatures; malformed specs fail before any digest is
// computed, there is no partial signature.
func ComputeSignature(spec TableSpec) (Signature, error) {
	versions, err := spec.Versions()
	if err != nil {
		return Signature{}, err
	}

	packed := make([]byte, 0, 1+len(versions))
	packed = append(packed, byte(spec.PacketTypes))
	packed = append(packed, versions...)

	return md5.Sum(packed), nil
}

// Bytes returns the raw digest.
func (s Signature) Bytes() []byte {
	return s[:]
}

// Hex returns the digest as a lowercase hex string, no separators.
func (s Signature) Hex() string {
	return hex.EncodeToString(s[:])
}

// Base64 returns the digest in standard base64.
func (s Signature) Base64() string {
	return base64.StdEncoding.EncodeToString(s[:])
}

// ByteArray renders the digest as a brace-wrapped byte-array literal for
// pasting into a peer codebase.
func (s Signature) ByteArray() string {
	parts := make([]string, len(s))
	for i, b := range s {
		parts[i] = fmt.Sprintf("0x%02x", b)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
