package protocol

import (
	"github.com/MayaTheShy/Starworld/config"
	"github.com/MayaTheShy/Starworld/errors"
)

// TableSpecFromConfig returns the integrator-supplied table spec under the
// starworld.protocol key, or the default table when the key is absent. The
// spec is deliberately configuration, not a baked constant: which table is
// right depends on the peer release being targeted.
func TableSpecFromConfig(cfg *config.Config) (TableSpec, error) {
	if cfg == nil || !cfg.IsSet("starworld.protocol.packettypes") {
		return DefaultTableSpec(), nil
	}

	spec := TableSpec{}
	if err := cfg.UnmarshalKey("starworld.protocol", &spec); err != nil {
		return TableSpec{}, errors.NewError(err, errors.ErrSignatureInputCode)
	}
	return spec, nil
}
