package api

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// APIVersion is the server API generation this client speaks.
const APIVersion = "2.0.0"

// serverConstraint accepts any server in the same major generation.
var serverConstraint = mustConstraint("^2.0")

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// CheckServerVersion reports whether a server advertising the given version
// is compatible with this client. Returns ErrIncompatibleServer when the
// version cannot be parsed or falls outside the supported range.
func CheckServerVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return ErrIncompatibleServer.MsgErr("unparsable server version "+version, err)
	}
	if !serverConstraint.Check(v) {
		return ErrIncompatibleServer.Msg("server version " + version + " is outside supported range " + serverConstraint.String())
	}
	return nil
}
