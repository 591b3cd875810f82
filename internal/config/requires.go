package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Satisfies reports whether the running binary's version satisfies the given
// semver constraint (e.g., ">= 0.3.0"). Development builds ("dev" or empty)
// satisfy every constraint so local builds keep working against pinned
// configs. A leading "v" on the version is tolerated.
func Satisfies(buildVersion, constraint string) (bool, error) {
	if constraint == "" {
		return true, nil
	}
	if buildVersion == "" || buildVersion == "dev" {
		return true, nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing requires constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(buildVersion, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing build version %q: %w", buildVersion, err)
	}

	return c.Check(v), nil
}
