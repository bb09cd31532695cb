// Package version parses feature versions and derives the identifiers
// generated code uses for them.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is returned for strings that are not "major.minor" versions.
var ErrInvalid = errors.New("invalid version")

// FeatureVersion represents a parsed "major.minor" API version.
type FeatureVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (FeatureVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return FeatureVersion{}, fmt.Errorf("%w %q: expected major.minor", ErrInvalid, s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return FeatureVersion{}, fmt.Errorf("%w %q: bad major component", ErrInvalid, s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return FeatureVersion{}, fmt.Errorf("%w %q: bad minor component", ErrInvalid, s)
	}

	return FeatureVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v FeatureVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Ident returns the version as an identifier fragment: "1.0" -> "1_0".
func (v FeatureVersion) Ident() string {
	return fmt.Sprintf("%d_%d", v.Major, v.Minor)
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to
// or after other.
func (v FeatureVersion) Compare(other FeatureVersion) int {
	switch {
	case v.Major != other.Major:
		if v.Major < other.Major {
			return -1
		}
		return 1
	case v.Minor < other.Minor:
		return -1
	case v.Minor > other.Minor:
		return 1
	default:
		return 0
	}
}

// InstanceTable returns the name of the instance-level table of a feature.
func (v FeatureVersion) InstanceTable() string {
	return "InstanceFnV" + v.Ident()
}

// DeviceTable returns the name of the device-level table of a feature.
func (v FeatureVersion) DeviceTable() string {
	return "DeviceFnV" + v.Ident()
}
