package changelog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/releng/relkit/internal/errors"
)

// Version is a parsed three-component semantic version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a dotted version string with exactly three
// non-negative integer components. Anything else is an input error:
// the release range derives from this arithmetic, so a silent default
// would diff against the wrong tag.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, errors.MalformedVersion(s)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || strings.TrimSpace(part) != part {
			return Version{}, errors.MalformedVersion(s)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the dotted form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// PreviousBoundary computes the prior release used as the start of the
// changelog diff range.
//
// A patch release diffs against the immediately preceding patch. A minor
// release spans everything since the last minor release, and a major
// release everything since the last major release - deliberately
// over-including changes that shipped in intervening releases, since the
// human editor prunes already-released entries anyway.
func (v Version) PreviousBoundary() Version {
	switch {
	case v.Patch > 0:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch - 1}
	case v.Minor > 0:
		return Version{Major: v.Major, Minor: v.Minor - 1}
	default:
		return Version{Major: v.Major - 1, Minor: v.Minor}
	}
}

// Range returns the git revision range spanning the previous release
// boundary through the current working head.
func (v Version) Range() string {
	return v.PreviousBoundary().String() + "..HEAD"
}
