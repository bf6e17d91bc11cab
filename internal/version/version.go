// Package version gates generation on the minimum tool version a project
// profile asks for. Development builds are never gated.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// A leading "v" is tolerated on either side.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// IsRelease reports whether build is a parseable semver, as opposed to a
// development build such as "dev".
func IsRelease(build string) bool {
	_, err := parseSemver(build)
	return err == nil
}

// Satisfies reports whether current is at least minimum.
func Satisfies(current, minimum string) (bool, error) {
	cmp, err := CompareVersions(current, minimum)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// Require returns an error when build is a release older than minimum.
// An empty minimum or a development build always passes; a malformed minimum
// is an error.
func Require(build, minimum string) error {
	if minimum == "" {
		return nil
	}
	if _, err := parseSemver(minimum); err != nil {
		return fmt.Errorf("invalid min_version %q: %w", minimum, err)
	}
	if !IsRelease(build) {
		return nil
	}
	ok, err := Satisfies(build, minimum)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("this project requires version %s or newer (running %s)", minimum, build)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(v string) (*semver.Version, error) {
	v = strings.TrimPrefix(v, "v")
	return semver.NewVersion(v)
}
