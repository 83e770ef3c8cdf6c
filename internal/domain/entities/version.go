package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// BumpKind classifies the difference between two versions.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
	BumpOther BumpKind = "other"
)

// IsNewerVersion compares two version strings and returns true if newVersion is newer.
func IsNewerVersion(currentVersion, newVersion string) bool {
	current := normalizeVersion(currentVersion)
	candidate := normalizeVersion(newVersion)

	if semver.IsValid(current) && semver.IsValid(candidate) {
		return semver.Compare(candidate, current) > 0
	}

	// pip versions such as 2.0.0rc1 or 2024.1 post-releases are not semver
	return newVersion != currentVersion
}

// Bump returns the kind of version change this package would receive.
func (p OutdatedPackage) Bump() BumpKind {
	current := normalizeVersion(p.CurrentVersion)
	latest := normalizeVersion(p.LatestVersion)

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return BumpOther
	}
	if semver.Major(current) != semver.Major(latest) {
		return BumpMajor
	}
	if semver.MajorMinor(current) != semver.MajorMinor(latest) {
		return BumpMinor
	}
	return BumpPatch
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
