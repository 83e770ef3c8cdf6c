//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
)

// OutdatedPackageBuilder helps create test packages with a fluent interface.
type OutdatedPackageBuilder struct {
	*testkit.BaseBuilder
	name           string
	currentVersion string
	latestVersion  string
}

// NewOutdatedPackageBuilder creates a builder defaulting to varsnap 1.0.0 -> 1.2.3.
func NewOutdatedPackageBuilder() *OutdatedPackageBuilder {
	return &OutdatedPackageBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		name:           "varsnap",
		currentVersion: "1.0.0",
		latestVersion:  "1.2.3",
	}
}

// WithName sets the package name.
func (b *OutdatedPackageBuilder) WithName(name string) *OutdatedPackageBuilder {
	b.name = name
	return b
}

// WithCurrentVersion sets the installed version.
func (b *OutdatedPackageBuilder) WithCurrentVersion(version string) *OutdatedPackageBuilder {
	b.currentVersion = version
	return b
}

// WithLatestVersion sets the latest available version.
func (b *OutdatedPackageBuilder) WithLatestVersion(version string) *OutdatedPackageBuilder {
	b.latestVersion = version
	return b
}

// Build creates the package (satisfies testkit.Builder interface).
func (b *OutdatedPackageBuilder) Build() interface{} {
	return b.BuildOutdatedPackage()
}

// BuildOutdatedPackage creates the package with a concrete return type.
func (b *OutdatedPackageBuilder) BuildOutdatedPackage() entities.OutdatedPackage {
	return entities.OutdatedPackage{
		Name:           b.name,
		CurrentVersion: b.currentVersion,
		LatestVersion:  b.latestVersion,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *OutdatedPackageBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "varsnap"
	b.currentVersion = "1.0.0"
	b.latestVersion = "1.2.3"
	return b
}

// Clone creates a deep copy of the OutdatedPackageBuilder.
func (b *OutdatedPackageBuilder) Clone() testkit.Builder {
	return &OutdatedPackageBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:           b.name,
		currentVersion: b.currentVersion,
		latestVersion:  b.latestVersion,
	}
}
