package entities

// OutdatedPackage represents an installed package that has a newer release
// available, as reported by the package manager.
type OutdatedPackage struct {
	Name           string `json:"name"`           // Distribution name as pip reports it
	CurrentVersion string `json:"version"`        // Currently installed version
	LatestVersion  string `json:"latest_version"` // Latest available version
}

// PackageFailure records a package whose update could not be applied or committed.
type PackageFailure struct {
	Package OutdatedPackage
	Err     error
}

// UpdateReport summarises the outcome of a single run.
type UpdateReport struct {
	Branch  string
	Updated []OutdatedPackage
	Skipped []OutdatedPackage
	Failed  []PackageFailure
	Commits []Commit
}

// Commit is a version-control commit read back after a run.
type Commit struct {
	Hash    string
	Message string
}
