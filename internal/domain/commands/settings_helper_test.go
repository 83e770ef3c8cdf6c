//go:build integration || unit

package commands //nolint:testpackage // tests unexported functions

import "github.com/rios0rios0/requpdate/internal/domain/entities"

func testSettings() *entities.Settings {
	return &entities.Settings{
		BranchName:     entities.DefaultBranchName,
		CommitMessage:  entities.DefaultCommitMessage,
		Manifests:      []string{"requirements.txt", "requirements-test.txt"},
		PackageManager: []string{"pip"},
		GitBinary:      "git",
	}
}
