package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
	"github.com/rios0rios0/requpdate/internal/domain/repositories"
)

const changelogFile = "CHANGELOG.md"

// updater carries one run's immutable configuration and collaborators.
// It is built once per Execute and discarded afterwards.
type updater struct {
	cfg      entities.RunConfiguration
	settings *entities.Settings
	runner   repositories.CommandRunner
	output   repositories.OutputRepository
}

// manifestEdit is the set of files touched for a single package, with their
// previous content so the edit can be undone.
type manifestEdit struct {
	Files     []string
	originals map[string]fileSnapshot
}

type fileSnapshot struct {
	content []byte
	mode    fs.FileMode
}

func newUpdater(
	cfg entities.RunConfiguration,
	settings *entities.Settings,
	runner repositories.CommandRunner,
	output repositories.OutputRepository,
) *updater {
	return &updater{
		cfg:      cfg,
		settings: settings,
		runner:   runner,
		output:   output,
	}
}

// run walks the linear workflow: clean check, branch, outdated query, then
// one isolated update and commit per package.
func (u *updater) run(ctx context.Context) (*entities.UpdateReport, error) {
	if err := u.checkCleanliness(ctx); err != nil {
		return nil, err
	}

	if err := u.createBranch(ctx); err != nil {
		return nil, err
	}

	outdated, err := u.fetchOutdatedPackages(ctx)
	if err != nil {
		return nil, err
	}
	logger.Infof("[pip] Found %d outdated package(s)", len(outdated))

	report := &entities.UpdateReport{Branch: u.settings.BranchName}
	for _, pkg := range outdated {
		u.updatePackage(ctx, pkg, report)
	}

	return report, nil
}

// updatePackage applies and commits one package. Failures roll the manifest
// back so that the next package's commit does not pick the edit up.
func (u *updater) updatePackage(ctx context.Context, pkg entities.OutdatedPackage, report *entities.UpdateReport) {
	if !entities.IsNewerVersion(pkg.CurrentVersion, pkg.LatestVersion) {
		logger.Debugf("[pip] %s %s is not older than %s, skipping", pkg.Name, pkg.CurrentVersion, pkg.LatestVersion)
		report.Skipped = append(report.Skipped, pkg)
		return
	}

	edit, err := u.applyUpdate(ctx, pkg)
	if errors.Is(err, entities.ErrAlreadyPinned) {
		logger.Infof("[pip] %s is already pinned at %s, skipping", pkg.Name, pkg.LatestVersion)
		report.Skipped = append(report.Skipped, pkg)
		return
	}
	if errors.Is(err, entities.ErrPinNotFound) {
		logger.Infof("[pip] %s is not pinned in %s, skipping", pkg.Name, strings.Join(u.settings.Manifests, ", "))
		report.Skipped = append(report.Skipped, pkg)
		return
	}
	if err != nil {
		logger.Errorf("[pip] Failed to update %s: %v", pkg.Name, err)
		u.rollback(ctx, edit)
		report.Failed = append(report.Failed, entities.PackageFailure{Package: pkg, Err: err})
		return
	}

	if commitErr := u.commitUpdate(ctx, pkg, edit.Files); commitErr != nil {
		logger.Errorf("[git] Failed to commit %s: %v", pkg.Name, commitErr)
		u.rollback(ctx, edit)
		report.Failed = append(report.Failed, entities.PackageFailure{Package: pkg, Err: commitErr})
		return
	}

	logger.Infof("[pip] Bumped %s from %s to %s", pkg.Name, pkg.CurrentVersion, pkg.LatestVersion)
	report.Updated = append(report.Updated, pkg)
}

// checkCleanliness fails when `git status --porcelain` reports anything.
func (u *updater) checkCleanliness(ctx context.Context) error {
	result, err := u.runner.Run(ctx, u.git("status", "--porcelain"))
	if err != nil {
		return fmt.Errorf("failed to query repository status: %w", err)
	}

	for _, line := range strings.Split(string(result.Stdout), "\n") {
		if len(line) > 0 {
			return fmt.Errorf("%w: %s", entities.ErrDirtyRepository, strings.TrimSpace(line))
		}
	}
	return nil
}

// createBranch starts the work branch from the current HEAD.
func (u *updater) createBranch(ctx context.Context) error {
	if _, err := u.runner.Run(ctx, u.git("checkout", "-b", u.settings.BranchName)); err != nil {
		return fmt.Errorf("failed to create branch %q: %w", u.settings.BranchName, err)
	}
	logger.Infof("[git] Working on branch %s", u.settings.BranchName)
	return nil
}

// fetchOutdatedPackages asks pip for outdated packages in JSON form. Empty
// output (what a dry run produces), null and an empty object all mean
// nothing is outdated.
func (u *updater) fetchOutdatedPackages(ctx context.Context) ([]entities.OutdatedPackage, error) {
	argv := append(append([]string{}, u.settings.PackageManager...), "list", "--outdated", "--format", "json")
	result, err := u.runner.Run(ctx, argv)
	if err != nil {
		return nil, fmt.Errorf("failed to list outdated packages: %w", err)
	}

	return parseOutdatedPackages(result.Stdout)
}

func parseOutdatedPackages(data []byte) ([]entities.OutdatedPackage, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []entities.OutdatedPackage{}, nil
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrMalformedOutput, err) //nolint:errorlint // one %w only
	}
	if isEmptyDocument(raw) {
		return []entities.OutdatedPackage{}, nil
	}

	var packages []entities.OutdatedPackage
	if err := json.Unmarshal(raw, &packages); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrMalformedOutput, err) //nolint:errorlint // one %w only
	}

	for i, pkg := range packages {
		if pkg.Name == "" || pkg.LatestVersion == "" {
			return nil, fmt.Errorf("%w: record %d has no name or latest_version", entities.ErrMalformedOutput, i)
		}
	}
	return packages, nil
}

// isEmptyDocument reports whether raw is null or an object without keys.
func isEmptyDocument(raw json.RawMessage) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return true
	}
	var object map[string]json.RawMessage
	return json.Unmarshal(raw, &object) == nil && len(object) == 0
}

// applyUpdate rewrites the pin of pkg in every configured manifest that has
// one. Under dry run the edit is only described.
func (u *updater) applyUpdate(_ context.Context, pkg entities.OutdatedPackage) (*manifestEdit, error) {
	edit := &manifestEdit{originals: make(map[string]fileSnapshot)}
	current := false

	for _, manifest := range u.settings.Manifests {
		ok, err := u.rewriteFile(edit, manifest, func(content string) (string, bool) {
			updated, changed := entities.RewritePin(content, pkg.Name, pkg.LatestVersion)
			if !changed {
				if pinned, found := entities.PinnedVersion(content, pkg.Name); found && pinned == pkg.LatestVersion {
					current = true
				}
			}
			return updated, changed
		})
		if err != nil {
			return edit, err
		}
		if ok {
			u.describe(fmt.Sprintf("pin %s==%s in %s", pkg.Name, pkg.LatestVersion, manifest))
		}
	}

	if len(edit.Files) == 0 {
		if current {
			return edit, fmt.Errorf("%w: %s==%s", entities.ErrAlreadyPinned, pkg.Name, pkg.LatestVersion)
		}
		return edit, fmt.Errorf("%w: %s", entities.ErrPinNotFound, pkg.Name)
	}

	if u.settings.Changelog {
		ok, err := u.rewriteFile(edit, changelogFile, func(content string) (string, bool) {
			updated := entities.AddChangelogEntry(content, entities.ChangelogBumpEntry(pkg.Name, pkg.LatestVersion))
			return updated, updated != content
		})
		if err != nil {
			return edit, err
		}
		if ok {
			u.describe(fmt.Sprintf("add a %s entry for %s", changelogFile, pkg.Name))
		}
	}

	return edit, nil
}

// rewriteFile applies rewrite to a repository file and records it in edit.
// Missing files are ignored.
func (u *updater) rewriteFile(edit *manifestEdit, name string, rewrite func(string) (string, bool)) (bool, error) {
	path := u.path(name)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", name, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}

	updated, changed := rewrite(string(content))
	if !changed {
		return false, nil
	}

	edit.Files = append(edit.Files, name)
	if u.cfg.DryRun {
		return true, nil
	}

	edit.originals[name] = fileSnapshot{content: content, mode: info.Mode().Perm()}
	if writeErr := os.WriteFile(path, []byte(updated), info.Mode().Perm()); writeErr != nil {
		return false, fmt.Errorf("failed to write %s: %w", name, writeErr)
	}
	return true, nil
}

// commitUpdate stages the edited files and commits them as one bump.
func (u *updater) commitUpdate(ctx context.Context, pkg entities.OutdatedPackage, files []string) error {
	if _, err := u.runner.Run(ctx, u.git(append([]string{"add", "--"}, files...)...)); err != nil {
		return fmt.Errorf("failed to stage %s: %w", strings.Join(files, ", "), err)
	}

	message := u.settings.FormatCommitMessage(pkg.Name, pkg.LatestVersion)
	if _, err := u.runner.Run(ctx, u.git("commit", "-m", message)); err != nil {
		return fmt.Errorf("failed to commit %q: %w", message, err)
	}
	return nil
}

// rollback restores the files an edit touched and unstages them.
func (u *updater) rollback(ctx context.Context, edit *manifestEdit) {
	if edit == nil || len(edit.originals) == 0 {
		return
	}

	restored := make([]string, 0, len(edit.originals))
	for name, snapshot := range edit.originals {
		if err := os.WriteFile(u.path(name), snapshot.content, snapshot.mode); err != nil {
			logger.Errorf("[pip] Failed to restore %s: %v", name, err)
			continue
		}
		restored = append(restored, name)
	}

	if len(restored) == 0 {
		return
	}
	if _, err := u.runner.Run(ctx, u.git(append([]string{"reset", "-q", "--"}, restored...)...)); err != nil {
		logger.Warnf("[git] Failed to unstage %s: %v", strings.Join(restored, ", "), err)
	}
}

// describe reports an action that is skipped because of dry run.
func (u *updater) describe(action string) {
	if u.cfg.DryRun {
		u.log("Would " + action)
		return
	}
	logger.Debugf("[pip] %s", action)
}

func (u *updater) log(message string) {
	u.output.Log(message)
}

func (u *updater) git(args ...string) []string {
	return append([]string{u.settings.GitBinary}, args...)
}

func (u *updater) path(name string) string {
	return filepath.Join(u.cfg.RepoDir, name)
}
