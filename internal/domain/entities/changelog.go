package entities

import (
	"fmt"
	"strings"
)

const (
	unreleasedHeading = "## [Unreleased]"
	changedSubheading = "### Changed"
	releasePrefix     = "## ["
	bulletPrefix      = "- "
)

// ChangelogBumpEntry returns the bullet recorded for a single package bump.
func ChangelogBumpEntry(name, version string) string {
	return fmt.Sprintf("- bumped `%s` to `%s`", name, version)
}

// AddChangelogEntry adds a bullet under "## [Unreleased]" / "### Changed" of a
// Keep-a-Changelog document. Content without an Unreleased section is
// returned unchanged. A missing "### Changed" subsection is created directly
// below the Unreleased heading; otherwise the bullet goes after the last one.
func AddChangelogEntry(content, entry string) string {
	lines := strings.Split(content, "\n")

	unreleased := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == unreleasedHeading {
			unreleased = i
			break
		}
	}
	if unreleased < 0 {
		return content
	}

	end := len(lines)
	changed := -1
	for i := unreleased + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, releasePrefix) {
			end = i
			break
		}
		if changed < 0 && trimmed == changedSubheading {
			changed = i
		}
	}

	if changed < 0 {
		return joinWithInsert(lines, unreleased+1, "", changedSubheading, "", entry)
	}

	at := changed
	for i := changed + 1; i < end; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, bulletPrefix) {
			break
		}
		at = i
	}
	return joinWithInsert(lines, at+1, entry)
}

func joinWithInsert(lines []string, at int, extra ...string) string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	result = append(result, lines[at:]...)
	return strings.Join(result, "\n")
}
