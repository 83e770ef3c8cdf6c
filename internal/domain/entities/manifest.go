package entities

import (
	"regexp"
	"strings"
)

// pinPattern matches a requirements line pinned with "==" or "===", capturing
//  1. everything up to and including the operator (indent, name, extras)
//  2. the name
//  3. the version token
//  4. the remainder (markers, hashes, comments, trailing CR)
var pinPattern = regexp.MustCompile(
	`^(\s*([A-Za-z0-9][A-Za-z0-9._-]*)\s*(?:\[[^\]]*\])?\s*(?:===|==)\s*)([^\s;#,\\]+)(.*)$`,
)

// separatorPattern matches runs of characters that PEP 503 treats as equivalent.
var separatorPattern = regexp.MustCompile(`[-_.]+`)

// NormalizePackageName returns the canonical form of a distribution name,
// so that "Foo_Bar", "foo-bar" and "foo.bar" compare equal.
func NormalizePackageName(name string) string {
	return strings.ToLower(separatorPattern.ReplaceAllString(strings.TrimSpace(name), "-"))
}

// RewritePin replaces the pinned version of the given package in a
// requirements file, leaving every other byte untouched. It returns the new
// content and whether any line was changed.
func RewritePin(content, name, version string) (string, bool) {
	wanted := NormalizePackageName(name)
	lines := strings.Split(content, "\n")
	changed := false

	for i, line := range lines {
		match := pinPattern.FindStringSubmatchIndex(line)
		if match == nil {
			continue
		}
		if NormalizePackageName(line[match[4]:match[5]]) != wanted {
			continue
		}
		if line[match[6]:match[7]] == version {
			continue
		}

		lines[i] = line[:match[6]] + version + line[match[7]:]
		changed = true
	}

	if !changed {
		return content, false
	}
	return strings.Join(lines, "\n"), true
}

// PinnedVersion returns the version the content pins for the given package.
func PinnedVersion(content, name string) (string, bool) {
	wanted := NormalizePackageName(name)
	for _, line := range strings.Split(content, "\n") {
		match := pinPattern.FindStringSubmatch(line)
		if match != nil && NormalizePackageName(match[2]) == wanted {
			return match[3], true
		}
	}
	return "", false
}
