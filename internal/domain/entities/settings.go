package entities

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBranchName    = "dep-update"
	DefaultCommitMessage = "Update {package} package to {version}"
	DefaultGitBinary     = "git"
)

// Settings is the file-backed configuration for requpdate.
type Settings struct {
	BranchName     string   `yaml:"branch_name"`
	CommitMessage  string   `yaml:"commit_message"`  // {package} and {version} are substituted
	Manifests      []string `yaml:"manifests"`       // Paths relative to the repository root
	PackageManager []string `yaml:"package_manager"` // Binary (and leading args) used to invoke pip
	GitBinary      string   `yaml:"git_binary"`
	Changelog      bool     `yaml:"changelog"` // Add a CHANGELOG.md entry to every bump commit
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file is present.
func NewDefaultSettings() *Settings {
	return &Settings{
		BranchName:     DefaultBranchName,
		CommitMessage:  DefaultCommitMessage,
		Manifests:      []string{"requirements.txt", "requirements-test.txt"},
		PackageManager: []string{findPipBinary()},
		GitBinary:      DefaultGitBinary,
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and filling every unset key with its default.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.BranchName = expandEnv(settings.BranchName)
	settings.GitBinary = expandEnv(settings.GitBinary)
	for i := range settings.PackageManager {
		settings.PackageManager[i] = expandEnv(settings.PackageManager[i])
	}
	for i := range settings.Manifests {
		settings.Manifests[i] = expandEnv(settings.Manifests[i])
	}

	settings.applyDefaults()

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// LoadSettings loads the given config file, or searches the default
// locations when path is empty. Missing files fall back to defaults.
func LoadSettings(path string) (*Settings, error) {
	if path != "" {
		return NewSettings(path)
	}

	found, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return NewDefaultSettings(), nil
	}

	logger.Debugf("Using config file: %s", found)
	return NewSettings(found)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".requpdate.yaml",
		".requpdate.yml",
		"requpdate.yaml",
		"requpdate.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// FormatCommitMessage renders the commit message for a single package bump.
func (s *Settings) FormatCommitMessage(name, version string) string {
	return strings.NewReplacer("{package}", name, "{version}", version).Replace(s.CommitMessage)
}

func (s *Settings) applyDefaults() {
	defaults := NewDefaultSettings()
	if s.BranchName == "" {
		s.BranchName = defaults.BranchName
	}
	if s.CommitMessage == "" {
		s.CommitMessage = defaults.CommitMessage
	}
	if len(s.Manifests) == 0 {
		s.Manifests = defaults.Manifests
	}
	if len(s.PackageManager) == 0 {
		s.PackageManager = defaults.PackageManager
	}
	if s.GitBinary == "" {
		s.GitBinary = defaults.GitBinary
	}
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for values that would make every run fail.
func validate(settings *Settings) error {
	if strings.ContainsAny(settings.BranchName, " \t~^:?*[\\") {
		return fmt.Errorf("branch_name %q is not a valid git branch name", settings.BranchName)
	}

	for i, manifest := range settings.Manifests {
		if strings.TrimSpace(manifest) == "" {
			return fmt.Errorf("manifests[%d] must not be empty", i)
		}
		if filepath.IsAbs(manifest) {
			return fmt.Errorf("manifests[%d] must be relative to the repository root", i)
		}
	}

	if strings.TrimSpace(settings.PackageManager[0]) == "" {
		return errors.New("package_manager must name a binary")
	}

	return nil
}

// findPipBinary prefers pip3 over pip and falls back to the bare name so
// that the failure surfaces as a shell error with a clear command line.
func findPipBinary() string {
	for _, name := range []string{"pip3", "pip"} {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	return "pip"
}
