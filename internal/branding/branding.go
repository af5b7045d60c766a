// Package branding provides compile-time identity values for the CLI.
//
// Values come from branding.yaml, baked into the binary with //go:embed.
// Forks that rename the tool only need to edit that file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	GitHubRepo    string `yaml:"github_repo"`
	GitDocsURL    string `yaml:"git_docs_url"`
	PythonDocsURL string `yaml:"python_docs_url"`
	PoetryDocsURL string `yaml:"poetry_docs_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "right",
			DisplayName:   "Right",
			Description:   "Scaffold a standard project layout in the current directory",
			HomeDir:       ".right",
			EnvPrefix:     "RIGHT",
			GoModule:      "github.com/right-cli/right",
			GitHubRepo:    "right-cli/right",
			GitDocsURL:    "https://git-scm.com/downloads",
			PythonDocsURL: "https://www.python.org/downloads/",
			PoetryDocsURL: "https://python-poetry.org/docs/#installation",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "right").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Right").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".right").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "RIGHT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// GitDocsURL is the install reference shown when git is missing.
func GitDocsURL() string { load(); return defaults.GitDocsURL }

// PythonDocsURL is the install reference shown when no Python interpreter is found.
func PythonDocsURL() string { load(); return defaults.PythonDocsURL }

// PoetryDocsURL is the install reference shown when Poetry is missing after install.
func PoetryDocsURL() string { load(); return defaults.PoetryDocsURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "RIGHT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
