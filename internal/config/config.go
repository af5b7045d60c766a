package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/right-cli/right/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyDefaultBranch = "default_branch"
	KeyWorkBranch    = "work_branch"
	KeyMarkerFile    = "marker_file"
	KeyInterpreters  = "interpreters"
	KeyGitMinVersion = "git_min_version"
)

var defaults = map[string]string{
	KeyDefaultBranch: "main",
	KeyWorkBranch:    "dev",
	KeyMarkerFile:    "__init__.py",
	KeyInterpreters:  "python3,python",
	KeyGitMinVersion: "2.28.0",
}

// loadedHome is the home directory passed to the last Load.
var loadedHome string

// Dir returns the config directory under homeDir (~/.right/).
func Dir(homeDir string) string {
	return filepath.Join(homeDir, branding.HomeDir())
}

// FilePath returns the config file under homeDir (~/.right/config.yaml).
func FilePath(homeDir string) string {
	return filepath.Join(Dir(homeDir), fileName+"."+fileType)
}

// EnsureDir creates the config directory under homeDir if it does not exist.
func EnsureDir(homeDir string) error {
	dir := Dir(homeDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read homeDir's config file and the environment.
// A missing config file is not an error; a malformed one is.
func Load(homeDir string) error {
	viper.Reset()
	loadedHome = homeDir
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
	path := FilePath(homeDir)
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// IsSet reports whether key was given in the config file or environment,
// as opposed to falling back to its default.
func IsSet(key string) bool {
	return viper.InConfig(key) || os.Getenv(branding.EnvVar(key)) != ""
}

// Keys returns the recognized keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnown reports whether key is a recognized setting.
func IsKnown(key string) bool {
	return slices.Contains(Keys(), key)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// DefaultBranch is the branch "git init" starts on.
func DefaultBranch() string { return Get(KeyDefaultBranch) }

// WorkBranch is the branch checked out after the repository is created.
func WorkBranch() string { return Get(KeyWorkBranch) }

// MarkerFile is the empty file placed in every scaffolded directory.
func MarkerFile() string { return Get(KeyMarkerFile) }

// GitMinVersion is the oldest git that "right doctor" accepts.
func GitMinVersion() string { return Get(KeyGitMinVersion) }

// Interpreters returns the Python interpreters to try, in order.
func Interpreters() []string {
	var out []string
	for _, name := range strings.Split(Get(KeyInterpreters), ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Set writes a config key-value pair to the file chosen by the last Load.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if loadedHome == "" {
		return fmt.Errorf("config not loaded")
	}
	if err := EnsureDir(loadedHome); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath(loadedHome)

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
