package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/right-cli/right/internal/branding"
)

// Env is the host state the core packages need, captured once per command so
// they never read process-wide state themselves.
type Env struct {
	WorkDir string
	HomeDir string
	GOOS    string
}

// Current captures the working directory and home directory of the running
// process. RIGHT_WORKDIR and RIGHT_HOMEDIR override either value.
func Current() (Env, error) {
	work, err := resolveDir(branding.EnvVar("WORKDIR"), os.Getwd)
	if err != nil {
		return Env{}, fmt.Errorf("resolving working directory: %w", err)
	}
	home, err := resolveDir(branding.EnvVar("HOMEDIR"), os.UserHomeDir)
	if err != nil {
		return Env{}, fmt.Errorf("resolving home directory: %w", err)
	}
	return Env{WorkDir: work, HomeDir: home, GOOS: runtime.GOOS}, nil
}

// DefaultProjectName is the lowercase base name of the working directory.
func (e Env) DefaultProjectName() string {
	return strings.ToLower(filepath.Base(filepath.Clean(e.WorkDir)))
}

func resolveDir(envKey string, fallback func() (string, error)) (string, error) {
	if v := os.Getenv(envKey); v != "" {
		return filepath.Abs(v)
	}
	return fallback()
}
