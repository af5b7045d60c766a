package vcs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/gopasspw/gitconfig"
)

// Scope names a git configuration file location.
type Scope string

const (
	ScopeLocal  Scope = "local"
	ScopeGlobal Scope = "global"
)

// DefaultScopes is the resolution order used when the caller expresses no
// preference: repository config first, then the user's global config.
var DefaultScopes = []Scope{ScopeLocal, ScopeGlobal}

// Identity is the author recorded in git configuration. Both fields are empty
// when no usable configuration was found.
type Identity struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
}

// IsZero reports whether no identity was resolved.
func (i Identity) IsZero() bool {
	return i.Name == "" && i.Email == ""
}

// String formats the identity as "Name <email>".
func (i Identity) String() string {
	if i.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s <%s>", i.Name, i.Email)
}

// LocalConfigPath returns the repository-local config path under workDir.
func LocalConfigPath(workDir string) string {
	return filepath.Join(workDir, ".git", "config")
}

// GlobalConfigPath returns the user-level config path under homeDir.
func GlobalConfigPath(homeDir string) string {
	return filepath.Join(homeDir, ".gitconfig")
}

// ConfigPath returns the file backing scope.
func ConfigPath(scope Scope, workDir, homeDir string) (string, error) {
	switch scope {
	case ScopeLocal:
		return LocalConfigPath(workDir), nil
	case ScopeGlobal:
		return GlobalConfigPath(homeDir), nil
	default:
		return "", fmt.Errorf("unknown config scope %q", scope)
	}
}

// ResolveIdentity selects a config file by preference and reads the author
// from it. When both preferences are set the local file wins if it exists.
// Missing files and incomplete [user] sections yield a zero Identity and no
// error.
func ResolveIdentity(workDir, homeDir string, preferLocal, preferGlobal bool) (Identity, error) {
	var scopes []Scope
	if preferLocal {
		scopes = append(scopes, ScopeLocal)
	}
	if preferGlobal {
		scopes = append(scopes, ScopeGlobal)
	}
	id, _, err := ResolveIdentityFrom(workDir, homeDir, scopes)
	return id, err
}

// ResolveIdentityFrom walks scopes in order and reads the first config file
// that exists. It returns the scope that was used, or "" if none existed.
func ResolveIdentityFrom(workDir, homeDir string, scopes []Scope) (Identity, Scope, error) {
	for _, scope := range scopes {
		path, err := ConfigPath(scope, workDir, homeDir)
		if err != nil {
			return Identity{}, "", err
		}
		exists, err := fileExists(path)
		if err != nil {
			return Identity{}, "", err
		}
		if !exists {
			continue
		}
		id, err := ReadIdentity(path)
		if err != nil {
			return Identity{}, scope, err
		}
		return id, scope, nil
	}
	return Identity{}, "", nil
}

// ReadIdentity parses user.name and user.email from a git config file. If
// either key is absent the zero Identity is returned, so a half-populated
// author never leaks out.
func ReadIdentity(path string) (Identity, error) {
	cfg, err := gitconfig.LoadConfig(path)
	if err != nil {
		return Identity{}, fmt.Errorf("reading git config %s: %w", path, err)
	}

	name, ok := cfg.Get("user.name")
	if !ok {
		return Identity{}, nil
	}
	email, ok := cfg.Get("user.email")
	if !ok {
		return Identity{}, nil
	}
	return Identity{Name: name, Email: email}, nil
}

// fileExists reports whether path is a regular file. A parent that is not a
// directory counts as absent: in a worktree or submodule .git is a file.
func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	return !info.IsDir(), nil
}
