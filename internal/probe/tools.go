package probe

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/right-cli/right/internal/process"
)

// VersionFlag is the argument used to query a tool's version.
const VersionFlag = "--version"

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// ErrNoVersion is returned when a tool's --version output has no version number.
var ErrNoVersion = errors.New("no version number in output")

// ToolIsAvailable runs `command --version` with all output discarded. It
// returns true whenever the process could be launched, whatever its exit
// code, and false only when the executable does not exist. Other launch
// failures are returned as errors.
func ToolIsAvailable(ctx context.Context, r process.Runner, command string) (bool, error) {
	_, err := r.Run(ctx, process.Cmd{Name: command, Args: []string{VersionFlag}, Discard: true})
	if err == nil {
		return true, nil
	}
	if errors.Is(err, process.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// ToolVersion runs `command --version` and parses the first version number
// it prints, e.g. "git version 2.43.0" or "Poetry (version 1.8.3)".
func ToolVersion(ctx context.Context, r process.Runner, command string) (*semver.Version, error) {
	c := process.Cmd{Name: command, Args: []string{VersionFlag}}
	res, err := process.RunChecked(ctx, r, c)
	if err != nil {
		return nil, err
	}
	return ParseVersion(res.Stdout + "\n" + res.Stderr)
}

// ParseVersion extracts and parses the first X.Y[.Z] token in output.
func ParseVersion(output string) (*semver.Version, error) {
	raw := versionPattern.FindString(output)
	if raw == "" {
		return nil, ErrNoVersion
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", raw, err)
	}
	return v, nil
}

// VersionCheck is the outcome of CheckMinimum.
type VersionCheck struct {
	Tool    string
	Found   bool
	Version string // Empty when the tool is missing or printed no version.
	Minimum string
	OK      bool
}

// CheckMinimum reports whether command is installed at version min or newer.
// A missing tool is not an error; it yields Found=false.
func CheckMinimum(ctx context.Context, r process.Runner, command, min string) (*VersionCheck, error) {
	check := &VersionCheck{Tool: command, Minimum: min}

	minVersion, err := semver.NewVersion(min)
	if err != nil {
		return nil, fmt.Errorf("parsing minimum version %q: %w", min, err)
	}

	v, err := ToolVersion(ctx, r, command)
	switch {
	case errors.Is(err, process.ErrNotFound):
		return check, nil
	case errors.Is(err, ErrNoVersion):
		check.Found = true
		return check, nil
	case err != nil:
		return nil, err
	}

	check.Found = true
	check.Version = v.String()
	check.OK = !v.LessThan(minVersion)
	return check, nil
}
