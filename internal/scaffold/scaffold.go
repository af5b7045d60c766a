package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/right-cli/right/internal/ui"
)

// DefaultMarker is the package marker placed in every scaffolded directory.
const DefaultMarker = "__init__.py"

// FixedDirectories are created for every project, ahead of the project's own
// directory.
var FixedDirectories = []string{"docs", "tests", "assets", "scripts"}

var (
	// ErrMissingDirectory is returned when a marker file targets a directory
	// that does not exist.
	ErrMissingDirectory = errors.New("directory does not exist")

	// ErrNotDirectory is returned when a target exists but is a regular file.
	ErrNotDirectory = errors.New("exists but is not a directory")

	// ErrEmptyName is returned by Scaffold when no project name is given.
	ErrEmptyName = errors.New("project name is empty")
)

// Result holds the outcome of a scaffolding run. Paths are relative to Root.
type Result struct {
	Root         string
	CreatedDirs  []string
	CreatedFiles []string
	Skipped      []string
	Missing      []string
	Warnings     []string
}

// Options configures Scaffold.
type Options struct {
	Root    string // Directory the skeleton is created in.
	Name    string // Project name; becomes the fifth directory.
	Marker  string // Marker file name; defaults to DefaultMarker.
	Printer *ui.Printer
}

// Directories returns the ordered directory set for a project.
func Directories(name string) []string {
	dirs := make([]string, 0, len(FixedDirectories)+1)
	dirs = append(dirs, FixedDirectories...)
	return append(dirs, name)
}

// CreateDirectory creates root/target if it is absent. It reports whether the
// directory was created; an existing directory is not an error.
func CreateDirectory(root, target string) (bool, error) {
	path := filepath.Join(root, target)
	err := os.Mkdir(path, 0755)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return false, fmt.Errorf("creating directory %s: %w", path, err)
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		return false, fmt.Errorf("checking %s: %w", path, statErr)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s %w", path, ErrNotDirectory)
	}
	return false, nil
}

// CreateMarkerFile creates an empty marker file inside root/target if it is
// absent. An existing file is never truncated. A missing target directory
// yields an error wrapping ErrMissingDirectory.
func CreateMarkerFile(root, target, marker string) (bool, error) {
	if marker == "" {
		marker = DefaultMarker
	}
	dir := filepath.Join(root, target)

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%s: %w", dir, ErrMissingDirectory)
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", dir, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s %w", dir, ErrNotDirectory)
	}

	path := filepath.Join(dir, marker)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	switch {
	case err == nil:
		if err := f.Close(); err != nil {
			return true, fmt.Errorf("closing %s: %w", path, err)
		}
		return true, nil
	case errors.Is(err, fs.ErrExist):
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		// Directory removed between the stat and the create.
		return false, fmt.Errorf("%s: %w", dir, ErrMissingDirectory)
	default:
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
}

// CreateDirectories creates each target under root. Failures are recorded as
// warnings and do not stop the remaining targets.
func CreateDirectories(root string, targets []string, p *ui.Printer) *Result {
	if p == nil {
		p = ui.Discard()
	}
	result := &Result{Root: root}

	for _, target := range targets {
		created, err := CreateDirectory(root, target)
		switch {
		case err != nil:
			p.Status(ui.TagFail, "%v", err)
			result.Warnings = append(result.Warnings, err.Error())
		case created:
			p.Status(ui.TagOK, "Created %s%c", target, filepath.Separator)
			result.CreatedDirs = append(result.CreatedDirs, target)
		default:
			p.Status(ui.TagSkip, "%s%c already exists", target, filepath.Separator)
			result.Skipped = append(result.Skipped, target)
		}
	}
	return result
}

// CreateMarkerFiles places marker inside each target directory. A missing
// directory is reported and skipped; processing continues with the next one.
func CreateMarkerFiles(root string, targets []string, marker string, p *ui.Printer) *Result {
	if p == nil {
		p = ui.Discard()
	}
	if marker == "" {
		marker = DefaultMarker
	}
	result := &Result{Root: root}

	for _, target := range targets {
		rel := filepath.Join(target, marker)
		created, err := CreateMarkerFile(root, target, marker)
		switch {
		case errors.Is(err, ErrMissingDirectory):
			p.Status(ui.TagMiss, "Directory '%s' doesn't exist", target)
			result.Missing = append(result.Missing, target)
			result.Warnings = append(result.Warnings, fmt.Sprintf("directory %q does not exist", target))
		case err != nil:
			p.Status(ui.TagFail, "%v", err)
			result.Warnings = append(result.Warnings, err.Error())
		case created:
			p.Status(ui.TagOK, "Created %s", rel)
			result.CreatedFiles = append(result.CreatedFiles, rel)
		default:
			p.Status(ui.TagSkip, "%s already exists", rel)
			result.Skipped = append(result.Skipped, rel)
		}
	}
	return result
}

// Scaffold creates the full directory set for opts.Name under opts.Root, then
// a marker file in each directory.
func Scaffold(opts Options) (*Result, error) {
	if strings.TrimSpace(opts.Name) == "" {
		return nil, ErrEmptyName
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("checking project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s %w", root, ErrNotDirectory)
	}

	targets := Directories(opts.Name)
	result := CreateDirectories(root, targets, opts.Printer)
	result.merge(CreateMarkerFiles(root, targets, opts.Marker, opts.Printer))
	return result, nil
}

func (r *Result) merge(other *Result) {
	r.CreatedDirs = append(r.CreatedDirs, other.CreatedDirs...)
	r.CreatedFiles = append(r.CreatedFiles, other.CreatedFiles...)
	r.Skipped = append(r.Skipped, other.Skipped...)
	r.Missing = append(r.Missing, other.Missing...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}
