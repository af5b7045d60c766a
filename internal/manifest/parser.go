package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Path returns the manifest location for a project root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Parse decodes manifest YAML.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &p, nil
}

// Load reads right.yaml from root.
func Load(root string) (*Project, error) {
	data, err := readFile(Path(root))
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Marshal encodes p and validates the result against the schema.
func Marshal(p *Project) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("manifest is invalid: %s", result.Summary())
	}
	return data, nil
}

// Write stores p at root/right.yaml unless the file already exists. It
// reports whether the file was written.
func Write(root string, p *Project) (bool, error) {
	data, err := Marshal(p)
	if err != nil {
		return false, err
	}

	path := Path(root)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", path, err)
	}
	return true, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// Summary joins the issues into one line.
func (r *ValidationResult) Summary() string {
	msgs := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Path != "" {
			msgs = append(msgs, issue.Path+": "+issue.Message)
		} else {
			msgs = append(msgs, issue.Message)
		}
	}
	return strings.Join(msgs, "; ")
}
