package manifest

import (
	"time"

	"github.com/right-cli/right/internal/vcs"
)

// FileName is the manifest written at the project root.
const FileName = "right.yaml"

// Project is the content of right.yaml.
type Project struct {
	Name        string        `yaml:"name"`
	Author      *vcs.Identity `yaml:"author,omitempty"`
	Directories []string      `yaml:"directories"`
	Marker      string        `yaml:"marker"`
	Git         *GitSettings  `yaml:"git,omitempty"`
	Tool        string        `yaml:"tool,omitempty"`
	ToolVersion string        `yaml:"tool_version,omitempty"`
	Created     int           `yaml:"created,omitempty"`
}

// GitSettings records the branches used when the repository was initialized.
type GitSettings struct {
	DefaultBranch string `yaml:"default_branch,omitempty"`
	WorkBranch    string `yaml:"work_branch,omitempty"`
}

// NewProject builds a manifest stamped with the current year. A zero author
// is omitted. Repeated directories are recorded once, so a project named
// "docs" lists docs a single time.
func NewProject(name string, author vcs.Identity, dirs []string, marker string) *Project {
	p := &Project{
		Name:        name,
		Directories: uniqueDirs(dirs),
		Marker:      marker,
		Created:     time.Now().Year(),
	}
	if !author.IsZero() {
		a := author
		p.Author = &a
	}
	return p
}

// uniqueDirs drops repeated entries and keeps first-seen order.
func uniqueDirs(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
