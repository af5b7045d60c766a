package manifest

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_SchemaCompiles(t *testing.T) {
	s, err := getSchema()
	if err != nil {
		t.Fatalf("schema compilation failed: %v", err)
	}
	if s == nil {
		t.Fatal("compiled schema is nil")
	}
}

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(filepath.Join("testdata", "valid-project.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %s", result.Summary())
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file        string
		wantField   string
		wantKeyword string
	}{
		{"missing-name.yaml", "name", "required"},
		{"unknown-field.yaml", "license", "additionalProperties"},
		{"duplicate-directories.yaml", "directories", "uniqueItems"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(filepath.Join("testdata", tt.file))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid manifest")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.wantKeyword && issue.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no %q issue for field %q in %+v", tt.wantKeyword, tt.wantField, result.Issues)
			}
		})
	}
}

func TestValidate_WrongTypes(t *testing.T) {
	data := []byte("name: acme\ndirectories: docs\nmarker: __init__.py\ncreated: soon\n")
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid manifest")
	}

	paths := map[string]bool{}
	for _, issue := range result.Issues {
		paths[issue.Path] = true
	}
	for _, want := range []string{"/directories", "/created"} {
		if !paths[want] {
			t.Errorf("missing issue for %s in %+v", want, result.Issues)
		}
	}
}

func TestValidate_OneIssuePerMissingField(t *testing.T) {
	result, err := Validate([]byte("tool: right\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, issue := range result.Issues {
		got = append(got, issue.Path+" "+issue.Message)
	}
	want := []string{"/directories is required", "/marker is required", "/name is required"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("issues = %v, want %v", got, want)
	}
}

func TestValidate_NestedFieldIssue(t *testing.T) {
	data := []byte("name: acme\ndirectories: [docs]\nmarker: __init__.py\ngit:\n  remote: origin\n")
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("issues = %+v, want one", result.Issues)
	}
	issue := result.Issues[0]
	if issue.Field != "git" || issue.Path != "/git/remote" {
		t.Errorf("issue = %+v, want field git at /git/remote", issue)
	}
}

func TestValidate_MalformedYAML(t *testing.T) {
	if _, err := Validate([]byte("name: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateFile_Missing(t *testing.T) {
	_, err := ValidateFile(filepath.Join("testdata", "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading file") {
		t.Fatalf("err = %v, want reading file error", err)
	}
}

func TestNormalizeYAML_StringifiesKeys(t *testing.T) {
	got := normalizeYAML(map[any]any{1: []any{map[any]any{true: "x"}}})
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("got %T, want map[string]any", got)
	}
	inner := m["1"].([]any)[0].(map[string]any)
	if inner["true"] != "x" {
		t.Errorf("inner = %v", inner)
	}
}

func TestValidationResult_Summary(t *testing.T) {
	r := &ValidationResult{Issues: []ValidationIssue{
		{Path: "/name", Message: "too short"},
		{Message: "missing property"},
	}}
	if got, want := r.Summary(), "/name: too short; missing property"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
