package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "project.schema.json"

//go:embed schema/project.schema.json
var schemaBytes []byte

var (
	projectSchema *jsonschema.Schema
	schemaOnce    sync.Once
	schemaErr     error
	printer       = message.NewPrinter(language.English)
)

// ValidationResult is the outcome of checking a manifest against the schema.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one problem with one manifest field.
type ValidationIssue struct {
	Field   string // Top-level manifest key, e.g. "directories"; empty for the document itself.
	Path    string // JSON pointer into the manifest, e.g. "/directories/2".
	Message string
	Keyword string // Schema keyword that failed, e.g. "uniqueItems".
}

// getSchema compiles the embedded project schema once.
func getSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		projectSchema, err = c.Compile(schemaURL)
		if err != nil {
			schemaErr = fmt.Errorf("compiling schema: %w", err)
		}
	})
	return projectSchema, schemaErr
}

// Validate checks manifest YAML against the project schema. The error is for
// unparsable input or a broken schema; schema violations are reported in the
// result.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	inst, err := toInstance(data)
	if err != nil {
		return nil, err
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}
	return &ValidationResult{Issues: fieldIssues(ve)}, nil
}

// ValidateFile reads a file and validates it against the project schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// toInstance decodes YAML and round-trips it through JSON so numbers arrive
// as json.Number, the form the validator expects.
func toInstance(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}
	return inst, nil
}

// fieldIssues flattens the error tree into one issue per failing leaf,
// sorted by path. Missing and unexpected keys are split per key so each
// issue names a single field.
func fieldIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, c := range e.Causes {
				walk(c)
			}
			return
		}
		issues = append(issues, leafIssues(e)...)
	}
	walk(ve)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return issues
}

func leafIssues(e *jsonschema.ValidationError) []ValidationIssue {
	loc := e.InstanceLocation
	switch k := e.ErrorKind.(type) {
	case *kind.Required:
		return perKey(loc, k.Missing, "required", "is required")
	case *kind.AdditionalProperties:
		return perKey(loc, k.Properties, "additionalProperties", "is not a recognized field")
	}

	issue := ValidationIssue{Path: pointer(loc)}
	if len(loc) > 0 {
		issue.Field = loc[0]
	}
	if e.ErrorKind != nil {
		issue.Message = e.ErrorKind.LocalizedString(printer)
		if kw := e.ErrorKind.KeywordPath(); len(kw) > 0 {
			issue.Keyword = kw[len(kw)-1]
		}
	}
	return []ValidationIssue{issue}
}

// perKey emits one issue for each key of an object-level failure.
func perKey(loc, keys []string, keyword, msg string) []ValidationIssue {
	issues := make([]ValidationIssue, 0, len(keys))
	for _, key := range keys {
		at := append(append([]string{}, loc...), key)
		issues = append(issues, ValidationIssue{
			Field:   at[0],
			Path:    pointer(at),
			Message: msg,
			Keyword: keyword,
		})
	}
	return issues
}

func pointer(loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	return "/" + strings.Join(loc, "/")
}

// normalizeYAML converts YAML-decoded values into types encoding/json can
// marshal. Non-string map keys (e.g. `1: x`) are stringified.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}
