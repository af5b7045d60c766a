// Package manifest reads, writes and validates right.yaml, the small record
// "right init" leaves at the project root: project name, author, the
// directories that were scaffolded and the tool version that created them.
// Manifests are checked against an embedded JSON Schema before they are
// written.
package manifest
