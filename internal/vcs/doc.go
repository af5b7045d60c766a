// Package vcs wraps the two git touch points of the CLI: reading the author
// identity from git configuration files (repository-local .git/config or the
// user's ~/.gitconfig) and initializing a fresh repository with a "main"
// default branch and a "dev" working branch.
package vcs
