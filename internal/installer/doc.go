// Package installer installs the Poetry dependency manager by running a
// bundled bootstrap script with the first Python interpreter found on PATH,
// then confirms the result by querying `poetry --version`.
package installer
