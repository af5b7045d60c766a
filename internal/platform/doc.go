// Package platform resolves the host environment the CLI operates on (working
// directory, home directory, OS) and smooths over filesystem differences
// between Unix and Windows.
package platform
