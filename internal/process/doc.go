// Package process runs external tools (git, python, poetry) on behalf of the
// CLI. Every invocation goes through a Runner so callers can be tested with a
// fake, and so "executable not found" and "tool exited non-zero" surface as
// distinct, inspectable errors instead of being silently ignored.
package process
