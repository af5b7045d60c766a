// Package probe inspects the host: which operating system the CLI runs on,
// whether external tools (git, python, poetry) can be launched, and which
// version of a tool is installed.
package probe
