// Package ui formats the status lines the CLI prints while it works. Lines
// follow the "  [TAG ] message" convention; tags are coloured with lipgloss
// when the destination is a terminal.
package ui
