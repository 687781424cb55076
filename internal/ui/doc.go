// Package ui holds the shared terminal palette and status symbols used by
// the non-TUI commands (init, doctor). The dashboard itself carries its own
// styles in internal/monitor.
package ui
