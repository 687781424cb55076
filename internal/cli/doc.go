// Package cli wires the cobra command tree for jobdash.
//
// The root command with no arguments launches the TUI dashboard; everything
// else (show, init, edit, doctor, version, completion) is a subcommand. Each
// command's implementation lives in its own file as an xCommand function that
// the cobra RunE delegates to, so the logic stays testable without going
// through cobra argument parsing.
package cli
