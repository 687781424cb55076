// Package util holds small helpers shared across packages.
package util

import "strings"

// ShellQuote single-quotes s for a POSIX shell, escaping embedded single
// quotes. Remote scp paths pass through the remote login shell, so anything
// user-configured gets quoted before it goes on the wire.
func ShellQuote(s string) string {
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}

// ShellQuotePreserveTilde quotes a path while leaving a leading ~/ bare so
// the remote shell still expands it to the user's home directory. Paths in
// the config are usually written relative to ~.
func ShellQuotePreserveTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		return "~/" + ShellQuote(path[2:])
	}
	if path == "~" {
		return "~"
	}
	return ShellQuote(path)
}
