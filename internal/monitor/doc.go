// Package monitor implements the live TUI dashboard for remote job output.
//
// The dashboard shows one card per monitored job: its latest parsed data
// series, the remote file's modification time, and how long ago the data
// was refreshed.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds dashboard state (the refresh coordinator, selection,
//     layout dimensions, view mode)
//   - Update: Processes messages (keystrokes, tick events, window resizes)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
// The dashboard runs on a one-second tick:
//
//  1. tickMsg fires every second
//  2. Update calls the coordinator's Tick, which enqueues refreshes for
//     stale jobs and applies any completed results
//  3. View() re-renders cards from the coordinator's registry
//
// All coordinator access happens inside Update, so the registry needs no
// locking: the background fetch worker only communicates over channels.
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in keybindings.go:
//
//	q, Ctrl+C   - Quit
//	r           - Refresh the selected job now
//	x           - Stop monitoring the selected job
//	j/k, ↑/↓    - Navigate job list
//	Enter       - Expand job detail view
//	Esc         - Collapse / go back
//	?           - Toggle help overlay
package monitor
