// Package tui is the terminal dashboard of microengineer.
//
// The dashboard is a Bubble Tea program split Model-View-Controller style:
//
//   - model: dashboard state, key bindings and messages
//   - view: renders the main window, popped-out panels and the log pane
//   - controller: routes messages, runs the refresh tick and edit actions
//
// Shared building blocks live in components (bordered panels, status bar),
// design (colors and styles) and utils (width-aware string helpers).
//
// # Refresh Tick
//
// Every refresh interval the controller advances a simulated source, takes a
// telemetry snapshot and refreshes the entries of the panels active in the
// current presentation context. Only the entries that are shown are
// refreshed. Missing data renders as a placeholder and is never logged.
//
// # Edit Mode
//
// Edit mode operates on the focused panel: entries can be added by category,
// removed and reordered, and custom panels can be created, renamed or
// deleted. Layout changes are written to the layout file on exit.
package tui
