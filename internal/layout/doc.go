// Package layout groups entries into panels and owns the single entry table
// those panels reference.
//
// Panels hold entry names, never entries, so a name appearing in several
// panels always resolves to the same *entry.Entry. Each panel keeps an
// active flag, a popped-out flag and a rectangle per presentation context
// (flight, map, editor).
//
// A Layout is not safe for concurrent use. The dashboard drives it from one
// goroutine: Refresh once per tick, then render, then apply edits from input.
package layout
