// Package events defines the built-in event variants for the Helios
// event system.
//
// Variants are grouped by family:
//
//   - Window events: create, destroy, move, resize
//   - Mouse events: movement, scrolling, button click/release
//   - Keyboard events: key press, key release, typed characters
//
// Every variant is an immutable value constructed with its payload and
// carries a fixed type tag and category bitmask. Describe renders a
// deterministic one-line description naming the variant and listing its
// fields in declaration order, with boolean modifiers shown as 0 or 1:
//
//	[Event:KeyPress]: Key: (97), Control: (0), Shift: (0), Alt: (0)
//
// Variants are plain data: construction always succeeds and nothing
// mutates after it.
package events
