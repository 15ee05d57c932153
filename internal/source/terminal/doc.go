// Package terminal feeds a Helios event system from a terminal.
//
// A Source owns a tcell screen and translates the terminal's raw input
// into Helios event variants: key input becomes KeyPress (plus KeyType
// for printable characters), mouse input becomes MouseMove, MouseScroll,
// MouseButtonClick and MouseButtonRelease, and terminal resizes become
// WindowResize. Init and Shutdown bracket the screen's lifetime with
// WindowCreate and WindowDestroy.
//
// Translation keeps a little state between polls: the previous button
// mask distinguishes presses from releases, and the previous pointer
// position suppresses duplicate move events.
//
// Terminals do not report key releases, so KeyRelease is never produced
// by this source.
package terminal
