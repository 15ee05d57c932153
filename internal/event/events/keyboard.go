package events

import (
	"fmt"

	"github.com/dshills/helios/internal/event"
)

// KeyPress is produced when a key goes down. Key is the raw key code;
// for printable characters it is the character's code point.
type KeyPress struct {
	key  int
	mods Modifiers
}

// NewKeyPress constructs a KeyPress event.
func NewKeyPress(key int, mods Modifiers) KeyPress {
	return KeyPress{key: key, mods: mods}
}

// Key returns the pressed key's code.
func (e KeyPress) Key() int { return e.key }

// IsControl returns true if Control was held.
func (e KeyPress) IsControl() bool { return e.mods.Control }

// IsShift returns true if Shift was held.
func (e KeyPress) IsShift() bool { return e.mods.Shift }

// IsAlt returns true if Alt was held.
func (e KeyPress) IsAlt() bool { return e.mods.Alt }

// Type returns the event's type tag.
func (e KeyPress) Type() event.Type { return event.TypeKeyPress }

// Category returns the event's family bitmask.
func (e KeyPress) Category() event.Category { return event.CategoryKeyboard }

// Describe returns the event's description.
func (e KeyPress) Describe() string {
	return fmt.Sprintf("[Event:KeyPress]: Key: (%d), Control: (%d), Shift: (%d), Alt: (%d)\n",
		e.key, flag(e.mods.Control), flag(e.mods.Shift), flag(e.mods.Alt))
}

// KeyRelease is produced when a key comes back up.
type KeyRelease struct {
	key  int
	mods Modifiers
}

// NewKeyRelease constructs a KeyRelease event.
func NewKeyRelease(key int, mods Modifiers) KeyRelease {
	return KeyRelease{key: key, mods: mods}
}

// Key returns the released key's code.
func (e KeyRelease) Key() int { return e.key }

// IsControl returns true if Control was held.
func (e KeyRelease) IsControl() bool { return e.mods.Control }

// IsShift returns true if Shift was held.
func (e KeyRelease) IsShift() bool { return e.mods.Shift }

// IsAlt returns true if Alt was held.
func (e KeyRelease) IsAlt() bool { return e.mods.Alt }

// Type returns the event's type tag.
func (e KeyRelease) Type() event.Type { return event.TypeKeyRelease }

// Category returns the event's family bitmask.
func (e KeyRelease) Category() event.Category { return event.CategoryKeyboard }

// Describe returns the event's description.
func (e KeyRelease) Describe() string {
	return fmt.Sprintf("[Event:KeyRelease]: Key: (%d), Control: (%d), Shift: (%d), Alt: (%d)\n",
		e.key, flag(e.mods.Control), flag(e.mods.Shift), flag(e.mods.Alt))
}

// KeyType is produced when a keystroke resolves to a typed character,
// after layout and modifier translation.
type KeyType struct {
	ch rune
}

// NewKeyType constructs a KeyType event.
func NewKeyType(ch rune) KeyType {
	return KeyType{ch: ch}
}

// Char returns the typed character.
func (e KeyType) Char() rune { return e.ch }

// Type returns the event's type tag.
func (e KeyType) Type() event.Type { return event.TypeKeyType }

// Category returns the event's family bitmask.
func (e KeyType) Category() event.Category { return event.CategoryKeyboard }

// Describe returns the event's description.
func (e KeyType) Describe() string {
	return fmt.Sprintf("[Event:KeyType]: Char: (%c)\n", e.ch)
}
