package events

import (
	"fmt"

	"github.com/dshills/helios/internal/event"
)

// MouseMove is produced when the pointer moves.
type MouseMove struct {
	x, y int
}

// NewMouseMove constructs a MouseMove event.
func NewMouseMove(x, y int) MouseMove {
	return MouseMove{x: x, y: y}
}

// X returns the pointer's horizontal position.
func (e MouseMove) X() int { return e.x }

// Y returns the pointer's vertical position.
func (e MouseMove) Y() int { return e.y }

// Type returns the event's type tag.
func (e MouseMove) Type() event.Type { return event.TypeMouseMove }

// Category returns the event's family bitmask.
func (e MouseMove) Category() event.Category { return event.CategoryMouse }

// Describe returns the event's description.
func (e MouseMove) Describe() string {
	return fmt.Sprintf("[Event:MouseMove]: XPos: (%d), YPos: (%d)\n", e.x, e.y)
}

// MouseScroll is produced when the scroll wheel turns. Offset is
// positive for scrolling up and negative for scrolling down.
type MouseScroll struct {
	offset int
}

// NewMouseScroll constructs a MouseScroll event.
func NewMouseScroll(offset int) MouseScroll {
	return MouseScroll{offset: offset}
}

// Offset returns the scroll amount.
func (e MouseScroll) Offset() int { return e.offset }

// Type returns the event's type tag.
func (e MouseScroll) Type() event.Type { return event.TypeMouseScroll }

// Category returns the event's family bitmask.
func (e MouseScroll) Category() event.Category { return event.CategoryMouse }

// Describe returns the event's description.
func (e MouseScroll) Describe() string {
	return fmt.Sprintf("[Event:MouseScroll]: Offset: (%d)\n", e.offset)
}

// MouseButtonClick is produced when a mouse button is pressed.
type MouseButtonClick struct {
	button int
	mods   Modifiers
}

// NewMouseButtonClick constructs a MouseButtonClick event.
func NewMouseButtonClick(button int, mods Modifiers) MouseButtonClick {
	return MouseButtonClick{button: button, mods: mods}
}

// Button returns the pressed button's id.
func (e MouseButtonClick) Button() int { return e.button }

// IsControl returns true if Control was held.
func (e MouseButtonClick) IsControl() bool { return e.mods.Control }

// IsShift returns true if Shift was held.
func (e MouseButtonClick) IsShift() bool { return e.mods.Shift }

// IsAlt returns true if Alt was held.
func (e MouseButtonClick) IsAlt() bool { return e.mods.Alt }

// Type returns the event's type tag.
func (e MouseButtonClick) Type() event.Type { return event.TypeMouseButtonClick }

// Category returns the event's family bitmask.
func (e MouseButtonClick) Category() event.Category { return event.CategoryMouseButton }

// Describe returns the event's description.
func (e MouseButtonClick) Describe() string {
	return fmt.Sprintf("[Event:MouseButtonClick]: Button: (%d), Control: (%d), Shift: (%d), Alt: (%d)\n",
		e.button, flag(e.mods.Control), flag(e.mods.Shift), flag(e.mods.Alt))
}

// MouseButtonRelease is produced when a mouse button is released.
type MouseButtonRelease struct {
	button int
	mods   Modifiers
}

// NewMouseButtonRelease constructs a MouseButtonRelease event.
func NewMouseButtonRelease(button int, mods Modifiers) MouseButtonRelease {
	return MouseButtonRelease{button: button, mods: mods}
}

// Button returns the released button's id.
func (e MouseButtonRelease) Button() int { return e.button }

// IsControl returns true if Control was held.
func (e MouseButtonRelease) IsControl() bool { return e.mods.Control }

// IsShift returns true if Shift was held.
func (e MouseButtonRelease) IsShift() bool { return e.mods.Shift }

// IsAlt returns true if Alt was held.
func (e MouseButtonRelease) IsAlt() bool { return e.mods.Alt }

// Type returns the event's type tag.
func (e MouseButtonRelease) Type() event.Type { return event.TypeMouseButtonRelease }

// Category returns the event's family bitmask.
func (e MouseButtonRelease) Category() event.Category { return event.CategoryMouseButton }

// Describe returns the event's description.
func (e MouseButtonRelease) Describe() string {
	return fmt.Sprintf("[Event:MouseButtonRelease]: Button: (%d), Control: (%d), Shift: (%d), Alt: (%d)\n",
		e.button, flag(e.mods.Control), flag(e.mods.Shift), flag(e.mods.Alt))
}
