package event

import "fmt"

// Type identifies which concrete variant an event value is.
type Type uint8

const (
	// TypeNone represents no event type.
	TypeNone Type = iota

	// Window events
	TypeWindowCreate
	TypeWindowDestroy
	TypeWindowMove
	TypeWindowResize

	// Mouse events
	TypeMouseMove
	TypeMouseScroll
	TypeMouseButtonClick
	TypeMouseButtonRelease

	// Keyboard events
	TypeKeyPress
	TypeKeyRelease
	TypeKeyType
)

// String returns a human-readable name for the type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeWindowCreate:
		return "WindowCreate"
	case TypeWindowDestroy:
		return "WindowDestroy"
	case TypeWindowMove:
		return "WindowMove"
	case TypeWindowResize:
		return "WindowResize"
	case TypeMouseMove:
		return "MouseMove"
	case TypeMouseScroll:
		return "MouseScroll"
	case TypeMouseButtonClick:
		return "MouseButtonClick"
	case TypeMouseButtonRelease:
		return "MouseButtonRelease"
	case TypeKeyPress:
		return "KeyPress"
	case TypeKeyRelease:
		return "KeyRelease"
	case TypeKeyType:
		return "KeyType"
	default:
		return fmt.Sprintf("Type(%d)", t)
	}
}

// Category groups event variants into families. It is advisory
// metadata only; dispatch never filters on it.
type Category uint8

// CategoryNone represents no category.
const CategoryNone Category = 0

const (
	// CategoryWindow covers window lifecycle and geometry events.
	CategoryWindow Category = 1 << iota

	// CategoryMouse covers mouse movement and scrolling.
	CategoryMouse

	// CategoryMouseButton covers mouse button presses and releases.
	CategoryMouseButton

	// CategoryKeyboard covers key presses, releases, and typed text.
	CategoryKeyboard
)

// Has returns true if every bit of c2 is set in c.
func (c Category) Has(c2 Category) bool {
	return c&c2 == c2
}

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "None"
	case CategoryWindow:
		return "Window"
	case CategoryMouse:
		return "Mouse"
	case CategoryMouseButton:
		return "MouseButton"
	case CategoryKeyboard:
		return "Keyboard"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}
