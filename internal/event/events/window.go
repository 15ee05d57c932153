package events

import (
	"fmt"

	"github.com/dshills/helios/internal/event"
)

// WindowCreate is produced when a window is created. ShowMode carries
// the initial presentation (fullscreen, minimized, maximized, ...) as
// reported by the windowing layer.
type WindowCreate struct {
	showMode int
}

// NewWindowCreate constructs a WindowCreate event.
func NewWindowCreate(showMode int) WindowCreate {
	return WindowCreate{showMode: showMode}
}

// ShowMode returns the window's initial presentation mode.
func (e WindowCreate) ShowMode() int { return e.showMode }

// Type returns the event's type tag.
func (e WindowCreate) Type() event.Type { return event.TypeWindowCreate }

// Category returns the event's family bitmask.
func (e WindowCreate) Category() event.Category { return event.CategoryWindow }

// Describe returns the event's description.
func (e WindowCreate) Describe() string {
	return fmt.Sprintf("[Event:WindowCreate]: ShowMode: (%d)\n", e.showMode)
}

// WindowDestroy is produced when a window is destroyed. It carries no
// payload.
type WindowDestroy struct{}

// NewWindowDestroy constructs a WindowDestroy event.
func NewWindowDestroy() WindowDestroy {
	return WindowDestroy{}
}

// Type returns the event's type tag.
func (e WindowDestroy) Type() event.Type { return event.TypeWindowDestroy }

// Category returns the event's family bitmask.
func (e WindowDestroy) Category() event.Category { return event.CategoryWindow }

// Describe returns the event's description.
func (e WindowDestroy) Describe() string {
	return "[Event:WindowDestroy]\n"
}

// WindowMove is produced when a window moves to a new position.
type WindowMove struct {
	x, y int
}

// NewWindowMove constructs a WindowMove event.
func NewWindowMove(x, y int) WindowMove {
	return WindowMove{x: x, y: y}
}

// X returns the window's new horizontal position.
func (e WindowMove) X() int { return e.x }

// Y returns the window's new vertical position.
func (e WindowMove) Y() int { return e.y }

// Type returns the event's type tag.
func (e WindowMove) Type() event.Type { return event.TypeWindowMove }

// Category returns the event's family bitmask.
func (e WindowMove) Category() event.Category { return event.CategoryWindow }

// Describe returns the event's description.
func (e WindowMove) Describe() string {
	return fmt.Sprintf("[Event:WindowMove]: XPos: (%d), YPos: (%d)\n", e.x, e.y)
}

// WindowResize is produced when a window's dimensions change.
type WindowResize struct {
	width, height int
}

// NewWindowResize constructs a WindowResize event.
func NewWindowResize(width, height int) WindowResize {
	return WindowResize{width: width, height: height}
}

// Width returns the window's new width.
func (e WindowResize) Width() int { return e.width }

// Height returns the window's new height.
func (e WindowResize) Height() int { return e.height }

// Type returns the event's type tag.
func (e WindowResize) Type() event.Type { return event.TypeWindowResize }

// Category returns the event's family bitmask.
func (e WindowResize) Category() event.Category { return event.CategoryWindow }

// Describe returns the event's description.
func (e WindowResize) Describe() string {
	return fmt.Sprintf("[Event:WindowResize]: Width: (%d), Height: (%d)\n", e.width, e.height)
}
