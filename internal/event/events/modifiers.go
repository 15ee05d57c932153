package events

// Modifiers records which modifier keys were held when a keyboard or
// mouse-button event occurred.
type Modifiers struct {
	Control bool
	Shift   bool
	Alt     bool
}

// flag renders a modifier the way descriptions expect: 1 when held,
// 0 otherwise.
func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
