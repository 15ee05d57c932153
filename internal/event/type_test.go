package event

import "testing"

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeNone, "None"},
		{TypeWindowCreate, "WindowCreate"},
		{TypeWindowDestroy, "WindowDestroy"},
		{TypeWindowMove, "WindowMove"},
		{TypeWindowResize, "WindowResize"},
		{TypeMouseMove, "MouseMove"},
		{TypeMouseScroll, "MouseScroll"},
		{TypeMouseButtonClick, "MouseButtonClick"},
		{TypeMouseButtonRelease, "MouseButtonRelease"},
		{TypeKeyPress, "KeyPress"},
		{TypeKeyRelease, "KeyRelease"},
		{TypeKeyType, "KeyType"},
		{Type(200), "Type(200)"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestType_Distinct(t *testing.T) {
	all := []Type{
		TypeNone,
		TypeWindowCreate, TypeWindowDestroy, TypeWindowMove, TypeWindowResize,
		TypeMouseMove, TypeMouseScroll, TypeMouseButtonClick, TypeMouseButtonRelease,
		TypeKeyPress, TypeKeyRelease, TypeKeyType,
	}

	seen := make(map[Type]bool)
	for _, typ := range all {
		if seen[typ] {
			t.Errorf("duplicate type tag value %d", typ)
		}
		seen[typ] = true
	}
}

func TestCategory_Bits(t *testing.T) {
	cats := []Category{CategoryWindow, CategoryMouse, CategoryMouseButton, CategoryKeyboard}

	for i, a := range cats {
		for j, b := range cats {
			if i == j {
				continue
			}
			if a&b != 0 {
				t.Errorf("categories %s and %s share bits", a, b)
			}
		}
	}
}

func TestCategory_Has(t *testing.T) {
	combined := CategoryMouse | CategoryMouseButton

	if !combined.Has(CategoryMouse) {
		t.Error("expected combined mask to include Mouse")
	}
	if !combined.Has(CategoryMouseButton) {
		t.Error("expected combined mask to include MouseButton")
	}
	if combined.Has(CategoryKeyboard) {
		t.Error("combined mask must not include Keyboard")
	}
	if CategoryNone.Has(CategoryWindow) {
		t.Error("CategoryNone must not include Window")
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryNone, "None"},
		{CategoryWindow, "Window"},
		{CategoryMouse, "Mouse"},
		{CategoryMouseButton, "MouseButton"},
		{CategoryKeyboard, "Keyboard"},
	}

	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}
