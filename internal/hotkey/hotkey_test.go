package hotkey

import (
	"strings"
	"testing"
)

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()
	if b.Scroll != KeyDown {
		t.Fatalf("scroll key = %q, want %q", b.Scroll, KeyDown)
	}
	if b.Quit.Modifier != KeyCtrl || b.Quit.Key != KeyEscape {
		t.Fatalf("quit combo = %+v", b.Quit)
	}
}

func TestComboString(t *testing.T) {
	got := Combo{Modifier: KeyCtrl, Key: KeyEscape}.String()
	if !strings.HasSuffix(got, "+Esc") {
		t.Fatalf("combo string = %q", got)
	}
	if !strings.HasPrefix(got, modifierLabel) {
		t.Fatalf("combo string %q should start with %q", got, modifierLabel)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyDown, "↓"},
		{KeyEscape, "Esc"},
		{KeyUnknown, "?"},
		{Key("f13"), "f13"},
	}
	for _, tt := range tests {
		if got := Label(tt.key); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if Press.String() != "press" || Release.String() != "release" {
		t.Fatalf("unexpected kind names: %s %s", Press, Release)
	}
	if Kind(7).String() != "kind(7)" {
		t.Fatalf("unexpected unknown kind name: %s", Kind(7))
	}
}
