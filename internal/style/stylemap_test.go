package style

import (
	"testing"
)

func TestStyleMapKeepsInsertionOrder(t *testing.T) {
	m := NewStyleMap()
	m.Set("display", "flex")
	m.Set("gap", "8px")
	m.Set("padding", "16px")

	// Overriding a property keeps its original position.
	m.Set("gap", "12px")

	want := []string{"display", "gap", "padding"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("Expected %d keys, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected key %d to be %s, got %s", i, want[i], got[i])
		}
	}

	if inline := m.Inline(); inline != "display: flex; gap: 12px; padding: 16px" {
		t.Errorf("Expected override in place, got %q", inline)
	}
}

func TestStyleMapDelete(t *testing.T) {
	m := NewStyleMap()
	m.Set("display", "flex")
	m.Set("gap", "8px")
	m.Delete("display")

	if m.Has("display") {
		t.Error("Expected display removed")
	}
	if got := m.Keys(); len(got) != 1 || got[0] != "gap" {
		t.Errorf("Expected only gap to remain, got %v", got)
	}
	if m.Len() != 1 {
		t.Errorf("Expected length 1, got %d", m.Len())
	}
}
