package core

import (
	"errors"
	"testing"
)

func testPage(components ...*ComponentInstance) *PageDefinition {
	return &PageDefinition{PageName: "Test", Components: components}
}

func TestBuildPageIndexWalksDepthFirst(t *testing.T) {
	page := testPage(&ComponentInstance{
		InstanceID:  "root",
		ComponentID: "container",
		Children: []*ComponentInstance{
			{InstanceID: "a", ComponentID: "text", ParentID: "root"},
			{InstanceID: "b", ComponentID: "text", ParentID: "root"},
		},
	})

	diags := NewDiagnostics()
	idx, err := BuildPageIndex(page, diags)
	if err != nil {
		t.Fatalf("BuildPageIndex failed: %v", err)
	}

	expected := []string{"root", "a", "b"}
	order := idx.Order()
	if len(order) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(order))
	}
	for i, id := range expected {
		if order[i] != id {
			t.Errorf("Expected order[%d]=%s, got %s", i, id, order[i])
		}
	}

	if idx.ParentOf("a") != "root" {
		t.Errorf("Expected parent of a to be root, got %q", idx.ParentOf("a"))
	}
}

func TestBuildPageIndexRejectsDuplicateIDs(t *testing.T) {
	page := testPage(
		&ComponentInstance{InstanceID: "dup", ComponentID: "text"},
		&ComponentInstance{InstanceID: "dup", ComponentID: "button"},
	)

	_, err := BuildPageIndex(page, NewDiagnostics())
	if !errors.Is(err, ErrDuplicateInstanceID) {
		t.Errorf("Expected ErrDuplicateInstanceID, got %v", err)
	}
}

func TestBuildPageIndexRejectsParentCycle(t *testing.T) {
	page := testPage(
		&ComponentInstance{InstanceID: "x", ComponentID: "container", ParentID: "y"},
		&ComponentInstance{InstanceID: "y", ComponentID: "container", ParentID: "x"},
	)

	_, err := BuildPageIndex(page, NewDiagnostics())
	if !errors.Is(err, ErrComponentCycle) {
		t.Errorf("Expected ErrComponentCycle, got %v", err)
	}
}

func TestBuildPageIndexToleratesDanglingParent(t *testing.T) {
	page := testPage(&ComponentInstance{InstanceID: "orphan", ComponentID: "text", ParentID: "ghost"})

	diags := NewDiagnostics()
	idx, err := BuildPageIndex(page, diags)
	if err != nil {
		t.Fatalf("Expected dangling parent to be recoverable, got %v", err)
	}
	if idx.Len() != 1 {
		t.Errorf("Expected 1 indexed component, got %d", idx.Len())
	}
	if !diags.HasWarnings() {
		t.Error("Expected a diagnostic for the dangling parentId")
	}
}
