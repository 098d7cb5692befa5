package core

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateInstanceID = errors.New("duplicate instanceId in page")
	ErrComponentCycle      = errors.New("component parent chain forms a cycle")
)

// PageIndex is an arena of components keyed by instance id. Children
// remain owned by their parents; the index only holds lookup references.
type PageIndex struct {
	byID    map[string]*ComponentInstance
	parents map[string]string
	order   []string
}

// BuildPageIndex walks the component forest depth-first and indexes every
// node. Duplicate ids and parent cycles violate the tree invariants and
// fail the whole run; a dangling parentId is recorded as a diagnostic and
// the reference is ignored.
func BuildPageIndex(page *PageDefinition, diags *Diagnostics) (*PageIndex, error) {
	idx := &PageIndex{
		byID:    make(map[string]*ComponentInstance),
		parents: make(map[string]string),
	}

	var walk func(c *ComponentInstance, parentID string) error
	walk = func(c *ComponentInstance, parentID string) error {
		if c.InstanceID == "" {
			diags.Warnf("", "component of kind %q has no instanceId, skipping index entry", c.ComponentID)
		} else {
			if _, exists := idx.byID[c.InstanceID]; exists {
				return fmt.Errorf("%w: %s", ErrDuplicateInstanceID, c.InstanceID)
			}
			idx.byID[c.InstanceID] = c
			idx.parents[c.InstanceID] = parentID
			idx.order = append(idx.order, c.InstanceID)
		}
		for _, child := range c.Children {
			if err := walk(child, c.InstanceID); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range page.Components {
		if err := walk(root, ""); err != nil {
			return nil, err
		}
	}

	if err := idx.checkParentRefs(diags); err != nil {
		return nil, err
	}

	return idx, nil
}

// checkParentRefs verifies the declared parentId back-references against
// the actual ownership structure. Declared ids that point nowhere are
// recoverable; a declared chain that loops is not.
func (idx *PageIndex) checkParentRefs(diags *Diagnostics) error {
	for _, id := range idx.order {
		c := idx.byID[id]
		if c.ParentID == "" {
			continue
		}
		if _, ok := idx.byID[c.ParentID]; !ok {
			diags.Warnf(id, "parentId %q does not reference a known component, ignoring", c.ParentID)
			continue
		}

		seen := map[string]bool{id: true}
		cursor := c.ParentID
		for cursor != "" {
			if seen[cursor] {
				return fmt.Errorf("%w: starting at %s", ErrComponentCycle, id)
			}
			seen[cursor] = true
			next, ok := idx.byID[cursor]
			if !ok {
				break
			}
			cursor = next.ParentID
		}
	}
	return nil
}

func (idx *PageIndex) Get(id string) (*ComponentInstance, bool) {
	c, ok := idx.byID[id]
	return c, ok
}

func (idx *PageIndex) Len() int { return len(idx.order) }

// Order returns instance ids in depth-first pre-order.
func (idx *PageIndex) Order() []string { return idx.order }

// ParentOf returns the owning parent's id, or "" for roots.
func (idx *PageIndex) ParentOf(id string) string { return idx.parents[id] }
