package tree

import (
	"fmt"

	"github.com/loftwm/loft/internal/domain/entity"
)

// Attach inserts c at the tail of parent's child list (the floating list for
// floating containers) and at the tail of parent's focus order. New containers
// enter unfocused; a later Focus call moves them to the head. Attaching an
// already-attached container is a programming error and panics.
func (m *Manager) Attach(c, parent *entity.Container) {
	if c.Parent != nil {
		panic(fmt.Sprintf("tree: attach of already-attached container %s", c.ID))
	}

	c.Parent = parent
	if c.Kind == entity.KindFloating {
		parent.FloatingChildren = append(parent.FloatingChildren, c)
	} else {
		parent.Children = append(parent.Children, c)
	}
	parent.FocusOrder = append(parent.FocusOrder, c)
}

// Detach removes c from its parent's child (or floating) list and focus order
// and clears the parent link. Detaching an unattached container is a
// programming error and panics.
func (m *Manager) Detach(c *entity.Container) {
	parent := c.Parent
	if parent == nil {
		panic(fmt.Sprintf("tree: detach of unattached container %s", c.ID))
	}

	if c.Kind == entity.KindFloating {
		parent.FloatingChildren = remove(parent.FloatingChildren, c)
	} else {
		parent.Children = remove(parent.Children, c)
	}
	parent.FocusOrder = remove(parent.FocusOrder, c)
	c.Parent = nil
}

// remove splices c out of list. The container being absent means the
// children/focus bookkeeping got out of sync, which is fatal.
func remove(list []*entity.Container, c *entity.Container) []*entity.Container {
	for i, cur := range list {
		if cur == c {
			return append(list[:i], list[i+1:]...)
		}
	}
	panic(fmt.Sprintf("tree: container %s missing from parent list", c.ID))
}
