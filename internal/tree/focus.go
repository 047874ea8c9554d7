package tree

import (
	"github.com/loftwm/loft/internal/domain/entity"
)

// Focus makes c the globally focused container. At every ancestor level below
// the root, the child on the path to c moves to the head of its parent's focus
// order, so walking focus-order heads from the root always reaches c. The walk
// is iterative to keep stack use flat on deep trees. Focusing the root or a
// detached container is a programming error and panics.
func (m *Manager) Focus(c *entity.Container) {
	if c.Parent == nil {
		panic("tree: focus on root or detached container")
	}

	for cur := c; cur.Parent != nil; cur = cur.Parent {
		moveToFocusHead(cur.Parent, cur)
	}

	m.focused = c
	m.logger.Debug().
		Str("container_id", c.ID).
		Str("name", c.Name).
		Msg("focused container")

	if c.Urgent {
		c.Urgent = false
		m.urgency.RecomputeUrgency(c.Workspace())
	}
}

// moveToFocusHead reorders child to the front of parent's focus order.
func moveToFocusHead(parent, child *entity.Container) {
	order := remove(parent.FocusOrder, child)
	order = append(order, nil)
	copy(order[1:], order)
	order[0] = child
	parent.FocusOrder = order
}
