package tree

import (
	"github.com/loftwm/loft/internal/domain/entity"
)

// PercentAction says whether a child was just added to or removed from a
// container.
type PercentAction int

const (
	PercentAdd PercentAction = iota
	PercentRemove
)

// FixPercent rescales the percent shares of c's children after a child was
// added or removed. Call it after the topology change, so the child count is
// current. The scaling assumes the added/removed child takes an equal 1/n
// share; it is a deliberate approximation, not an exact solver. Children with
// an unset percent (<= 0) are skipped, and a container left with no children
// is a no-op.
func (m *Manager) FixPercent(c *entity.Container, action PercentAction) {
	n := len(c.Children)
	if n == 0 {
		return
	}

	var fix float64
	if action == PercentAdd {
		fix = 1.0 - 1.0/float64(n)
	} else {
		fix = 1.0 / (1.0 - 1.0/float64(n))
	}

	for _, child := range c.Children {
		if child.Percent <= 0 {
			continue
		}
		child.Percent *= fix
	}
}
