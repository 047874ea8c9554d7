package tree

import (
	"github.com/loftwm/loft/internal/domain/entity"
)

// ToggleFullscreen flips c's fullscreen mode. Entering fullscreen is refused
// (silently, logged at debug) while another container in the same workspace
// holds it; leaving fullscreen is always permitted. If c carries a window, the
// resulting state set is pushed to the display server after the local
// transition has committed; a failed push is logged and not rolled back.
func (m *Manager) ToggleFullscreen(c *entity.Container) {
	if c.Fullscreen == entity.FullscreenNone {
		workspace := c.Workspace()
		if holder := m.FindFullscreenDescendant(workspace); holder != nil {
			m.logger.Debug().
				Str("container_id", c.ID).
				Str("holder", holder.Name).
				Str("workspace", workspace.Name).
				Msg("not entering fullscreen, workspace already has a fullscreen container")
			return
		}
		c.Fullscreen = entity.FullscreenOutput
	} else {
		c.Fullscreen = entity.FullscreenNone
	}

	m.logger.Debug().
		Str("container_id", c.ID).
		Bool("fullscreen", c.Fullscreen != entity.FullscreenNone).
		Msg("toggled fullscreen")

	if c.Window == nil {
		return
	}

	states := []entity.ExtendedState{}
	if c.Fullscreen != entity.FullscreenNone {
		states = append(states, entity.ExtendedStateFullscreen)
	}
	if err := m.surfaces.PushExtendedState(c.Window, states); err != nil {
		m.logger.Warn().Err(err).
			Uint32("window", uint32(c.Window.ID)).
			Msg("failed to push extended window state")
	}
}

// FindFullscreenDescendant returns the first fullscreen container below root
// in breadth-first order, or nil if there is none. The search origin itself is
// never a match. The FIFO frontier makes the result the earliest match in
// level order, ties broken by child-list order within a level.
func (m *Manager) FindFullscreenDescendant(root *entity.Container) *entity.Container {
	queue := []*entity.Container{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current != root && current.Fullscreen != entity.FullscreenNone {
			return current
		}
		queue = append(queue, current.Children...)
	}
	return nil
}
