package tree

import (
	"github.com/loftwm/loft/internal/domain/entity"
)

// ByWindowID returns the container holding the window with the given ID, or
// nil when no container holds it. At most one container matches by
// construction.
func (m *Manager) ByWindowID(id entity.WindowID) *entity.Container {
	for _, c := range m.cons {
		if c.Window != nil && c.Window.ID == id {
			return c
		}
	}
	return nil
}

// ByFrameID returns the container whose display surface has the given frame
// handle, or nil when the handle is unknown.
func (m *Manager) ByFrameID(id entity.FrameID) *entity.Container {
	for _, c := range m.cons {
		if c.Frame == id {
			return c
		}
	}
	return nil
}

// ResolveForWindow returns the first container that wants to swallow the
// window, along with the criterion that claimed it. Containers are scanned in
// registration order and each container's criteria in list order; this
// first-match policy is the entire priority scheme, intentionally, with no
// weighting on top. Returns (nil, nil) when nothing claims the window.
func (m *Manager) ResolveForWindow(win *entity.Window) (*entity.Container, *entity.Criterion) {
	for _, c := range m.cons {
		for i := range c.Swallows {
			if m.matcher.Matches(c.Swallows[i], win) {
				return c, &c.Swallows[i]
			}
		}
	}
	return nil, nil
}
