package tree

import "github.com/loftwm/loft/internal/domain/entity"

// SurfaceProvider creates and updates the display surfaces backing containers.
// The real display-server plumbing lives behind this interface; the tree only
// cares about handles.
type SurfaceProvider interface {
	// CreateSurface allocates a display surface for the container and returns
	// its frame handle.
	CreateSurface(c *entity.Container) (entity.FrameID, error)
	// SetSurfaceBackground paints the surface with the given pixel value.
	SetSurfaceBackground(frame entity.FrameID, pixel uint32)
	// PushExtendedState replaces the advertised window states with the given
	// set. Pushing the same set twice is a no-op for the client.
	PushExtendedState(win *entity.Window, states []entity.ExtendedState) error
	// ColorFromName resolves a color name to a pixel value.
	ColorFromName(name string) uint32
}

// UrgencyNotifier recomputes a workspace's urgency flag after one of its
// containers stops being urgent.
type UrgencyNotifier interface {
	RecomputeUrgency(workspace *entity.Container)
}

// Matcher decides whether a swallow criterion claims a window.
type Matcher interface {
	Matches(criterion entity.Criterion, win *entity.Window) bool
}
