// Package entity contains domain entities representing the container tree.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "fmt"

// Kind classifies a container's role in the tree.
type Kind int

const (
	KindRoot      Kind = iota // Top of the tree, exactly one per manager
	KindOutput                // Physical display
	KindWorkspace             // Virtual desktop under an output
	KindTiling                // Regular tiling container
	KindFloating              // Container outside the tiling order
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindOutput:
		return "output"
	case KindWorkspace:
		return "workspace"
	case KindTiling:
		return "tiling"
	case KindFloating:
		return "floating"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Orientation indicates how a container splits its children.
type Orientation int

const (
	OrientationNone Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

// String returns the orientation name for logging and configuration.
func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "none"
	}
}

// FullscreenMode is the fullscreen state of a container. Only output-wide
// fullscreen exists today; the enum leaves room without defining more.
type FullscreenMode int

const (
	FullscreenNone FullscreenMode = iota
	FullscreenOutput
)

// FloatingState is the ranked floating state of a container. The order of the
// constants is meaningful: a container counts as floating from FloatingAutoOn
// upward.
type FloatingState int

const (
	FloatingOff FloatingState = iota
	FloatingUserOff
	FloatingAutoOn
	FloatingUserOn
)

// Container is a node in the layout tree: the root, an output, a workspace, or
// a tiling/floating container. Parent is a non-owning back-reference; the
// Children and FloatingChildren slices own their entries. FocusOrder is always
// a permutation of Children plus FloatingChildren, most recently focused first.
type Container struct {
	ID   string
	Name string
	Kind Kind

	Parent           *Container
	Children         []*Container
	FloatingChildren []*Container
	FocusOrder       []*Container

	// Swallows lets this container claim future windows via criteria matching.
	Swallows []Criterion

	// Window is set on leaf-like containers only. Frame is the display-surface
	// handle, assigned when the container is registered.
	Window *Window
	Frame  FrameID

	Orientation Orientation

	// Percent is the proportional size share among siblings; values <= 0 mean
	// "unset".
	Percent float64

	Fullscreen    FullscreenMode
	FloatingState FloatingState
	Urgent        bool
}

// IsLeaf returns true when the container has no tiling children.
func (c *Container) IsLeaf() bool {
	return len(c.Children) == 0
}

// AcceptsWindow reports whether a window may be assigned to this container.
// Workspaces never take direct windows, split containers delegate to their
// children, and an occupied container is full.
func (c *Container) AcceptsWindow() bool {
	if c.Kind == KindWorkspace {
		return false
	}
	if c.Orientation != OrientationNone {
		return false
	}
	return c.Window == nil
}

// IsFloating returns true when the container's floating state ranks at or
// above FloatingAutoOn.
func (c *Container) IsFloating() bool {
	return c.FloatingState >= FloatingAutoOn
}

// Output returns the output this container is on. Every attached non-root
// container descends from an output; a missing one is a broken tree and
// panics.
func (c *Container) Output() *Container {
	result := c
	for result != nil && result.Kind != KindOutput {
		result = result.Parent
	}
	if result == nil {
		panic(fmt.Sprintf("container %s (%s) has no output ancestor", c.ID, c.Name))
	}
	return result
}

// Workspace returns the workspace this container is on. Panics when the
// container does not descend from a workspace, which can only happen on a
// malformed tree.
func (c *Container) Workspace() *Container {
	result := c
	for result != nil && result.Kind != KindWorkspace {
		result = result.Parent
	}
	if result == nil {
		panic(fmt.Sprintf("container %s (%s) has no workspace ancestor", c.ID, c.Name))
	}
	return result
}
