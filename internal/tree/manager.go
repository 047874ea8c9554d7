// Package tree implements the container tree: the hierarchy of outputs,
// workspaces and tiling/floating containers, and the operations that keep it
// consistent while windows are created, moved, focused and fullscreened.
//
// The manager is single-writer: the surrounding event loop serializes every
// mutation before it reaches this package. No operation blocks or suspends.
package tree

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/loftwm/loft/internal/domain/entity"
	"github.com/loftwm/loft/internal/logging"
)

// debugColors is the palette new containers are named and painted with, in
// rotation. Purely a development aid for telling frames apart on screen.
var debugColors = []string{
	"#ff0000",
	"#00FF00",
	"#0000FF",
	"#ff00ff",
	"#00ffff",
	"#ffff00",
	"#aa0000",
	"#00aa00",
	"#0000aa",
	"#aa00aa",
}

// Manager owns the container tree: the root, the flat registry of every live
// container, and the global focus pointer.
type Manager struct {
	root    *entity.Container
	cons    []*entity.Container // registration order, backs linear lookups
	focused *entity.Container

	surfaces SurfaceProvider
	urgency  UrgencyNotifier
	matcher  Matcher

	logger   zerolog.Logger
	colorIdx int
}

// NewManager creates a manager with an empty tree (a lone root container).
func NewManager(ctx context.Context, surfaces SurfaceProvider, urgency UrgencyNotifier, matcher Matcher) *Manager {
	log := logging.FromContext(ctx)

	m := &Manager{
		surfaces: surfaces,
		urgency:  urgency,
		matcher:  matcher,
		logger:   log.With().Str("component", "tree").Logger(),
	}

	m.root = &entity.Container{
		ID:   uuid.NewString(),
		Name: "root",
		Kind: entity.KindRoot,
	}
	m.register(m.root)

	return m
}

// Root returns the root container.
func (m *Manager) Root() *entity.Container {
	return m.root
}

// Focused returns the currently focused container, or nil before the first
// Focus call.
func (m *Manager) Focused() *entity.Container {
	return m.focused
}

// All returns every live container in registration order. The returned slice
// is the registry itself; callers must not mutate it.
func (m *Manager) All() []*entity.Container {
	return m.cons
}

// Create allocates a new tiling container, registers it, and paints its frame
// with the next debug color. When parent is non-nil the container is attached
// to it immediately; otherwise it stays detached until an explicit Attach.
func (m *Manager) Create(parent *entity.Container) *entity.Container {
	name := debugColors[m.colorIdx]
	m.colorIdx = (m.colorIdx + 1) % len(debugColors)

	c := &entity.Container{
		ID:   uuid.NewString(),
		Name: name,
		Kind: entity.KindTiling,
	}
	m.register(c)
	m.surfaces.SetSurfaceBackground(c.Frame, m.surfaces.ColorFromName(name))

	m.logger.Debug().
		Str("container_id", c.ID).
		Str("name", name).
		Msg("created container")

	if parent != nil {
		m.Attach(c, parent)
	}

	return c
}

// CreateOutput allocates and attaches a container for a physical display.
func (m *Manager) CreateOutput(name string) *entity.Container {
	c := &entity.Container{
		ID:   uuid.NewString(),
		Name: name,
		Kind: entity.KindOutput,
	}
	m.register(c)
	m.Attach(c, m.root)

	m.logger.Debug().Str("output", name).Msg("created output")
	return c
}

// CreateWorkspace allocates a workspace and attaches it to the given output.
func (m *Manager) CreateWorkspace(output *entity.Container, name string) *entity.Container {
	if output.Kind != entity.KindOutput {
		panic("tree: workspace parent must be an output, got " + output.Kind.String())
	}

	c := &entity.Container{
		ID:   uuid.NewString(),
		Name: name,
		Kind: entity.KindWorkspace,
	}
	m.register(c)
	m.Attach(c, output)

	m.logger.Debug().Str("workspace", name).Str("output", output.Name).Msg("created workspace")
	return c
}

// register adds the container to the flat registry and backs it with a display
// surface. A container the display server cannot back is unusable, so surface
// failure is fatal.
func (m *Manager) register(c *entity.Container) {
	frame, err := m.surfaces.CreateSurface(c)
	if err != nil {
		m.logger.Panic().Err(err).Str("container_id", c.ID).Msg("failed to create surface")
	}
	c.Frame = frame
	m.cons = append(m.cons, c)
}
