// Package render provides an in-memory surface provider. It allocates frame
// handles and records backgrounds and extended window states without talking
// to a display server, which is all the tree core and its consumers need in
// this repository.
package render

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/loftwm/loft/internal/domain/entity"
	"github.com/loftwm/loft/internal/logging"
)

// Memory implements tree.SurfaceProvider. Like the tree itself it is
// single-writer; callers serialize access.
type Memory struct {
	nextFrame   entity.FrameID
	backgrounds map[entity.FrameID]uint32
	states      map[entity.WindowID][]entity.ExtendedState
	logger      zerolog.Logger
}

// NewMemory creates an empty in-memory surface provider.
func NewMemory(ctx context.Context) *Memory {
	log := logging.FromContext(ctx)

	return &Memory{
		backgrounds: make(map[entity.FrameID]uint32),
		states:      make(map[entity.WindowID][]entity.ExtendedState),
		logger:      log.With().Str("component", "render").Logger(),
	}
}

// CreateSurface allocates the next frame handle for the container.
func (p *Memory) CreateSurface(c *entity.Container) (entity.FrameID, error) {
	p.nextFrame++
	p.logger.Trace().
		Str("container_id", c.ID).
		Uint32("frame", uint32(p.nextFrame)).
		Msg("created surface")
	return p.nextFrame, nil
}

// SetSurfaceBackground records the background pixel for a frame.
func (p *Memory) SetSurfaceBackground(frame entity.FrameID, pixel uint32) {
	p.backgrounds[frame] = pixel
}

// PushExtendedState replaces the recorded state set for the window. Replaying
// the same set is harmless.
func (p *Memory) PushExtendedState(win *entity.Window, states []entity.ExtendedState) error {
	if win == nil {
		return fmt.Errorf("render: push extended state for nil window")
	}
	p.states[win.ID] = append([]entity.ExtendedState(nil), states...)
	return nil
}

// ColorFromName resolves a "#rrggbb" color to its pixel value. Unparseable
// names resolve to black, logged at warn.
func (p *Memory) ColorFromName(name string) uint32 {
	hex := strings.TrimPrefix(name, "#")
	if len(hex) != 6 {
		p.logger.Warn().Str("color", name).Msg("unparseable color name")
		return 0
	}
	pixel, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		p.logger.Warn().Str("color", name).Msg("unparseable color name")
		return 0
	}
	return uint32(pixel)
}

// Background returns the recorded background pixel for a frame.
func (p *Memory) Background(frame entity.FrameID) (uint32, bool) {
	pixel, ok := p.backgrounds[frame]
	return pixel, ok
}

// States returns the last pushed state set for a window.
func (p *Memory) States(id entity.WindowID) []entity.ExtendedState {
	return p.states[id]
}
