// Package urgency recomputes workspace urgency hints.
package urgency

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/loftwm/loft/internal/domain/entity"
	"github.com/loftwm/loft/internal/logging"
)

// Recomputer derives a workspace's urgent flag from its containers: the
// workspace is urgent while any container below it is.
type Recomputer struct {
	logger zerolog.Logger
}

// NewRecomputer creates a workspace urgency recomputer.
func NewRecomputer(ctx context.Context) *Recomputer {
	log := logging.FromContext(ctx)
	return &Recomputer{logger: log.With().Str("component", "urgency").Logger()}
}

// RecomputeUrgency implements tree.UrgencyNotifier.
func (r *Recomputer) RecomputeUrgency(workspace *entity.Container) {
	urgent := anyUrgent(workspace)
	if workspace.Urgent == urgent {
		return
	}
	workspace.Urgent = urgent
	r.logger.Debug().
		Str("workspace", workspace.Name).
		Bool("urgent", urgent).
		Msg("workspace urgency changed")
}

func anyUrgent(c *entity.Container) bool {
	for _, child := range c.Children {
		if child.Urgent || anyUrgent(child) {
			return true
		}
	}
	for _, child := range c.FloatingChildren {
		if child.Urgent || anyUrgent(child) {
			return true
		}
	}
	return false
}
