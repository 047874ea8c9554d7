// Package match provides the default swallow-criterion matcher.
package match

import "github.com/loftwm/loft/internal/domain/entity"

// Fields matches criteria by exact per-field comparison. Empty string fields
// and a zero window ID are wildcards. A fully empty criterion matches nothing,
// so a forgotten rule never swallows every window.
type Fields struct{}

// Matches implements tree.Matcher.
func (Fields) Matches(criterion entity.Criterion, win *entity.Window) bool {
	if win == nil {
		return false
	}
	if criterion == (entity.Criterion{}) {
		return false
	}

	if criterion.Class != "" && criterion.Class != win.Class {
		return false
	}
	if criterion.Instance != "" && criterion.Instance != win.Instance {
		return false
	}
	if criterion.Title != "" && criterion.Title != win.Title {
		return false
	}
	if criterion.Window != 0 && criterion.Window != win.ID {
		return false
	}
	return true
}
