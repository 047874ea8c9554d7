package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loftwm/loft/internal/domain/entity"
)

func TestFindFullscreenDescendant_BreadthFirstOrder(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	// ws -> [b, c]; b -> [d, e]. E is fullscreen; BFS visits b, c before d, e.
	b := env.mgr.Create(ws)
	c := env.mgr.Create(ws)
	d := env.mgr.Create(b)
	e := env.mgr.Create(b)

	e.Fullscreen = entity.FullscreenOutput

	got := env.mgr.FindFullscreenDescendant(ws)
	require.Equal(t, e, got)
	assert.Equal(t, entity.FullscreenNone, c.Fullscreen)
	assert.Equal(t, entity.FullscreenNone, d.Fullscreen)
}

func TestFindFullscreenDescendant_LevelOrderTieBreak(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	b := env.mgr.Create(ws)
	c := env.mgr.Create(ws)
	deep := env.mgr.Create(b)

	// A shallow match wins over a deeper one even when the deep container
	// comes first in depth-first order.
	deep.Fullscreen = entity.FullscreenOutput
	c.Fullscreen = entity.FullscreenOutput

	assert.Equal(t, c, env.mgr.FindFullscreenDescendant(ws))
}

func TestFindFullscreenDescendant_OriginExcluded(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	c := env.mgr.Create(ws)
	c.Fullscreen = entity.FullscreenOutput

	assert.Nil(t, env.mgr.FindFullscreenDescendant(c),
		"the search origin itself is never a match")
}

func TestFindFullscreenDescendant_NoMatch(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	env.mgr.Create(ws)
	env.mgr.Create(ws)

	assert.Nil(t, env.mgr.FindFullscreenDescendant(ws))
}

func TestToggleFullscreen_Enters(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	c := env.mgr.Create(ws)
	env.mgr.ToggleFullscreen(c)

	assert.Equal(t, entity.FullscreenOutput, c.Fullscreen)
}

func TestToggleFullscreen_RejectedWhileWorkspaceHasHolder(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	holder := env.mgr.Create(ws)
	sibling := env.mgr.Create(ws)
	holder.Fullscreen = entity.FullscreenOutput

	env.mgr.ToggleFullscreen(sibling)

	assert.Equal(t, entity.FullscreenNone, sibling.Fullscreen)
	assert.Equal(t, entity.FullscreenOutput, holder.Fullscreen)
}

func TestToggleFullscreen_OtherWorkspaceUnaffected(t *testing.T) {
	env := newTestEnv(t)
	output, ws1 := env.newBasicTree(t)
	ws2 := env.mgr.CreateWorkspace(output, "2")

	holder := env.mgr.Create(ws1)
	holder.Fullscreen = entity.FullscreenOutput

	other := env.mgr.Create(ws2)
	env.mgr.ToggleFullscreen(other)

	assert.Equal(t, entity.FullscreenOutput, other.Fullscreen,
		"a holder on another workspace does not block")
}

func TestToggleFullscreen_ExitAlwaysAllowed(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	c := env.mgr.Create(ws)
	c.Fullscreen = entity.FullscreenOutput

	env.mgr.ToggleFullscreen(c)

	assert.Equal(t, entity.FullscreenNone, c.Fullscreen)
}

func TestToggleFullscreen_PushesWindowState(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	c := env.mgr.Create(ws)
	c.Window = &entity.Window{ID: 7, Class: "mpv"}

	env.mgr.ToggleFullscreen(c)
	require.Equal(t, []entity.ExtendedState{entity.ExtendedStateFullscreen}, env.surfaces.pushed[7])

	env.mgr.ToggleFullscreen(c)
	states, ok := env.surfaces.pushed[7]
	require.True(t, ok, "leaving fullscreen pushes the empty set")
	require.Empty(t, states)
}

func TestToggleFullscreen_NoWindowNoPush(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	env.mgr.ToggleFullscreen(env.mgr.Create(ws))

	assert.Empty(t, env.surfaces.pushed)
}

func TestToggleFullscreen_PushFailureKeepsLocalState(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	c := env.mgr.Create(ws)
	c.Window = &entity.Window{ID: 9}
	env.surfaces.pushErr = errors.New("display gone")

	env.mgr.ToggleFullscreen(c)

	assert.Equal(t, entity.FullscreenOutput, c.Fullscreen,
		"the local transition commits before the push")
}
