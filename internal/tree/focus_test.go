package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loftwm/loft/internal/domain/entity"
)

// focusPath walks focus-order heads from root and returns the container the
// walk ends on.
func focusPath(root *entity.Container) *entity.Container {
	cur := root
	for len(cur.FocusOrder) > 0 {
		cur = cur.FocusOrder[0]
	}
	return cur
}

func TestFocus_SetsGlobalPointer(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	c := env.mgr.Create(ws)
	env.mgr.Focus(c)

	assert.Equal(t, c, env.mgr.Focused())
}

func TestFocus_HeadWalkFromRootReachesFocused(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	a := env.mgr.Create(ws)
	b := env.mgr.Create(ws)
	inner := env.mgr.Create(b)
	deep := env.mgr.Create(inner)

	env.mgr.Focus(deep)
	require.Equal(t, deep, focusPath(env.mgr.Root()))

	env.mgr.Focus(a)
	require.Equal(t, a, focusPath(env.mgr.Root()))

	// Refocusing the deep container restores the full path.
	env.mgr.Focus(deep)
	require.Equal(t, deep, focusPath(env.mgr.Root()))
	requireTreeInvariants(t, env.mgr)
}

func TestFocus_ReordersOnlyAncestryPath(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	a := env.mgr.Create(ws)
	b := env.mgr.Create(ws)
	b1 := env.mgr.Create(b)
	b2 := env.mgr.Create(b)

	env.mgr.Focus(b2)

	assert.Equal(t, []*entity.Container{b, a}, ws.FocusOrder)
	assert.Equal(t, []*entity.Container{b2, b1}, b.FocusOrder)
	// Child order is untouched by focus.
	assert.Equal(t, []*entity.Container{a, b}, ws.Children)
	assert.Equal(t, []*entity.Container{b1, b2}, b.Children)
}

func TestFocus_OnRootPanics(t *testing.T) {
	env := newTestEnv(t)
	assert.Panics(t, func() { env.mgr.Focus(env.mgr.Root()) })
}

func TestFocus_OnDetachedPanics(t *testing.T) {
	env := newTestEnv(t)
	c := env.mgr.Create(nil)
	assert.Panics(t, func() { env.mgr.Focus(c) })
}

func TestFocus_ClearsUrgentAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	c := env.mgr.Create(ws)
	c.Urgent = true

	env.mgr.Focus(c)

	assert.False(t, c.Urgent)
	require.Len(t, env.urgency.workspaces, 1)
	assert.Equal(t, ws, env.urgency.workspaces[0])
}

func TestFocus_NonUrgentDoesNotNotify(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	env.mgr.Focus(env.mgr.Create(ws))

	assert.Empty(t, env.urgency.workspaces)
}

func TestFocus_DeepTree(t *testing.T) {
	env := newTestEnv(t)
	_, ws := env.newBasicTree(t)

	// A long chain exercises the iterative ancestor walk.
	parent := ws
	var leaf *entity.Container
	for i := 0; i < 200; i++ {
		leaf = env.mgr.Create(parent)
		parent = leaf
	}

	env.mgr.Focus(leaf)
	assert.Equal(t, leaf, focusPath(env.mgr.Root()))
}
