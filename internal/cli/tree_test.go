package cli

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loftwm/loft/internal/config"
	"github.com/loftwm/loft/internal/domain/entity"
	"github.com/loftwm/loft/internal/logging"
)

func demoCLI() *CLI {
	return &CLI{Config: config.DefaultConfig(), Logger: zerolog.Nop()}
}

func TestBuildDemoTree_WellFormed(t *testing.T) {
	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	mgr := buildDemoTree(ctx, demoCLI())

	root := mgr.Root()
	require.Len(t, root.Children, 1, "one configured output by default")

	output := root.Children[0]
	assert.Equal(t, entity.KindOutput, output.Kind)
	require.NotEmpty(t, output.Children)

	ws := output.Children[0]
	assert.Equal(t, entity.KindWorkspace, ws.Kind)

	// Every attached container descends from an output and a workspace.
	for _, c := range mgr.All() {
		if c.Parent == nil {
			continue
		}
		assert.NotNil(t, c.Output())
		assert.NotNil(t, c.Workspace())
	}
}

func TestBuildDemoTree_FocusAndFullscreen(t *testing.T) {
	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	mgr := buildDemoTree(ctx, demoCLI())

	focused := mgr.Focused()
	require.NotNil(t, focused)
	require.NotNil(t, focused.Window)
	assert.Equal(t, "editor", focused.Window.Class)
	assert.Equal(t, entity.FullscreenOutput, focused.Fullscreen)
}

func TestRenderTree_ListsContainers(t *testing.T) {
	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	mgr := buildDemoTree(ctx, demoCLI())

	out := renderTree(mgr, mgr.Root(), 0)

	assert.Contains(t, out, `root "root"`)
	assert.Contains(t, out, `output "DP-1"`)
	assert.Contains(t, out, `workspace "1"`)
	assert.Contains(t, out, "[focused]")
	assert.Contains(t, out, "[fullscreen]")
	assert.Contains(t, out, "window=3 (scratchpad)")
}
