package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/loftwm/loft/internal/domain/entity"
	"github.com/loftwm/loft/internal/infrastructure/match"
	"github.com/loftwm/loft/internal/infrastructure/render"
	"github.com/loftwm/loft/internal/infrastructure/urgency"
	"github.com/loftwm/loft/internal/logging"
	"github.com/loftwm/loft/internal/tree"
)

var (
	kindStyle = map[entity.Kind]lipgloss.Style{
		entity.KindRoot:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		entity.KindOutput:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		entity.KindWorkspace: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		entity.KindTiling:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		entity.KindFloating:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
	focusedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	fullscreenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// NewTreeCmd creates the tree command: it builds a demo layout from the
// configuration and prints the resulting container tree.
func NewTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Build a demo layout and print the container tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli, err := NewCLI()
			if err != nil {
				return fmt.Errorf("failed to initialize CLI: %w", err)
			}

			ctx := logging.WithContext(cmd.Context(), cli.Logger)
			mgr := buildDemoTree(ctx, cli)

			fmt.Println(renderTree(mgr, mgr.Root(), 0))
			return nil
		},
	}
}

// buildDemoTree constructs outputs and workspaces from the configuration and
// populates the first workspace with a split, two windows and a floating
// scratchpad, ending with one window focused and fullscreen.
func buildDemoTree(ctx context.Context, cli *CLI) *tree.Manager {
	mgr := tree.NewManager(ctx, render.NewMemory(ctx), urgency.NewRecomputer(ctx), match.Fields{})

	var firstWorkspace *entity.Container
	for _, name := range cli.Config.Outputs {
		output := mgr.CreateOutput(name)
		for i := 0; i < cli.Config.Layout.WorkspacesPerOutput; i++ {
			ws := mgr.CreateWorkspace(output, fmt.Sprintf("%d", i+1))
			if firstWorkspace == nil {
				firstWorkspace = ws
			}
		}
	}

	split := mgr.Create(firstWorkspace)
	split.Orientation = cli.Config.Layout.Orientation()
	mgr.FixPercent(firstWorkspace, tree.PercentAdd)

	editor := mgr.Create(split)
	editor.Window = &entity.Window{ID: 1, Class: "editor", Title: "main.go"}
	mgr.FixPercent(split, tree.PercentAdd)
	editor.Percent = 1.0

	term := mgr.Create(split)
	term.Window = &entity.Window{ID: 2, Class: "term", Title: "shell"}
	mgr.FixPercent(split, tree.PercentAdd)
	term.Percent = 0.5

	scratch := mgr.Create(nil)
	scratch.Kind = entity.KindFloating
	scratch.FloatingState = entity.FloatingUserOn
	scratch.Window = &entity.Window{ID: 3, Class: "scratchpad", Title: "notes"}
	mgr.Attach(scratch, firstWorkspace)

	mgr.Focus(editor)
	mgr.ToggleFullscreen(editor)

	return mgr
}

// renderTree pretty-prints the subtree rooted at c.
func renderTree(mgr *tree.Manager, c *entity.Container, depth int) string {
	var b strings.Builder

	label := fmt.Sprintf("%s %q", c.Kind, c.Name)
	line := kindStyle[c.Kind].Render(label)
	if c.Window != nil {
		line += fmt.Sprintf(" window=%d (%s)", c.Window.ID, c.Window.Class)
	}
	if c.Percent > 0 {
		line += fmt.Sprintf(" %.0f%%", c.Percent*100)
	}
	if c == mgr.Focused() {
		line += " " + focusedStyle.Render("[focused]")
	}
	if c.Fullscreen != entity.FullscreenNone {
		line += " " + fullscreenStyle.Render("[fullscreen]")
	}

	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(line)
	b.WriteString("\n")

	for _, child := range c.Children {
		b.WriteString(renderTree(mgr, child, depth+1))
	}
	for _, child := range c.FloatingChildren {
		b.WriteString(renderTree(mgr, child, depth+1))
	}

	return b.String()
}
