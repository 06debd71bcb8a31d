package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sceneflow/sceneflow/pkg/errors"
	"github.com/sceneflow/sceneflow/pkg/script"
)

// scriptStats summarizes a script tree for display.
type scriptStats struct {
	Blocks       int
	Nodes        int
	Actions      int
	Menus        int
	Options      int
	Conditionals int
	MaxDepth     int
	PerBlock     []blockStats
}

// blockStats summarizes a single top-level block.
type blockStats struct {
	ID           string
	Label        string
	Nodes        int
	Menus        int
	Conditionals int
	StartLine    int
	EndLine      int
}

// inspectCommand creates the inspect command for examining script structure.
func (c *CLI) inspectCommand() *cobra.Command {
	var browse bool

	cmd := &cobra.Command{
		Use:   "inspect [script.json]",
		Short: "Show script structure and statistics",
		Long: `Show script structure and statistics.

The inspect command reads a script.json file and reports its block and
node composition without computing a layout. Use --blocks to open an
interactive block browser.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0], browse)
		},
	}

	cmd.Flags().BoolVar(&browse, "blocks", false, "browse top-level blocks interactively")

	return cmd
}

func (c *CLI) runInspect(input string, browse bool) error {
	s, err := script.ReadFile(input)
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid script: %w", err)
	}
	if len(s.Blocks) == 0 {
		return errors.New(errors.ErrCodeEmptyScript, "script %s contains no blocks", input)
	}

	stats := collectStats(s)

	if browse {
		model := NewBlockListModel(stats.PerBlock)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("block browser: %w", err)
		}
		return nil
	}

	fmt.Println(StyleTitle.Render("Script: " + input))
	printNewline()
	printKeyValue("Blocks", fmt.Sprintf("%d", stats.Blocks))
	printKeyValue("Nodes", fmt.Sprintf("%d", stats.Nodes))
	printKeyValue("Actions", fmt.Sprintf("%d", stats.Actions))
	printKeyValue("Conditionals", fmt.Sprintf("%d", stats.Conditionals))
	printKeyValue("Menus", fmt.Sprintf("%d", stats.Menus))
	printKeyValue("Options", fmt.Sprintf("%d", stats.Options))
	printKeyValue("Max depth", fmt.Sprintf("%d", stats.MaxDepth))
	printNewline()

	for _, b := range stats.PerBlock {
		printInfo("%s", b.Label)
		detail := fmt.Sprintf("%d nodes", b.Nodes)
		if b.Conditionals > 0 {
			detail += fmt.Sprintf(", %d conditionals", b.Conditionals)
		}
		if b.Menus > 0 {
			detail += fmt.Sprintf(", %d menus", b.Menus)
		}
		if lines := formatLines(b.StartLine, b.EndLine); lines != "" {
			detail += ", lines " + lines
		}
		printDetail("%s", detail)
	}

	printNewline()
	printNextStep("Layout", appName+" layout "+input)

	return nil
}

// collectStats walks the script once and aggregates totals plus per-block
// summaries.
func collectStats(s *script.Script) scriptStats {
	stats := scriptStats{Blocks: len(s.Blocks)}

	s.Walk(func(n *script.Node, depth int) bool {
		stats.Nodes++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		switch n.Type {
		case script.TypeAction:
			stats.Actions++
		case script.TypeConditional:
			stats.Conditionals++
		case script.TypeMenu:
			stats.Menus++
		case script.TypeMenuOption:
			stats.Options++
		}
		return true
	})

	for _, b := range s.Blocks {
		if b == nil {
			continue
		}
		block := script.Script{Blocks: []*script.Node{b}}
		bs := blockStats{
			ID:        b.ID,
			Label:     b.DisplayLabel(),
			StartLine: b.StartLine,
			EndLine:   b.EndLine,
		}
		block.Walk(func(n *script.Node, depth int) bool {
			bs.Nodes++
			switch n.Type {
			case script.TypeConditional:
				bs.Conditionals++
			case script.TypeMenu:
				bs.Menus++
			}
			return true
		})
		stats.PerBlock = append(stats.PerBlock, bs)
	}

	return stats
}

// formatLines renders a source line range, or "" when unknown.
func formatLines(start, end int) string {
	switch {
	case start == 0:
		return ""
	case end == 0 || end == start:
		return fmt.Sprintf("%d", start)
	default:
		return fmt.Sprintf("%d-%d", start, end)
	}
}
