package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sceneflow/sceneflow/pkg/diagram"
	"github.com/sceneflow/sceneflow/pkg/errors"
	"github.com/sceneflow/sceneflow/pkg/pipeline"
)

// layoutFlags holds the layout command's flag values before they are
// folded into pipeline options.
type layoutFlags struct {
	output     string
	source     string
	format     string
	configPath string
	project    string
	noCache    bool
	refresh    bool

	nodeWidth  float64
	nodeHeight float64
	vgap       float64
	hgap       float64
	branchGap  float64
	optionGap  float64
}

// layoutCommand creates the layout command for computing diagrams.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "layout [script.json]",
		Short: "Compute a positioned diagram from a script tree",
		Long: `Compute a positioned diagram from a script tree.

The layout command takes a script.json file (an exported script tree) and
computes node positions and edges for the flow diagram. The output is a
diagram.json file consumed by the editor canvas.

Pass --source to attach the original script text; node summaries are then
derived from the referenced source lines.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], flags)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: <input>.diagram.json)")
	cmd.Flags().StringVarP(&flags.source, "source", "s", "", "original script text for node summaries")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "output format (json)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default: ./sceneflow.toml when present)")
	cmd.Flags().StringVar(&flags.project, "project", "", "project name for cache scoping")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute even when a cached result exists")

	// Geometry flags (0 keeps the config/default value)
	cmd.Flags().Float64Var(&flags.nodeWidth, "node-width", 0, "node box width")
	cmd.Flags().Float64Var(&flags.nodeHeight, "node-height", 0, "node box height")
	cmd.Flags().Float64Var(&flags.vgap, "vertical-gap", 0, "gap between sequential nodes")
	cmd.Flags().Float64Var(&flags.hgap, "horizontal-gap", 0, "gap between top-level block columns")
	cmd.Flags().Float64Var(&flags.branchGap, "branch-gap", 0, "gap between conditional branches")
	cmd.Flags().Float64Var(&flags.optionGap, "option-gap", 0, "gap between menu options")

	return cmd
}

// runLayout executes the pipeline and writes the diagram file.
func (c *CLI) runLayout(ctx context.Context, input string, flags layoutFlags) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputFormat(flags.format); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(cfg, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		ScriptPath: input,
		SourcePath: flags.source,
		Project:    flags.project,
		Refresh:    flags.refresh,
		Geometry:   flags.geometry(cfg.Geometry()),
		Theme:      cfg.DisplayTheme(),
		Logger:     logger,
	}
	if opts.Project == "" {
		opts.Project = cfg.Project
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("laid out %d nodes", result.Stats.NodeCount))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultOutputPath(input)
	}

	if err := diagram.WriteFile(result.Diagram, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.LayoutHit)
	for _, d := range result.Diagram.Diagnostics {
		printWarning("%s", d)
	}
	printNewline()
	printNextStep("Inspect", appName+" inspect "+input)

	return nil
}

// geometry overlays flag-level overrides on the config-derived geometry.
func (f layoutFlags) geometry(base diagram.Geometry) diagram.Geometry {
	if f.nodeWidth > 0 {
		base.NodeWidth = f.nodeWidth
	}
	if f.nodeHeight > 0 {
		base.NodeHeight = f.nodeHeight
	}
	if f.vgap > 0 {
		base.VerticalGap = f.vgap
	}
	if f.hgap > 0 {
		base.HorizontalGap = f.hgap
	}
	if f.branchGap > 0 {
		base.BranchGap = f.branchGap
	}
	if f.optionGap > 0 {
		base.OptionGap = f.optionGap
	}
	return base
}
