package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsort/pkg/render"
	"github.com/matzehuels/gridsort/pkg/scenario"
)

// exportCommand creates the export command that writes a scenario's final layout.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [scenario.toml]",
		Short: "Write the layout after a scenario as JSON, DOT or SVG",
		Long: `Replay a scenario and write the resulting grid.

Formats:
  json  item slots and rest positions
  dot   Graphviz source, one rank per row
  svg   the dot source rendered with Graphviz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatSVG), "output format: json, dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <scenario>.<format>)")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, w, status io.Writer, path, formatName, output string) error {
	f, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}

	s, err := scenario.Load(path)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	res, err := scenario.Run(ctx, s)
	if err != nil {
		return fmt.Errorf("simulate %s: %w", path, err)
	}
	layout := render.NewLayout(res.Geometry, res.Items)

	spinner := newSpinner(ctx, status, fmt.Sprintf("Rendering %s...", f))
	spinner.Start()
	data, err := render.Export(ctx, layout, f)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render %s: %w", f, err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + "." + string(f)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess(w, "Exported %s", strings.Join(layout.IDs(), " "))
	printFile(w, output)
	if f == render.FormatDOT {
		printNextStep(w, "Render", "dot -Tpng "+output)
	}
	return nil
}
