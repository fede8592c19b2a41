package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsort/pkg/scenario"
)

// simulateCommand creates the simulate command that replays a scenario file.
func (c *CLI) simulateCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "simulate [scenario.toml]",
		Short: "Replay scripted gestures and print the final order",
		Long: `Replay the gestures in a scenario file against a fresh grid.

Each gesture grabs an item, applies its moves (cumulative translations in
layout units) and releases it. Frames are ticked until every item has
settled. The command prints every committed swap and the final order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSimulate(cmd.Context(), cmd.OutOrStdout(), args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func (c *CLI) runSimulate(ctx context.Context, w io.Writer, path string, asJSON bool) error {
	logger := loggerFromContext(ctx)

	s, err := scenario.Load(path)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	prog := newProgress(logger)
	res, err := scenario.Run(ctx, s)
	if err != nil {
		return fmt.Errorf("simulate %s: %w", path, err)
	}
	prog.done(fmt.Sprintf("Simulated %d gestures", res.Gestures))

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, sw := range res.Swaps {
		printInfo(w, "%s %s %s  %s", sw.ID, iconSwap, sw.With, StyleDim.Render(fmt.Sprintf("%d %s %d", sw.From, iconArrow, sw.To)))
	}
	if len(res.Swaps) == 0 {
		printInfo(w, "no swaps")
	}
	printSuccess(w, "%s", strings.Join(res.Order, " "))
	printDetail(w, "%d frames · %s", res.Frames, res.Elapsed)
	if !res.Settled {
		logger.Warn("grid still animating at end of scenario", "frames", res.Frames)
	}
	return nil
}
