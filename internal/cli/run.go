package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsort/pkg/config"
	"github.com/matzehuels/gridsort/pkg/sortable"
)

// runCommand creates the run command that opens the interactive grid.
func (c *CLI) runCommand() *cobra.Command {
	var (
		flags   gridFlags
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "run [items...]",
		Short: "Reorder items interactively",
		Long: `Open the grid in the terminal and reorder items by dragging them.

Mouse:     press on a tile, drag it over another slot, release
Wheel:     scroll long grids
Keyboard:  arrows move the focus, space picks the focused tile up, arrows
           carry it one slot at a time, space or esc sets it down

The final order is printed to stdout on exit. Logging is suspended while
the grid is on screen unless --log-file is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(args)
			if err != nil {
				return err
			}
			return c.runGrid(cmd.Context(), cmd.OutOrStdout(), cfg, logFile)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file while the grid is open")

	return cmd
}

func (c *CLI) runGrid(ctx context.Context, w io.Writer, cfg *config.Config, logFile string) error {
	opts, err := cfg.ContainerOptions()
	if err != nil {
		return err
	}
	ctr, err := sortable.New(cfg.Items, opts)
	if err != nil {
		return fmt.Errorf("mount grid: %w", err)
	}
	defer ctr.Close()

	restore, err := c.redirectLogs(logFile)
	if err != nil {
		return err
	}
	defer restore()

	c.Logger.Debug("grid mounted", "items", ctr.Len(), "columns", cfg.Columns, "easing", cfg.Anim.Easing)
	p := tea.NewProgram(newGridModel(ctr, cfg, c.Logger),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("run grid: %w", err)
	}

	c.Logger.Debug("grid closed", "swaps", ctr.Version())
	fmt.Fprintln(w, strings.Join(ctr.Order(), " "))
	return nil
}

// redirectLogs keeps log lines off the alternate screen. The returned func
// restores the original writer.
func (c *CLI) redirectLogs(path string) (func(), error) {
	if path == "" {
		c.Logger.SetOutput(io.Discard)
		return func() { c.Logger.SetOutput(c.logOut) }, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	c.Logger.SetOutput(f)
	return func() {
		c.Logger.SetOutput(c.logOut)
		f.Close()
	}, nil
}
