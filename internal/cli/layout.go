package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsort/pkg/config"
	"github.com/matzehuels/gridsort/pkg/render"
	"github.com/matzehuels/gridsort/pkg/sortable"
)

// layoutCommand creates the layout command that prints the slot table.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "layout [items...]",
		Short: "Print the rest position of every item",
		Long: `Print the slot table for a grid: each item's order, row, column and rest
position in layout units.

Items come from the arguments, then the config file, then a built-in
default set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(args)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.OutOrStdout(), cfg)
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) runLayout(w io.Writer, cfg *config.Config) error {
	opts, err := cfg.ContainerOptions()
	if err != nil {
		return err
	}
	ctr, err := sortable.New(cfg.Items, opts)
	if err != nil {
		return fmt.Errorf("mount grid: %w", err)
	}
	defer ctr.Close()

	l := render.NewLayout(opts.Geometry, ctr.Snapshot())
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%d items · %d columns · %d rows", len(l.Items), l.Columns, l.Rows)))
	fmt.Fprintln(w, slotTable(l))
	printKeyValue(w, "content", fmt.Sprintf("%gx%g", l.Width, l.Height))
	return nil
}

// slotTable renders one row per item.
func slotTable(l render.Layout) string {
	rows := make([][]string, 0, len(l.Items))
	for _, it := range l.Items {
		rows = append(rows, []string{
			strconv.Itoa(it.Order),
			it.ID,
			strconv.Itoa(it.Row),
			strconv.Itoa(it.Column),
			strconv.FormatFloat(it.X, 'g', -1, 64),
			strconv.FormatFloat(it.Y, 'g', -1, 64),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Slot", "Item", "Row", "Col", "X", "Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return cell.Foreground(colorWhite).Bold(true)
			case col == 0:
				return cell.Foreground(colorCyan)
			default:
				return cell.Foreground(colorGray)
			}
		})
	return t.Render()
}
