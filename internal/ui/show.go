package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/summary"
)

func (a *App) showCmd() *cobra.Command {
	var (
		week    weekFlags
		all     bool
		list    bool
		width   int
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a week of blocks",
		Long: `Display a week of half-hour blocks in the chosen timezone.

Blocks are remapped from the reference timezone, so the same plan shifts
when viewed from another zone. Only rows with blocks are printed unless
--all is given.`,
		Example: `  weekgrid show
  weekgrid show --tz Asia/Manila --date next-week
  weekgrid show --list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			ctx := cmd.Context()
			v, err := a.openView(ctx, week)
			if err != nil {
				return err
			}
			s := summary.Summarize(ctx, v)
			out := cmd.OutOrStdout()

			header := fmt.Sprintf("WEEK: %s - %s", s.Start.Format("Mon Jan 2"), s.End.Format("Mon Jan 2, 2006"))
			_, _ = fmt.Fprintf(out, "\n  %s  %s\n\n", formatHeader(header),
				formatMuted(fmt.Sprintf("%s (%s)", s.Zone, dateutil.FormatOffset(dateutil.Offset(v.Start, v.Display)))))

			if list {
				PrintBlockList(out, s)
			} else {
				PrintWeekGrid(out, s, GridOpts{All: all, CellWidth: width, Today: a.now()})
			}

			_, _ = fmt.Fprintln(out)
			PrintSummary(out, s)
			return nil
		},
	}

	week.register(cmd)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show every slot, including empty rows")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List blocks instead of drawing the grid")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Column width (default: fit terminal)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
