package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/grid"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

func (a *App) templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage the base template new weeks are seeded from",
		Long: `The base template is copied into every week the first time it is opened,
as long as auto-seed is on. Template slots are in the reference timezone.`,
	}

	cmd.AddCommand(a.templateSaveCmd())
	cmd.AddCommand(a.templateResetCmd())
	cmd.AddCommand(a.templateShowCmd())
	cmd.AddCommand(a.templateFillCmd())
	return cmd
}

func (a *App) templateSaveCmd() *cobra.Command {
	var week weekFlags

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the selected week as the base template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			v, err := a.openView(ctx, week)
			if err != nil {
				return err
			}
			v.SaveAsTemplate(ctx)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved week %s as template (%d blocks)\n",
				v.Key, a.planner.Template().Len())
			return nil
		},
	}

	week.register(cmd)
	return cmd
}

func (a *App) templateResetCmd() *cobra.Command {
	var week weekFlags

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the selected week with the base template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			v, err := a.openView(ctx, week)
			if err != nil {
				return err
			}
			v.ResetToTemplate(ctx)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reset week %s to template\n", v.Key)
			return nil
		},
	}

	week.register(cmd)
	return cmd
}

func (a *App) templateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List the blocks of the base template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planner, err := a.ensurePlanner(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			tmpl := planner.Template()
			if tmpl.Len() == 0 {
				_, _ = fmt.Fprintln(out, "Template is empty.")
				return nil
			}
			_, _ = fmt.Fprintf(out, "Template (%s):\n", planner.Reference())
			printTemplate(cmd, tmpl)
			return nil
		},
	}
}

func (a *App) templateFillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill DAY START END [TEXT...]",
		Short: "Fill template blocks from START up to END",
		Long: `Fill the template blocks of DAY from START up to, but not including, END.
Times are in the reference timezone. Without TEXT the blocks are cleared.`,
		Example: `  weekgrid template fill mon 06:00 07:00 Run
  weekgrid template fill mon 06:00 07:00`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, start, err := parseSlot(args[0], args[1])
			if err != nil {
				return err
			}
			end, err := grid.ParseKey(args[2])
			if err != nil {
				return fmt.Errorf("invalid end time %q: %w", args[2], err)
			}
			planner, err := a.ensurePlanner(cmd.Context())
			if err != nil {
				return err
			}
			text := joinArgs(args[3:])
			if err := planner.FillTemplate(cmd.Context(), day, start, end.Key(), text); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Template %s %s-%s: %s\n",
				grid.DayName(day), start, end.Key(), valueOr(text, "cleared"))
			return nil
		},
	}
}

func printTemplate(cmd *cobra.Command, tmpl schedule.Week) {
	out := cmd.OutOrStdout()
	for day := 0; day < grid.DaysPerWeek; day++ {
		cells := tmpl[strconv.Itoa(day)]
		if len(cells) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(out, "  %s\n", formatHeader(grid.DayName(day)))
		for _, key := range grid.Keys() {
			if c, ok := cells[key]; ok {
				_, _ = fmt.Fprintf(out, "    %s  %s\n", key, CellLabel(c))
			}
		}
	}
}
