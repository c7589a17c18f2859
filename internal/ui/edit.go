package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) setCmd() *cobra.Command {
	var (
		week  weekFlags
		until string
	)

	cmd := &cobra.Command{
		Use:   "set DAY TIME TEXT...",
		Short: "Set the text of a block",
		Long: `Set the text of one block, or of a range of blocks with --until.

DAY is a weekday name or 0-6 (0 = Sunday). TIME is the displayed start
time in HH:MM. The done mark of an existing block is kept.`,
		Example: `  weekgrid set mon 09:00 Deep work --until 11:00
  weekgrid set sat 07:30 Long run --tz Asia/Manila`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, start, err := parseSlot(args[0], args[1])
			if err != nil {
				return err
			}
			keys, err := slotRange(start, until)
			if err != nil {
				return err
			}
			text := joinArgs(args[2:])
			if text == "" {
				return fmt.Errorf("text is empty, use 'weekgrid clear' to empty a block")
			}

			ctx := cmd.Context()
			v, err := a.openView(ctx, week)
			if err != nil {
				return err
			}
			for _, key := range keys {
				v.SetText(ctx, day, key, text)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s: %s\n", describeSlot(v, day, key), formatFilled(text))
			}
			return nil
		},
	}

	week.register(cmd)
	cmd.Flags().StringVar(&until, "until", "", "Fill consecutive blocks up to this time (HH:MM, exclusive)")
	return cmd
}

func (a *App) clearCmd() *cobra.Command {
	var (
		week  weekFlags
		until string
	)

	cmd := &cobra.Command{
		Use:   "clear DAY TIME",
		Short: "Empty a block",
		Long: `Remove the text and done mark of one block, or of a range of blocks
with --until.`,
		Example: `  weekgrid clear wed 18:00
  weekgrid clear 3 18:00 --until 20:00`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, start, err := parseSlot(args[0], args[1])
			if err != nil {
				return err
			}
			keys, err := slotRange(start, until)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			v, err := a.openView(ctx, week)
			if err != nil {
				return err
			}
			for _, key := range keys {
				v.Clear(ctx, day, key)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", describeSlot(v, day, key))
			}
			return nil
		},
	}

	week.register(cmd)
	cmd.Flags().StringVar(&until, "until", "", "Clear consecutive blocks up to this time (HH:MM, exclusive)")
	return cmd
}

func (a *App) doneCmd() *cobra.Command {
	var week weekFlags

	cmd := &cobra.Command{
		Use:   "done DAY TIME",
		Short: "Toggle the done mark of a block",
		Example: `  weekgrid done tue 06:30
  weekgrid done tue 06:30 --date yesterday`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, key, err := parseSlot(args[0], args[1])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			v, err := a.openView(ctx, week)
			if err != nil {
				return err
			}
			state := "not done"
			if v.ToggleDone(ctx, day, key) {
				state = formatDone("done")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as %s\n", describeSlot(v, day, key), state)
			return nil
		},
	}

	week.register(cmd)
	return cmd
}
