package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) autoSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "autoseed [on|off]",
		Short:     "Show or change whether new weeks copy the template",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := a.ensurePlanner(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				on, err := parseOnOff(args[0])
				if err != nil {
					return err
				}
				planner.SetAutoSeed(cmd.Context(), on)
			}
			state := "off"
			if planner.AutoSeed() {
				state = "on"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Auto-seed is %s\n", formatStats(state))
			return nil
		},
	}
}

func (a *App) notesCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "notes [TEXT...]",
		Short: "Show or replace the free-text notes",
		Example: `  weekgrid notes
  weekgrid notes "protein 1.6-2.2 g/kg/day, 7-9 h sleep"
  weekgrid notes --clear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := a.ensurePlanner(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case clear:
				planner.SetNotes(cmd.Context(), "")
				_, _ = fmt.Fprintln(out, "Notes cleared")
			case len(args) > 0:
				planner.SetNotes(cmd.Context(), joinArgs(args))
				_, _ = fmt.Fprintln(out, "Notes saved")
			case planner.Notes() == "":
				_, _ = fmt.Fprintln(out, formatMuted("No notes."))
			default:
				_, _ = fmt.Fprintln(out, formatNotes(planner.Notes()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the notes")
	return cmd
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
