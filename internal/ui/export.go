package ui

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		week   weekFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a week as an iCalendar file",
		Long: `Write every non-empty block of the selected week as a 30 minute event
in the display timezone. Done blocks are exported as confirmed events.`,
		Example: `  weekgrid export -o week.ics
  weekgrid export --date next-week --tz Asia/Manila > manila.ics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			v, err := a.openView(ctx, week)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			n, err := export.WriteICS(ctx, &buf, v, a.now())
			if err != nil {
				return fmt.Errorf("encoding calendar: %w", err)
			}
			if n == 0 {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No blocks to export.")
				return nil
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d blocks to %s\n", n, output)
			return nil
		},
	}

	week.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
