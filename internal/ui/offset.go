package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
)

func (a *App) offsetCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "offset [ZONE...]",
		Short: "Show timezone offsets and how far blocks shift",
		Long: `Print the UTC offset of the reference timezone and of each display
timezone at the start of the selected week, with the shift applied to
blocks when viewed from that zone. Zones given as arguments replace the
configured display zones.`,
		Example: `  weekgrid offset
  weekgrid offset Europe/Madrid America/Los_Angeles --date 2025-03-09`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := a.config.ReferenceLocation()
			if err != nil {
				return err
			}
			refDate, err := a.resolveDate(date, ref)
			if err != nil {
				return err
			}

			zones := args
			if len(zones) == 0 {
				zones = a.config.Timezone.Display
			}

			out := cmd.OutOrStdout()
			refStart := dateutil.StartOfWeek(refDate, ref)
			_, _ = fmt.Fprintf(out, "  %s %-24s %s  week %s\n", " ", ref.String(),
				dateutil.FormatOffset(dateutil.Offset(refStart, ref)), dateutil.WeekKey(refDate, ref))

			for _, name := range zones {
				loc, err := dateutil.LoadZone(name)
				if err != nil {
					return err
				}
				line := offsetLine(refDate, loc, ref)
				marker := " "
				if name == a.config.Timezone.DefaultDisplay {
					marker = "*"
				}
				_, _ = fmt.Fprintf(out, "  %s %-24s %s\n", marker, loc.String(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (default today)")
	return cmd
}

// offsetLine describes a display zone for the week containing date.
func offsetLine(date time.Time, display, reference *time.Location) string {
	start := dateutil.StartOfWeek(dateutil.DateIn(date, display), display)
	delta := dateutil.OffsetDelta(start, display, reference)
	return fmt.Sprintf("%s  shift %s", dateutil.FormatOffset(dateutil.Offset(start, display)), FormatDelta(delta))
}
