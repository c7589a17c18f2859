package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/grid"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

// weekFlags selects the displayed week and timezone.
type weekFlags struct {
	date string
	tz   string
}

func (f *weekFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "Any date in the week (YYYY-MM-DD, today, monday, next-week, \"next friday\")")
	cmd.Flags().StringVar(&f.tz, "tz", "", "Display timezone (default from config)")
}

// displayLocation resolves a display timezone name, falling back to the
// configured default.
func (a *App) displayLocation(name string) (*time.Location, error) {
	if name == "" {
		name = a.config.Timezone.Display[a.config.DefaultDisplayIndex()]
	}
	return dateutil.LoadZone(name)
}

// resolveDate parses the date flag relative to now in loc and checks it
// against the navigation window.
func (a *App) resolveDate(input string, loc *time.Location) (time.Time, error) {
	now := a.now().In(loc)
	date, err := dateutil.ParseRelativeDate(input, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", input, err)
	}
	if err := schedule.NewWindow(now, a.config.Calendar.WindowDays).Check(date); err != nil {
		return time.Time{}, err
	}
	return date, nil
}

// openView returns the selected week as seen from the selected timezone.
func (a *App) openView(ctx context.Context, f weekFlags) (*schedule.View, error) {
	planner, err := a.ensurePlanner(ctx)
	if err != nil {
		return nil, err
	}
	display, err := a.displayLocation(f.tz)
	if err != nil {
		return nil, err
	}
	date, err := a.resolveDate(f.date, display)
	if err != nil {
		return nil, err
	}
	return planner.View(ctx, date, display), nil
}

// parseSlot parses a day and a displayed time from user input.
func parseSlot(dayArg, timeArg string) (int, string, error) {
	day, err := grid.ParseDay(dayArg)
	if err != nil {
		return 0, "", fmt.Errorf("invalid day %q: %w", dayArg, err)
	}
	tod, err := grid.ParseKey(timeArg)
	if err != nil {
		return 0, "", fmt.Errorf("invalid time %q: %w", timeArg, err)
	}
	key := tod.Key()
	if !grid.IsDisplayed(key) {
		keys := grid.Keys()
		return 0, "", fmt.Errorf("time %s is not a block between %s and %s", key, keys[0], keys[len(keys)-1])
	}
	return day, key, nil
}

// slotRange returns the displayed times from start up to until (exclusive).
// An empty until selects only start.
func slotRange(start, until string) ([]string, error) {
	if until == "" {
		return []string{start}, nil
	}
	end, err := grid.ParseKey(until)
	if err != nil {
		return nil, fmt.Errorf("invalid --until %q: %w", until, err)
	}
	keys, err := grid.TimesBetween(start, end.Key())
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("--until %s must be after %s", end.Key(), start)
	}
	return keys, nil
}

// describeSlot renders a displayed slot with the stored slot it maps to.
func describeSlot(v *schedule.View, day int, key string) string {
	shown := fmt.Sprintf("%s %s", grid.DayName(day), key)
	if v.Delta == 0 {
		return shown
	}
	stored := v.StorageSlot(day, key)
	return fmt.Sprintf("%s %s", shown, formatMuted(fmt.Sprintf("(stored %s %s)", grid.DayName(stored.Day), stored.Time)))
}
