package schedule

import (
	"context"
	"time"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/grid"
)

// View is a week as seen from a display location. Displayed slots are
// translated to stored slots by the offset delta between the display and
// reference locations, evaluated at the start of the displayed week so
// daylight saving is picked up per week.
type View struct {
	planner *Planner

	// Key is the storage key of the week, computed in the reference location.
	Key string
	// Start is Sunday 00:00 of the displayed week in the display location.
	Start time.Time
	// Display is the location the grid is rendered in.
	Display *time.Location
	// Delta is display offset minus reference offset, in minutes.
	Delta int
}

// View returns the week containing date's calendar day, shown in display.
// The week is created (and seeded) if it has never been visited.
func (p *Planner) View(ctx context.Context, date time.Time, display *time.Location) *View {
	if display == nil {
		display = p.reference
	}
	start := dateutil.StartOfWeek(dateutil.DateIn(date, display), display)
	v := &View{
		planner: p,
		Key:     dateutil.WeekKey(dateutil.DateIn(date, p.reference), p.reference),
		Start:   start,
		Display: display,
		Delta:   dateutil.OffsetDelta(start, display, p.reference),
	}
	p.ensureWeek(ctx, v.Key)
	return v
}

// StorageSlot maps a displayed day/time to the slot it is stored under.
func (v *View) StorageSlot(day int, key string) grid.Slot {
	return grid.Remap(grid.Slot{Day: day, Time: key}, -v.Delta)
}

// DisplaySlot maps a stored slot to where it appears in this view.
func (v *View) DisplaySlot(stored grid.Slot) grid.Slot {
	return grid.Remap(stored, v.Delta)
}

// Cell returns the cell displayed at day/key.
func (v *View) Cell(ctx context.Context, day int, key string) (Cell, bool) {
	return v.planner.CellAt(ctx, v.Key, v.StorageSlot(day, key))
}

// SetCell stores c at the displayed day/key.
func (v *View) SetCell(ctx context.Context, day int, key string, c Cell) {
	v.planner.SetCellAt(ctx, v.Key, v.StorageSlot(day, key), c)
}

// SetText commits edited text at the displayed day/key, keeping its done mark.
func (v *View) SetText(ctx context.Context, day int, key, text string) {
	slot := v.StorageSlot(day, key)
	cur, _ := v.planner.CellAt(ctx, v.Key, slot)
	v.planner.SetCellAt(ctx, v.Key, slot, Cell{Text: text, Done: cur.Done})
}

// ToggleDone flips the done mark at the displayed day/key and returns the
// new state.
func (v *View) ToggleDone(ctx context.Context, day int, key string) bool {
	slot := v.StorageSlot(day, key)
	cur, _ := v.planner.CellAt(ctx, v.Key, slot)
	cur.Done = !cur.Done
	v.planner.SetCellAt(ctx, v.Key, slot, cur)
	return cur.Done
}

// Clear empties the displayed day/key.
func (v *View) Clear(ctx context.Context, day int, key string) {
	v.planner.SetCellAt(ctx, v.Key, v.StorageSlot(day, key), Cell{})
}

// Days returns the seven displayed dates, Sunday first.
func (v *View) Days() [grid.DaysPerWeek]time.Time {
	var days [grid.DaysPerWeek]time.Time
	for i := range days {
		days[i] = v.Start.AddDate(0, 0, i)
	}
	return days
}

// ZoneName returns the display location name.
func (v *View) ZoneName() string {
	return v.Display.String()
}

// SaveAsTemplate saves this week as the base template.
func (v *View) SaveAsTemplate(ctx context.Context) {
	v.planner.SaveAsTemplate(ctx, v.Key)
}

// ResetToTemplate replaces this week with the base template.
func (v *View) ResetToTemplate(ctx context.Context) {
	v.planner.ResetToTemplate(ctx, v.Key)
}

// DisplayedCell is a non-empty block as it appears in a View.
type DisplayedCell struct {
	Day  int
	Time string
	Cell Cell
}

// Cells returns every non-empty displayed block, ordered by day then time.
// Stored blocks that map outside the displayed hours are omitted.
func (v *View) Cells(ctx context.Context) []DisplayedCell {
	var out []DisplayedCell
	for day := 0; day < grid.DaysPerWeek; day++ {
		for _, key := range grid.Keys() {
			c, ok := v.Cell(ctx, day, key)
			if !ok || c.IsEmpty() {
				continue
			}
			out = append(out, DisplayedCell{Day: day, Time: key, Cell: c})
		}
	}
	return out
}
