// Package schedule holds the weekly grid data, template seeding and the
// display-to-storage slot mapping.
package schedule

import (
	"strconv"
	"strings"

	"github.com/javiermolinar/weekgrid/internal/grid"
)

// Cell is the content of one half-hour block.
type Cell struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// IsEmpty reports whether the cell carries neither text nor a done mark.
func (c Cell) IsEmpty() bool {
	return c.Text == "" && !c.Done
}

// Week maps a day index ("0"=Sunday .. "6") to time keys to cells.
// Missing days or keys mean an empty, not-done block.
type Week map[string]map[string]Cell

// NewWeek returns a week with seven empty days.
func NewWeek() Week {
	w := make(Week, grid.DaysPerWeek)
	for d := 0; d < grid.DaysPerWeek; d++ {
		w[strconv.Itoa(d)] = map[string]Cell{}
	}
	return w
}

// Cell returns the stored cell at day/key and whether one exists.
func (w Week) Cell(day int, key string) (Cell, bool) {
	cells, ok := w[strconv.Itoa(day)]
	if !ok {
		return Cell{}, false
	}
	c, ok := cells[key]
	return c, ok
}

// Set stores c at day/key.
func (w Week) Set(day int, key string, c Cell) {
	dk := strconv.Itoa(day)
	if w[dk] == nil {
		w[dk] = map[string]Cell{}
	}
	w[dk][key] = c
}

// Delete removes the cell at day/key.
func (w Week) Delete(day int, key string) {
	delete(w[strconv.Itoa(day)], key)
}

// Clone returns a deep copy of w. A nil week clones to an empty week.
func (w Week) Clone() Week {
	out := NewWeek()
	for dk, cells := range w {
		day := make(map[string]Cell, len(cells))
		for k, c := range cells {
			day[k] = c
		}
		out[dk] = day
	}
	return out
}

// Len counts stored non-empty cells.
func (w Week) Len() int {
	n := 0
	for _, cells := range w {
		for _, c := range cells {
			if !c.IsEmpty() {
				n++
			}
		}
	}
	return n
}

// FillRange sets text on every half-hour slot of day from start up to endExcl.
func FillRange(w Week, day int, start, endExcl, text string) error {
	keys, err := grid.TimesBetween(start, endExcl)
	if err != nil {
		return err
	}
	for _, k := range keys {
		w.Set(day, k, Cell{Text: text})
	}
	return nil
}

// DefaultTemplate returns the template used before the user saves one.
// It starts empty so new users are not seeded with predefined activities.
func DefaultTemplate() Week {
	return NewWeek()
}

// normalizeText trims whitespace the way an edited block is committed.
func normalizeText(s string) string {
	return strings.TrimSpace(s)
}
