package schedule

import (
	"context"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekgrid/internal/grid"
)

// Planner owns the session state: every visited week, the base template,
// the auto-seed flag and the notes. State is loaded once and written back
// after each change. Write failures are logged and otherwise ignored; the
// in-memory state stays authoritative for the session.
//
// A Planner is not safe for concurrent use.
type Planner struct {
	store     Store
	reference *time.Location

	weeks    map[string]Week
	template Week
	autoSeed bool
	notes    string
}

// Load reads every persisted key from store, substituting the default for
// any key that is missing or cannot be decoded. Week keys are computed in
// the reference location.
func Load(ctx context.Context, store Store, reference *time.Location) *Planner {
	if reference == nil {
		reference = time.Local
	}
	p := &Planner{
		store:     store,
		reference: reference,
		weeks:     map[string]Week{},
		template:  DefaultTemplate(),
		autoSeed:  true,
	}

	var weeks map[string]Week
	if ok := p.load(ctx, KeyScheduleData, &weeks); ok && weeks != nil {
		p.weeks = weeks
	}
	var template Week
	if ok := p.load(ctx, KeyBaseTemplate, &template); ok && template != nil {
		p.template = template.Clone()
	}
	var autoSeed bool
	if ok := p.load(ctx, KeyAutoSeed, &autoSeed); ok {
		p.autoSeed = autoSeed
	}
	var notes string
	if ok := p.load(ctx, KeyNotes, &notes); ok {
		p.notes = notes
	}

	log.Debugf("loaded planner state: %d weeks, auto-seed=%v", len(p.weeks), p.autoSeed)
	return p
}

func (p *Planner) load(ctx context.Context, key string, dst any) bool {
	if p.store == nil {
		return false
	}
	ok, err := loadJSON(ctx, p.store, key, dst)
	if err != nil {
		log.Warnf("failed to load %q, using default: %v", key, err)
		return false
	}
	return ok
}

func (p *Planner) persist(ctx context.Context, key string, v any) {
	if p.store == nil {
		return
	}
	if err := saveJSON(ctx, p.store, key, v); err != nil {
		log.Warnf("failed to save %q: %v", key, err)
	}
}

// Reference returns the location week keys are computed in.
func (p *Planner) Reference() *time.Location {
	return p.reference
}

// HasWeek reports whether key has been created already.
func (p *Planner) HasWeek(key string) bool {
	_, ok := p.weeks[key]
	return ok
}

// WeekKeys returns the keys of every stored week in ascending order.
func (p *Planner) WeekKeys() []string {
	keys := make([]string, 0, len(p.weeks))
	for k := range p.weeks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ensureWeek returns the live week for key, creating it on first access.
// New weeks are a copy of the template when auto-seed is on, else empty.
func (p *Planner) ensureWeek(ctx context.Context, key string) Week {
	if w, ok := p.weeks[key]; ok && w != nil {
		return w
	}
	var w Week
	if p.autoSeed {
		w = p.template.Clone()
		log.Debugf("seeded week %s from template", key)
	} else {
		w = NewWeek()
		log.Debugf("created empty week %s", key)
	}
	p.weeks[key] = w
	p.persist(ctx, KeyScheduleData, p.weeks)
	return w
}

// Week returns a copy of the week stored under key, creating it first if
// it has never been seen.
func (p *Planner) Week(ctx context.Context, key string) Week {
	return p.ensureWeek(ctx, key).Clone()
}

// CellAt returns the cell stored at slot in week key.
func (p *Planner) CellAt(ctx context.Context, key string, slot grid.Slot) (Cell, bool) {
	return p.ensureWeek(ctx, key).Cell(slot.Day, slot.Time)
}

// SetCellAt stores c at slot in week key. Empty cells are removed.
func (p *Planner) SetCellAt(ctx context.Context, key string, slot grid.Slot, c Cell) {
	w := p.ensureWeek(ctx, key)
	c.Text = normalizeText(c.Text)
	if c.IsEmpty() {
		w.Delete(slot.Day, slot.Time)
	} else {
		w.Set(slot.Day, slot.Time, c)
	}
	p.persist(ctx, KeyScheduleData, p.weeks)
}

// Template returns a copy of the base template.
func (p *Planner) Template() Week {
	return p.template.Clone()
}

// SaveAsTemplate replaces the base template with a copy of week key.
func (p *Planner) SaveAsTemplate(ctx context.Context, key string) {
	p.template = p.ensureWeek(ctx, key).Clone()
	log.Debugf("saved week %s as template (%d cells)", key, p.template.Len())
	p.persist(ctx, KeyBaseTemplate, p.template)
}

// ResetToTemplate replaces week key with a copy of the base template.
func (p *Planner) ResetToTemplate(ctx context.Context, key string) {
	p.weeks[key] = p.template.Clone()
	log.Debugf("reset week %s to template", key)
	p.persist(ctx, KeyScheduleData, p.weeks)
}

// AutoSeed reports whether new weeks are seeded from the template.
func (p *Planner) AutoSeed() bool {
	return p.autoSeed
}

// SetAutoSeed changes whether new weeks are seeded from the template.
// Weeks that already exist are not affected.
func (p *Planner) SetAutoSeed(ctx context.Context, on bool) {
	p.autoSeed = on
	p.persist(ctx, KeyAutoSeed, on)
}

// Notes returns the free-text notes.
func (p *Planner) Notes() string {
	return p.notes
}

// SetNotes replaces the free-text notes.
func (p *Planner) SetNotes(ctx context.Context, notes string) {
	p.notes = notes
	p.persist(ctx, KeyNotes, notes)
}

// ImportWeeks copies weeks into the planner. Existing weeks are kept unless
// overwrite is set. It returns the number of weeks written.
func (p *Planner) ImportWeeks(ctx context.Context, weeks map[string]Week, overwrite bool) int {
	n := 0
	for key, w := range weeks {
		if _, exists := p.weeks[key]; exists && !overwrite {
			continue
		}
		p.weeks[key] = w.Clone()
		n++
	}
	if n > 0 {
		log.Debugf("imported %d weeks", n)
		p.persist(ctx, KeyScheduleData, p.weeks)
	}
	return n
}

// FillTemplate sets text on the template slots of day from start up to
// endExcl. Template slots are in reference time. Empty text clears them.
func (p *Planner) FillTemplate(ctx context.Context, day int, start, endExcl, text string) error {
	text = normalizeText(text)
	if text == "" {
		keys, err := grid.TimesBetween(start, endExcl)
		if err != nil {
			return err
		}
		for _, k := range keys {
			p.template.Delete(day, k)
		}
	} else if err := FillRange(p.template, day, start, endExcl, text); err != nil {
		return err
	}
	p.persist(ctx, KeyBaseTemplate, p.template)
	return nil
}
