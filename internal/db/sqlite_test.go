package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/weekgrid/internal/grid"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

func TestPutAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, schedule.KeyNotes, []byte(`"hydrate 2-3 L/day"`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := repo.Get(ctx, schedule.KeyNotes)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if string(got) != `"hydrate 2-3 L/day"` {
		t.Errorf("got %s, want %q", got, `"hydrate 2-3 L/day"`)
	}
}

func TestGet_Missing(t *testing.T) {
	repo := newTestRepo(t)

	got, ok, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || got != nil {
		t.Errorf("expected missing key, got %q ok=%v", got, ok)
	}
}

func TestPut_Overwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, v := range []string{"true", "false"} {
		if err := repo.Put(ctx, schedule.KeyAutoSeed, []byte(v)); err != nil {
			t.Fatalf("Put(%s) failed: %v", v, err)
		}
	}

	got, _, err := repo.Get(ctx, schedule.KeyAutoSeed)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "false" {
		t.Errorf("got %s, want false", got)
	}
}

func TestOpenReadOnly(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	repo, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := repo.Put(ctx, schedule.KeyNotes, []byte(`"hello"`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	_ = repo.Close()

	ro, err := OpenReadOnly(path)
	if err != nil {
		t.Fatalf("OpenReadOnly failed: %v", err)
	}
	t.Cleanup(func() { _ = ro.Close() })

	got, ok, err := ro.Get(ctx, schedule.KeyNotes)
	if err != nil || !ok || string(got) != `"hello"` {
		t.Fatalf("Get = %s, %v, %v", got, ok, err)
	}
	if err := ro.Put(ctx, schedule.KeyNotes, []byte(`"bye"`)); err == nil {
		t.Error("expected write to a read-only database to fail")
	}
}

func TestOpenReadOnly_NotWeekgrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.db")
	other, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}
	if _, err := other.Exec(`CREATE TABLE notes (body TEXT)`); err != nil {
		t.Fatalf("create table failed: %v", err)
	}

	if _, err := OpenReadOnly(path); !errors.Is(err, ErrNotWeekgrid) {
		t.Fatalf("err = %v, want ErrNotWeekgrid", err)
	}

	var n int
	if err := other.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE name = 'kv'`).Scan(&n); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if n != 0 {
		t.Error("kv table was created in a foreign database")
	}
	_ = other.Close()
}

func TestUpdatedAt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	if err := repo.Put(ctx, schedule.KeyNotes, []byte(`""`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	ts, ok, err := repo.UpdatedAt(ctx, schedule.KeyNotes)
	if err != nil || !ok {
		t.Fatalf("UpdatedAt = %v, %v, %v", ts, ok, err)
	}
	if ts.Before(before.Truncate(time.Second)) {
		t.Errorf("updated_at %v is before %v", ts, before)
	}

	if _, ok, _ := repo.UpdatedAt(ctx, "missing"); ok {
		t.Error("expected missing key to report ok=false")
	}
}

func TestPlannerRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "weekgrid.db")

	repo, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	p := schedule.Load(ctx, repo, time.UTC)
	p.SetCellAt(ctx, "2024-07-14", grid.Slot{Day: 2, Time: "10:00"}, schedule.Cell{Text: "Gym", Done: true})
	p.SaveAsTemplate(ctx, "2024-07-14")
	p.SetAutoSeed(ctx, false)
	p.SetNotes(ctx, "protein 1.6-2.2 g/kg/day")
	if err := repo.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	p2 := schedule.Load(ctx, reopened, time.UTC)
	c, ok := p2.CellAt(ctx, "2024-07-14", grid.Slot{Day: 2, Time: "10:00"})
	if !ok || c.Text != "Gym" || !c.Done {
		t.Errorf("cell after reopen = %+v, ok=%v", c, ok)
	}
	if tc, _ := p2.Template().Cell(2, "10:00"); tc.Text != "Gym" {
		t.Errorf("template cell after reopen = %+v", tc)
	}
	if p2.AutoSeed() {
		t.Error("auto-seed should persist as false")
	}
	if p2.Notes() != "protein 1.6-2.2 g/kg/day" {
		t.Errorf("notes = %q", p2.Notes())
	}
}

func TestPlanner_CorruptValueFallsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, schedule.KeyScheduleData, []byte("not json")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := repo.Put(ctx, schedule.KeyNotes, []byte(`"still readable"`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	p := schedule.Load(ctx, repo, time.UTC)
	if len(p.WeekKeys()) != 0 {
		t.Errorf("expected empty schedule data, got %v", p.WeekKeys())
	}
	if p.Notes() != "still readable" {
		t.Errorf("notes = %q", p.Notes())
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
