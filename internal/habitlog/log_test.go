package habitlog

import (
	"errors"
	"testing"

	"github.com/julianstephens/habits/internal/models"
)

type recordingPersister struct {
	saved []models.LogEntry
	err   error
}

func (p *recordingPersister) SaveEntry(e models.LogEntry) error {
	if p.err != nil {
		return p.err
	}
	p.saved = append(p.saved, e)
	return nil
}

func (p *recordingPersister) GetAllEntries() ([]models.LogEntry, error) {
	return p.saved, p.err
}

var (
	dec14 = models.NewDateKey(2024, 12, 14)
	dec15 = models.NewDateKey(2024, 12, 15)
	dec16 = models.NewDateKey(2024, 12, 16)
)

func TestGet_DefaultsToNo(t *testing.T) {
	l := New(nil)
	if got := l.Get("h1", dec16); got != models.StateNo {
		t.Errorf("Get() on empty log = %v, want no", got)
	}
	if _, ok := l.Lookup("h1", dec16); ok {
		t.Error("Lookup() reported an entry on an empty log")
	}
}

func TestSet_ExplicitNoIsRecorded(t *testing.T) {
	l := New(nil)
	if err := l.Set("h1", dec16, models.StateNo); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}

	state, ok := l.Lookup("h1", dec16)
	if !ok {
		t.Fatal("Lookup() did not report explicit no")
	}
	if state != models.StateNo {
		t.Errorf("Lookup() = %v, want no", state)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestSet_RejectsInvalidState(t *testing.T) {
	l := New(nil)
	if err := l.Set("h1", dec16, models.HabitState(9)); !errors.Is(err, models.ErrUnknownState) {
		t.Errorf("Set() error = %v, want ErrUnknownState", err)
	}
	if l.Len() != 0 {
		t.Error("invalid state should not be stored")
	}
}

func TestToggle_CyclesOnlyTargetEntry(t *testing.T) {
	l := New(nil)
	_ = l.Set("h1", dec15, models.StateYes)
	_ = l.Set("h2", dec16, models.StateKinda)

	want := []models.HabitState{models.StateKinda, models.StateYes, models.StateNo}
	for i, w := range want {
		got, err := l.Toggle("h1", dec16)
		if err != nil {
			t.Fatalf("Toggle() #%d returned error: %v", i+1, err)
		}
		if got != w {
			t.Errorf("Toggle() #%d = %v, want %v", i+1, got, w)
		}
		if l.Get("h1", dec16) != w {
			t.Errorf("Get() after toggle #%d = %v, want %v", i+1, l.Get("h1", dec16), w)
		}
	}

	if l.Get("h1", dec15) != models.StateYes {
		t.Error("toggle changed a different day")
	}
	if l.Get("h2", dec16) != models.StateKinda {
		t.Error("toggle changed a different habit")
	}
}

func TestRecentWindow_Length(t *testing.T) {
	l := New(nil)
	for _, n := range []int{0, 1, 7, 15, 60} {
		if got := len(l.RecentWindow("h1", dec16, n)); got != n {
			t.Errorf("len(RecentWindow(n=%d)) = %d", n, got)
		}
	}
}

func TestRecentWindow_LastCellIsEndDate(t *testing.T) {
	l := New(nil)
	for _, s := range models.AllStates() {
		_ = l.Set("h1", dec16, s)
		w := l.RecentWindow("h1", dec16, 15)
		if w[14] != l.Get("h1", dec16) {
			t.Errorf("window[n-1] = %v, want %v", w[14], l.Get("h1", dec16))
		}
	}
}

func TestRecentWindow_Contents(t *testing.T) {
	l := New(nil)
	_ = l.Set("H", dec16, models.StateYes)
	_ = l.Set("H", dec15, models.StateYes)
	_ = l.Set("H", dec14, models.StateKinda)

	got := l.RecentWindow("H", dec16, 15)

	want := make([]models.HabitState, 12)
	want = append(want, models.StateKinda, models.StateYes, models.StateYes)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("window[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRecentWindow_CrossesMonthBoundary(t *testing.T) {
	l := New(nil)
	_ = l.Set("h1", models.NewDateKey(2024, 11, 30), models.StateYes)

	w := l.RecentWindow("h1", models.NewDateKey(2024, 12, 1), 2)
	if w[0] != models.StateYes || w[1] != models.StateNo {
		t.Errorf("RecentWindow() = %v, want [yes no]", w)
	}
}

func TestRecentWindow_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RecentWindow(n=-1) did not panic")
		}
	}()
	New(nil).RecentWindow("h1", dec16, -1)
}

func TestPersistence_WriteThrough(t *testing.T) {
	p := &recordingPersister{}
	l := New(p)

	if _, err := l.Toggle("h1", dec16); err != nil {
		t.Fatalf("Toggle() returned error: %v", err)
	}
	if len(p.saved) != 1 {
		t.Fatalf("persisted %d entries, want 1", len(p.saved))
	}
	if p.saved[0].State != models.StateKinda || p.saved[0].Day != dec16 {
		t.Errorf("persisted %+v", p.saved[0])
	}
}

func TestPersistence_FailureKeepsMemoryState(t *testing.T) {
	p := &recordingPersister{err: errors.New("disk full")}
	l := New(p)

	state, err := l.Toggle("h1", dec16)
	if !errors.Is(err, ErrPersist) {
		t.Fatalf("Toggle() error = %v, want ErrPersist", err)
	}
	if state != models.StateKinda {
		t.Errorf("Toggle() = %v, want kinda", state)
	}
	if l.Get("h1", dec16) != models.StateKinda {
		t.Error("in-memory state lost after persistence failure")
	}
}

func TestOpen_LoadsEntries(t *testing.T) {
	p := &recordingPersister{saved: []models.LogEntry{
		{HabitID: "h1", Day: dec15, State: models.StateYes},
		{HabitID: "h1", Day: dec16, State: models.StateNo},
	}}

	l, err := Open(p)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	if l.Get("h1", dec15) != models.StateYes {
		t.Error("loaded entry not visible")
	}
	if _, ok := l.Lookup("h1", dec16); !ok {
		t.Error("explicit no not loaded")
	}

	entries := l.Entries()
	if len(entries) != 2 || entries[0].Day != dec15 {
		t.Errorf("Entries() = %+v", entries)
	}
}
