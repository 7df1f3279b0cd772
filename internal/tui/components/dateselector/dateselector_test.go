package dateselector

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/theme"
)

var dec16 = models.NewDateKey(2024, 12, 16)

func TestNavigation(t *testing.T) {
	tests := []struct {
		name        string
		allowFuture bool
		keys        []tea.KeyMsg
		want        models.DateKey
	}{
		{
			name: "previous",
			keys: []tea.KeyMsg{{Type: tea.KeyLeft}},
			want: dec16.AddDays(-1),
		},
		{
			name: "previous then next",
			keys: []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}},
			want: dec16,
		},
		{
			name: "vim keys",
			keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("h")}, {Type: tea.KeyRunes, Runes: []rune("h")}, {Type: tea.KeyRunes, Runes: []rune("l")}},
			want: dec16.AddDays(-1),
		},
		{
			name: "next clamped at today",
			keys: []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}},
			want: dec16,
		},
		{
			name:        "next into the future when allowed",
			allowFuture: true,
			keys:        []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}},
			want:        dec16.AddDays(2),
		},
		{
			name: "jump to today",
			keys: []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyLeft}, {Type: tea.KeyRunes, Runes: []rune("t")}},
			want: dec16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(dec16, tt.allowFuture)
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			if m.Selected() != tt.want {
				t.Errorf("Selected() = %v, want %v", m.Selected(), tt.want)
			}
		})
	}
}

func TestUpdate_EmitsChangedOnlyOnMove(t *testing.T) {
	m := New(dec16, false)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd != nil {
		t.Error("clamped next should not emit ChangedMsg")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if cmd == nil {
		t.Fatal("previous should emit ChangedMsg")
	}
	msg, ok := cmd().(ChangedMsg)
	if !ok || msg.Date != dec16.AddDays(-1) {
		t.Errorf("cmd() = %#v", msg)
	}
}

func TestMonthAndYearBoundaries(t *testing.T) {
	m := New(models.NewDateKey(2025, 1, 1), false)
	m.Prev()
	if m.Selected() != models.NewDateKey(2024, 12, 31) {
		t.Errorf("Prev() from Jan 1 = %v", m.Selected())
	}
	m.Next()
	if m.Selected() != models.NewDateKey(2025, 1, 1) {
		t.Errorf("Next() from Dec 31 = %v", m.Selected())
	}
}

func TestSetToday_KeepsSelection(t *testing.T) {
	m := New(dec16, false)
	m.Prev()
	m.SetToday(dec16.AddDays(1))
	if m.Selected() != dec16.AddDays(-1) {
		t.Errorf("SetToday() moved the selection to %v", m.Selected())
	}
	if !m.CanNext() {
		t.Error("CanNext() should be true before today")
	}
}

func TestView(t *testing.T) {
	out := New(models.NewDateKey(2025, 12, 16), false).View(theme.Default())
	for _, want := range []string{"‹", "Tues, Dec 16th", "›"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() = %q, missing %q", out, want)
		}
	}
}
