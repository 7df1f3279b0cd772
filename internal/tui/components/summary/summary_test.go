package summary

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/habitlog"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/theme"
)

var dec16 = models.NewDateKey(2024, 12, 16)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRows_WindowEndsAtSelectedDate(t *testing.T) {
	log := habitlog.New(nil)
	_ = log.Set("h", dec16, models.StateYes)
	_ = log.Set("h", dec16.AddDays(-1), models.StateYes)
	_ = log.Set("h", dec16.AddDays(-2), models.StateKinda)

	m := New(15)
	rows := m.Rows(log, []models.Habit{{ID: "h", Name: "H"}}, dec16)
	if len(rows) != 1 || len(rows[0].States) != 15 {
		t.Fatalf("Rows() = %+v", rows)
	}
	got := rows[0].States[12:]
	want := []models.HabitState{models.StateKinda, models.StateYes, models.StateYes}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("States[%d] = %v, want %v", 12+i, got[i], want[i])
		}
	}
}

func TestView_RowsAligned(t *testing.T) {
	habits := []models.Habit{
		{ID: "a", Name: "Run"},
		{ID: "b", Name: "A very long habit name"},
		{ID: "c", Name: "Meditate"},
	}
	out := New(15).View(theme.Default(), habitlog.New(nil), habits, dec16)

	lines := strings.Split(out, "\n")
	// top border, three rows, bottom border
	if len(lines) != 5 {
		t.Fatalf("grid has %d lines, want 5:\n%s", len(lines), out)
	}
	width := lipgloss.Width(lines[1])
	for _, l := range lines[1:4] {
		if lipgloss.Width(l) != width {
			t.Errorf("row widths differ: %d vs %d", lipgloss.Width(l), width)
		}
		if got := strings.Count(l, "■"); got != 15 {
			t.Errorf("row has %d cells, want 15: %q", got, l)
		}
		if cellColumn(l) != cellColumn(lines[1]) {
			t.Errorf("first cell not aligned across rows")
		}
	}
	if !strings.Contains(out, "A very lo…") {
		t.Errorf("long name not truncated to the name column:\n%s", out)
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Run", want: "Run"},
		{in: "Exercise!!", want: "Exercise!!"},
		{in: "Exercise!!!", want: "Exercise…"},
	}
	for _, tt := range tests {
		got := TruncateName(tt.in)
		if got != tt.want {
			t.Errorf("TruncateName(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if lipgloss.Width(got) > constants.NameColumnWidth {
			t.Errorf("TruncateName(%q) is wider than the column", tt.in)
		}
	}
}

func TestScroll_NarrowWidth(t *testing.T) {
	m := New(15)
	// 4 for the frame, 11 for the name column, room for 5 cells with gaps.
	m.SetWidth(4 + constants.NameColumnWidth + 1 + 9)
	if got := m.VisibleDays(); got != 5 {
		t.Fatalf("VisibleDays() = %d, want 5", got)
	}

	for i := 0; i < 20; i++ {
		m, _ = m.Update(keyMsg("["))
	}
	if m.Offset() != 10 {
		t.Errorf("Offset() after scrolling back = %d, want 10", m.Offset())
	}
	m, _ = m.Update(keyMsg("]"))
	if m.Offset() != 9 {
		t.Errorf("Offset() after one step forward = %d, want 9", m.Offset())
	}

	log := habitlog.New(nil)
	_ = log.Set("h", dec16, models.StateYes)
	out := m.View(theme.Default(), log, []models.Habit{{ID: "h", Name: "H"}}, dec16)
	if got := strings.Count(out, "■"); got != 5 {
		t.Errorf("scrolled view shows %d cells, want 5", got)
	}

	m.SetWidth(200)
	if m.Offset() != 0 || m.VisibleDays() != 15 {
		t.Errorf("wide terminal: Offset() = %d, VisibleDays() = %d", m.Offset(), m.VisibleDays())
	}
}

// cellColumn is the display column of the first cell in a rendered row.
func cellColumn(line string) int {
	return lipgloss.Width(line[:strings.Index(line, "■")])
}
