package palette

import (
	"strings"
	"testing"

	"github.com/julianstephens/habits/internal/theme"
)

func TestRows_CanonicalOrder(t *testing.T) {
	rows := Rows()
	want := []string{"NO", "KINDA", "YES"}
	if len(rows) != len(want) {
		t.Fatalf("palette has %d rows, want %d", len(rows), len(want))
	}
	for i, label := range want {
		if rows[i].Label != label {
			t.Errorf("row %d = %s, want %s", i, rows[i].Label, label)
		}
		if rows[i].Description == "" {
			t.Errorf("row %d has no description", i)
		}
	}
}

func TestView_ListsLabelsInOrder(t *testing.T) {
	out := View(theme.Default())

	no := strings.Index(out, "NO ")
	kinda := strings.Index(out, "KINDA")
	yes := strings.Index(out, "YES")
	if no < 0 || kinda < 0 || yes < 0 {
		t.Fatalf("palette view missing a label:\n%s", out)
	}
	if !(no < kinda && kinda < yes) {
		t.Errorf("labels out of order: NO@%d KINDA@%d YES@%d", no, kinda, yes)
	}
	if got := strings.Count(out, "⬤"); got != 3 {
		t.Errorf("palette view has %d swatches, want 3", got)
	}
}
