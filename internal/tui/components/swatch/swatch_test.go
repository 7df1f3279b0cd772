package swatch

import (
	"strings"
	"testing"

	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/theme"
)

func TestShape_Glyph(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range []Shape{Square, Circle, LargeCircle} {
		g := s.Glyph()
		if g == "" || seen[g] {
			t.Errorf("Shape(%d).Glyph() = %q is empty or reused", s, g)
		}
		seen[g] = true
	}
}

func TestRender_ContainsGlyph(t *testing.T) {
	th := theme.Default()
	for _, state := range models.AllStates() {
		if out := Render(th, state, Circle); !strings.Contains(out, "●") {
			t.Errorf("Render(%v) = %q", state, out)
		}
	}
}
