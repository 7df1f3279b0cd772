// Package swatch draws a single habit state as a coloured glyph.
package swatch

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/theme"
)

type Shape int

const (
	// Square is the small rounded cell used in the summary grid.
	Square Shape = iota
	// Circle is the swatch on a log card.
	Circle
	// LargeCircle is used by the debug palette.
	LargeCircle
)

func (s Shape) Glyph() string {
	switch s {
	case Circle:
		return "●"
	case LargeCircle:
		return "⬤"
	default:
		return "■"
	}
}

// Style returns the foreground style for state, layered over base so callers
// can keep a container background behind the glyph.
func Style(th theme.Theme, state models.HabitState, base lipgloss.Style) lipgloss.Style {
	return base.Foreground(th.StateColor(state))
}

func Render(th theme.Theme, state models.HabitState, shape Shape) string {
	return Style(th, state, lipgloss.NewStyle()).Render(shape.Glyph())
}

// RenderOn draws the swatch over a background colour.
func RenderOn(th theme.Theme, state models.HabitState, shape Shape, bg lipgloss.TerminalColor) string {
	return Style(th, state, lipgloss.NewStyle().Background(bg)).Render(shape.Glyph())
}
