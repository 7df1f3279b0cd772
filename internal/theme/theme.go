// Package theme maps habit states onto the two-tone grayscale palette.
//
// The three states read as an "amount done" ramp: "no" is the primary
// foreground at low opacity, "kinda" the muted secondary foreground and
// "yes" the primary foreground at full strength. No hue is involved, so the
// ramp holds under light and dark terminals alike.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/models"
)

// Tokens are the platform colours the views render with, for one appearance.
type Tokens struct {
	Background          colorful.Color
	PrimaryForeground   colorful.Color
	SecondaryForeground colorful.Color
	SecondaryBackground colorful.Color
	Tint                colorful.Color
}

var (
	LightTokens = Tokens{
		Background:          colorful.MustParseHex("#ffffff"),
		PrimaryForeground:   colorful.MustParseHex("#000000"),
		SecondaryForeground: colorful.MustParseHex("#8a8a8e"),
		SecondaryBackground: colorful.MustParseHex("#f2f2f7"),
		Tint:                colorful.MustParseHex("#007aff"),
	}

	DarkTokens = Tokens{
		Background:          colorful.MustParseHex("#000000"),
		PrimaryForeground:   colorful.MustParseHex("#ffffff"),
		SecondaryForeground: colorful.MustParseHex("#8d8d93"),
		SecondaryBackground: colorful.MustParseHex("#1c1c1e"),
		Tint:                colorful.MustParseHex("#0a84ff"),
	}
)

// WithOpacity composites c over the background at the given alpha. Terminals
// have no alpha channel, so opacity is flattened into a solid colour.
func (t Tokens) WithOpacity(c colorful.Color, alpha float64) colorful.Color {
	return t.Background.BlendRgb(c, alpha).Clamped()
}

// StateColor returns the solid colour for s under these tokens.
func (t Tokens) StateColor(s models.HabitState) colorful.Color {
	switch s {
	case models.StateKinda:
		return t.SecondaryForeground
	case models.StateYes:
		return t.PrimaryForeground
	default:
		return t.WithOpacity(t.PrimaryForeground, constants.NoStateOpacity)
	}
}

// Theme resolves tokens for the configured appearance.
type Theme struct {
	Light      Tokens
	Dark       Tokens
	Appearance constants.Appearance
}

func New(appearance constants.Appearance) Theme {
	switch appearance {
	case constants.AppearanceLight, constants.AppearanceDark:
	default:
		appearance = constants.AppearanceAuto
	}
	return Theme{
		Light:      LightTokens,
		Dark:       DarkTokens,
		Appearance: appearance,
	}
}

// Default follows the terminal background.
func Default() Theme {
	return New(constants.AppearanceAuto)
}

// adaptive picks one side of the palette, or lets lipgloss detect the
// terminal background when the appearance is auto.
func (t Theme) adaptive(pick func(Tokens) colorful.Color) lipgloss.TerminalColor {
	switch t.Appearance {
	case constants.AppearanceLight:
		return lipgloss.Color(pick(t.Light).Hex())
	case constants.AppearanceDark:
		return lipgloss.Color(pick(t.Dark).Hex())
	default:
		return lipgloss.AdaptiveColor{
			Light: pick(t.Light).Hex(),
			Dark:  pick(t.Dark).Hex(),
		}
	}
}

func (t Theme) StateColor(s models.HabitState) lipgloss.TerminalColor {
	return t.adaptive(func(tk Tokens) colorful.Color { return tk.StateColor(s) })
}

func (t Theme) Primary() lipgloss.TerminalColor {
	return t.adaptive(func(tk Tokens) colorful.Color { return tk.PrimaryForeground })
}

func (t Theme) Secondary() lipgloss.TerminalColor {
	return t.adaptive(func(tk Tokens) colorful.Color { return tk.SecondaryForeground })
}

func (t Theme) SecondaryBackground() lipgloss.TerminalColor {
	return t.adaptive(func(tk Tokens) colorful.Color { return tk.SecondaryBackground })
}

func (t Theme) Tint() lipgloss.TerminalColor {
	return t.adaptive(func(tk Tokens) colorful.Color { return tk.Tint })
}

// Describe explains how the colour of s is derived, for the debug palette.
func Describe(s models.HabitState) string {
	switch s {
	case models.StateKinda:
		return "secondary-foreground (medium)"
	case models.StateYes:
		return "primary-foreground (strongest)"
	default:
		return "primary-foreground × 0.20 (lightest)"
	}
}
