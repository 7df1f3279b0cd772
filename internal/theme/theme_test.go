package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/models"
)

func TestStateColor_Distinct(t *testing.T) {
	for _, tc := range []struct {
		name   string
		tokens Tokens
	}{
		{name: "light", tokens: LightTokens},
		{name: "dark", tokens: DarkTokens},
	} {
		t.Run(tc.name, func(t *testing.T) {
			seen := make(map[string]models.HabitState)
			for _, s := range models.AllStates() {
				hex := tc.tokens.StateColor(s).Hex()
				if prev, ok := seen[hex]; ok {
					t.Errorf("%v and %v share colour %s", prev, s, hex)
				}
				seen[hex] = s
			}
		})
	}
}

func TestStateColor_IntensityRamp(t *testing.T) {
	for _, tc := range []struct {
		name   string
		tokens Tokens
	}{
		{name: "light", tokens: LightTokens},
		{name: "dark", tokens: DarkTokens},
	} {
		t.Run(tc.name, func(t *testing.T) {
			bg := tc.tokens.Background
			no := tc.tokens.StateColor(models.StateNo).DistanceRgb(bg)
			kinda := tc.tokens.StateColor(models.StateKinda).DistanceRgb(bg)
			yes := tc.tokens.StateColor(models.StateYes).DistanceRgb(bg)
			if !(no < kinda && kinda < yes) {
				t.Errorf("contrast against background not monotonic: no=%.3f kinda=%.3f yes=%.3f", no, kinda, yes)
			}
		})
	}
}

func TestStateColor_NoIsTwentyPercentPrimary(t *testing.T) {
	tests := []struct {
		tokens Tokens
		want   string
	}{
		{tokens: LightTokens, want: "#cccccc"},
		{tokens: DarkTokens, want: "#333333"},
	}
	for _, tt := range tests {
		if got := tt.tokens.StateColor(models.StateNo).Hex(); got != tt.want {
			t.Errorf("StateColor(no) = %s, want %s", got, tt.want)
		}
	}
}

func TestTheme_Appearance(t *testing.T) {
	auto := Default().StateColor(models.StateYes)
	if _, ok := auto.(lipgloss.AdaptiveColor); !ok {
		t.Errorf("auto appearance returned %T, want lipgloss.AdaptiveColor", auto)
	}

	dark := New(constants.AppearanceDark).StateColor(models.StateYes)
	if dark != lipgloss.Color("#ffffff") {
		t.Errorf("dark StateColor(yes) = %v, want #ffffff", dark)
	}

	light := New(constants.AppearanceLight).StateColor(models.StateYes)
	if light != lipgloss.Color("#000000") {
		t.Errorf("light StateColor(yes) = %v, want #000000", light)
	}

	if New("sepia").Appearance != constants.AppearanceAuto {
		t.Error("unknown appearance should fall back to auto")
	}
}

func TestDescribe(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range models.AllStates() {
		d := Describe(s)
		if d == "" || seen[d] {
			t.Errorf("Describe(%v) = %q is empty or duplicated", s, d)
		}
		seen[d] = true
	}
}
