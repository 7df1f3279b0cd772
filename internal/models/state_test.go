package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestHabitState_CycleHasOrderThree(t *testing.T) {
	for _, s := range AllStates() {
		got := s
		got.Cycle()
		got.Cycle()
		got.Cycle()
		if got != s {
			t.Errorf("cycling %v three times = %v, want %v", s, got, s)
		}
	}
}

func TestHabitState_Next(t *testing.T) {
	tests := []struct {
		name  string
		state HabitState
		want  HabitState
	}{
		{name: "no to kinda", state: StateNo, want: StateKinda},
		{name: "kinda to yes", state: StateKinda, want: StateYes},
		{name: "yes to no", state: StateYes, want: StateNo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.state
			if got := tt.state.Next(); got != tt.want {
				t.Errorf("%v.Next() = %v, want %v", tt.state, got, tt.want)
			}
			if tt.state != original {
				t.Errorf("Next() mutated receiver: %v, want %v", tt.state, original)
			}

			cycled := tt.state
			cycled.Cycle()
			if cycled != tt.state.Next() {
				t.Errorf("Cycle() = %v, Next() = %v", cycled, tt.state.Next())
			}
		})
	}
}

func TestHabitState_Labels(t *testing.T) {
	want := []string{"NO", "KINDA", "YES"}
	for i, s := range AllStates() {
		if s.Label() != want[i] {
			t.Errorf("AllStates()[%d].Label() = %q, want %q", i, s.Label(), want[i])
		}
	}
}

func TestHabitState_ZeroValueIsNo(t *testing.T) {
	var s HabitState
	if s != StateNo {
		t.Errorf("zero HabitState = %v, want no", s)
	}
}

func TestHabitState_SerializationRoundTrip(t *testing.T) {
	states := AllStates()
	tokens := make([]string, len(states))
	for i, s := range states {
		tokens[i] = s.String()
	}

	wantTokens := []string{"no", "kinda", "yes"}
	for i := range wantTokens {
		if tokens[i] != wantTokens[i] {
			t.Errorf("token[%d] = %q, want %q", i, tokens[i], wantTokens[i])
		}
	}

	for i, tok := range tokens {
		parsed, err := ParseHabitState(tok)
		if err != nil {
			t.Fatalf("ParseHabitState(%q) returned error: %v", tok, err)
		}
		if parsed != states[i] {
			t.Errorf("ParseHabitState(%q) = %v, want %v", tok, parsed, states[i])
		}
	}
}

func TestParseHabitState_Unknown(t *testing.T) {
	for _, tok := range []string{"maybe", "", "NO", "Yes", " no"} {
		if _, err := ParseHabitState(tok); !errors.Is(err, ErrUnknownState) {
			t.Errorf("ParseHabitState(%q) error = %v, want ErrUnknownState", tok, err)
		}
	}
}

func TestHabitState_JSON(t *testing.T) {
	data, err := json.Marshal(AllStates())
	if err != nil {
		t.Fatalf("json.Marshal() returned error: %v", err)
	}
	if string(data) != `["no","kinda","yes"]` {
		t.Errorf("json.Marshal() = %s", data)
	}

	var decoded []HabitState
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() returned error: %v", err)
	}
	for i, s := range AllStates() {
		if decoded[i] != s {
			t.Errorf("decoded[%d] = %v, want %v", i, decoded[i], s)
		}
	}

	if err := json.Unmarshal([]byte(`["maybe"]`), &decoded); err == nil {
		t.Error("json.Unmarshal() accepted unknown token")
	}
}

func TestHabitState_MarshalRejectsOutOfRange(t *testing.T) {
	if _, err := HabitState(7).MarshalText(); err == nil {
		t.Error("MarshalText() accepted out-of-range state")
	}
}
