package models

import (
	"errors"
	"fmt"
)

// HabitState is the degree to which a habit was done on a given day.
// The zero value is StateNo, so an unset state reads as "not done".
type HabitState uint8

const (
	StateNo HabitState = iota
	StateKinda
	StateYes
)

// ErrUnknownState is returned when a token does not name a HabitState.
var ErrUnknownState = errors.New("unknown habit state")

// AllStates returns every state in canonical order.
func AllStates() []HabitState {
	return []HabitState{StateNo, StateKinda, StateYes}
}

// ParseHabitState parses one of the lowercase tokens "no", "kinda" or "yes".
func ParseHabitState(s string) (HabitState, error) {
	switch s {
	case "no":
		return StateNo, nil
	case "kinda":
		return StateKinda, nil
	case "yes":
		return StateYes, nil
	default:
		return StateNo, fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
}

// String returns the serialization token.
func (s HabitState) String() string {
	switch s {
	case StateKinda:
		return "kinda"
	case StateYes:
		return "yes"
	default:
		return "no"
	}
}

// Label returns the uppercase display label.
func (s HabitState) Label() string {
	switch s {
	case StateKinda:
		return "KINDA"
	case StateYes:
		return "YES"
	default:
		return "NO"
	}
}

// Next returns the state a tap advances to: no -> kinda -> yes -> no.
func (s HabitState) Next() HabitState {
	switch s {
	case StateNo:
		return StateKinda
	case StateKinda:
		return StateYes
	default:
		return StateNo
	}
}

// Cycle advances s in place.
func (s *HabitState) Cycle() {
	*s = s.Next()
}

// Valid reports whether s is one of the three defined states.
func (s HabitState) Valid() bool {
	return s <= StateYes
}

func (s HabitState) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *HabitState) UnmarshalText(text []byte) error {
	parsed, err := ParseHabitState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
