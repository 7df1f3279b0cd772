package errors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("failed to load habit log: %w", errors.New("database is locked")),
			expected: "Error: failed to load habit log: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	if code := Report(&buf, nil); code != 0 || buf.Len() != 0 {
		t.Errorf("Report(nil) = %d, wrote %q", code, buf.String())
	}

	code := Report(&buf, errors.New("unknown habit state: \"maybe\""))
	if code != 1 {
		t.Errorf("Report() exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "Error: unknown habit state: \"maybe\"\n" {
		t.Errorf("Report() wrote %q", got)
	}
}
