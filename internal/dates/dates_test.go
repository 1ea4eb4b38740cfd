package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 12, 31, 15, 4, 5, 0, time.Local)
	}
}

func TestFormat(t *testing.T) {
	f := NewWithClock(fixedClock())

	tests := []struct {
		in   string
		want string
	}{
		{"", "Hoje"},
		{"2024-12-31", "Hoje"},
		{"2025-01-01", "Amanhã"},
		{"2024-03-15", "15/03/2024"},
		{"2025-01-02", "02/01/2025"},
		{"2024-13-45", "45/13/2024"},
		{"bad", "bad"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Format(tt.in), "Format(%q)", tt.in)
	}
}

func TestMinIsFixedAtConstruction(t *testing.T) {
	now := time.Date(2024, 5, 1, 23, 59, 0, 0, time.Local)
	f := NewWithClock(func() time.Time { return now })

	now = now.Add(2 * time.Minute)

	assert.Equal(t, "2024-05-01", f.Min())
	assert.Equal(t, "2024-05-02", f.Today())
}

func TestNormalize(t *testing.T) {
	f := NewWithClock(fixedClock())

	assert.Equal(t, "2024-12-31", f.Normalize(""))
	assert.Equal(t, "2026-02-03", f.Normalize("2026-02-03"))
}
