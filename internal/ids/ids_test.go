package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty", nil, "newTask-1"},
		{"after highest", []string{"newTask-1", "newTask-7", "newTask-3"}, "newTask-8"},
		{"other bases ignored", []string{"collapseTask-9", "todo"}, "newTask-1"},
		{"non numeric suffix ignored", []string{"newTask-x", "newTask-2"}, "newTask-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Generator
			assert.Equal(t, tt.want, g.Next("newTask", tt.existing))
		})
	}
}

func TestNextTwiceWithoutUse(t *testing.T) {
	var g Generator
	existing := []string{"newTask-4"}

	first := g.Next("newTask", existing)
	second := g.Next("newTask", existing)

	assert.Equal(t, "newTask-5", first)
	assert.Equal(t, "newTask-6", second)
	assert.NotEqual(t, first, second)
}

func TestNextAfterUse(t *testing.T) {
	var g Generator
	existing := []string{}

	for i := 1; i <= 3; i++ {
		id := g.Next("collapseTask", existing)
		assert.Equal(t, Format("collapseTask", i), id)
		existing = append(existing, id)
	}
}

func TestMax(t *testing.T) {
	assert.Equal(t, 0, Max("newTask", nil))
	assert.Equal(t, 12, Max("newTask", []string{"newTask-12", "newTask-3"}))
	assert.Equal(t, 0, Max("newTask", []string{"newTasks-4"}))
}
