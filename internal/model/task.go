package model

import (
	"fmt"

	"github.com/google/uuid"
)

// DateLayout is the ISO layout used for task dates.
const DateLayout = "2006-01-02"

// Column is the workflow stage a task belongs to.
type Column string

const (
	Todo    Column = "todo"
	Done    Column = "done"
	Pendent Column = "pendent"
)

// Columns returns the board columns in display order.
func Columns() []Column {
	return []Column{Todo, Done, Pendent}
}

// ParseColumn validates a column name. An empty name is todo.
func ParseColumn(name string) (Column, error) {
	switch Column(name) {
	case "", Todo:
		return Todo, nil
	case Done:
		return Done, nil
	case Pendent:
		return Pendent, nil
	}
	return "", fmt.Errorf("unknown column %q", name)
}

// Next returns the column a task advances to: todo -> done -> pendent -> todo.
func (c Column) Next() Column {
	switch c {
	case Todo:
		return Done
	case Done:
		return Pendent
	default:
		return Todo
	}
}

// Icon names the advance control icon shown for tasks in this column.
func (c Column) Icon() string {
	switch c {
	case Todo:
		return "clock"
	case Done:
		return "check"
	default:
		return "xmark"
	}
}

// Task is a single card on the board.
type Task struct {
	ID          string
	Title       string
	Description string
	Date        string
	Column      Column
}

// NewTask creates a task with a fresh identifier.
func NewTask(title, description, date string, column Column) Task {
	if column == "" {
		column = Todo
	}
	return Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Date:        date,
		Column:      column,
	}
}

// IsDueToday reports whether the task falls on today (YYYY-MM-DD) or has
// no date. Unset dates are stored as today.
func (t Task) IsDueToday(today string) bool {
	return t.Date == "" || t.Date == today
}

// IsOverdue reports whether the task is past its date and still open.
func (t Task) IsOverdue(today string) bool {
	if t.Date == "" || t.Column == Done {
		return false
	}
	return t.Date < today
}
