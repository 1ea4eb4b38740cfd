// Package board applies user actions to the task list and persists it.
package board

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nissyi-gh/quadro/internal/logging"
	"github.com/nissyi-gh/quadro/internal/model"
)

// ErrTaskNotFound is returned when an action targets a task that is gone.
var ErrTaskNotFound = errors.New("task not found")

// Values are the editable fields of a task.
type Values struct {
	Title       string
	Description string
	Date        string
}

// Board wraps the task list with the actions available on each card.
type Board struct {
	tasks  *model.Board
	logger *log.Logger
}

// New returns an empty board. A nil logger discards output.
func New(logger *log.Logger) *Board {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Board{tasks: model.NewBoard(), logger: logger}
}

// Tasks exposes the underlying task list for rendering.
func (b *Board) Tasks() *model.Board {
	return b.tasks
}

// Add creates a task in column, or todo when column is empty.
func (b *Board) Add(v Values, column model.Column) model.Task {
	t := model.NewTask(v.Title, v.Description, v.Date, column)
	b.tasks.Add(t)
	b.logger.Debug("task added", "id", t.ID, "column", t.Column)
	return t
}

// Delete removes a task. It reports whether anything was removed.
func (b *Board) Delete(id string) bool {
	ok := b.tasks.Remove(id)
	if ok {
		b.logger.Debug("task deleted", "id", id)
	}
	return ok
}

// Advance moves a task to the next column in the todo -> done -> pendent
// cycle and returns the column it landed in.
func (b *Board) Advance(id string) (model.Column, error) {
	t, ok := b.tasks.Get(id)
	if !ok {
		return "", fmt.Errorf("advance %s: %w", id, ErrTaskNotFound)
	}
	next := t.Column.Next()
	b.tasks.Move(id, next)
	b.logger.Debug("task advanced", "id", id, "from", t.Column, "to", next)
	return next, nil
}

// EditSession is an edit bound to the task whose edit control was used.
type EditSession struct {
	board *Board
	id    string
	orig  Values
}

// BeginEdit opens an edit session for a task.
func (b *Board) BeginEdit(id string) (*EditSession, error) {
	t, ok := b.tasks.Get(id)
	if !ok {
		return nil, fmt.Errorf("edit %s: %w", id, ErrTaskNotFound)
	}
	return &EditSession{
		board: b,
		id:    id,
		orig:  Values{Title: t.Title, Description: t.Description, Date: t.Date},
	}, nil
}

// TaskID returns the task being edited.
func (s *EditSession) TaskID() string {
	return s.id
}

// Original returns the task fields as they were when the session began.
func (s *EditSession) Original() Values {
	return s.orig
}

// Commit writes v to the task in place. The task keeps its id and column.
func (s *EditSession) Commit(v Values) error {
	ok := s.board.tasks.Update(s.id, func(t *model.Task) {
		t.Title = v.Title
		t.Description = v.Description
		t.Date = v.Date
	})
	if !ok {
		return fmt.Errorf("edit %s: %w", s.id, ErrTaskNotFound)
	}
	s.board.logger.Debug("task edited", "id", s.id)
	return nil
}
