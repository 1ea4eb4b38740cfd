// Package form implements the add/edit task dialog logic.
package form

import (
	"errors"
	"strings"
	"time"

	"github.com/nissyi-gh/quadro/internal/board"
	"github.com/nissyi-gh/quadro/internal/i18n"
	"github.com/nissyi-gh/quadro/internal/model"
)

// ErrInvalid is returned by Submit when validation fails.
var ErrInvalid = errors.New("invalid form")

// Mode selects the dialog wording and what a submit does.
type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

// FieldError describes one invalid field. Message is an i18n message ID.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists the invalid fields of a submit.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return "invalid fields: " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Form is the shared add/edit dialog.
type Form struct {
	Values    board.Values
	Mode      Mode
	Open      bool
	Validated bool
	Min       string

	session *board.EditSession
}

// New returns a closed form in add mode. Dates before min are rejected.
func New(min string) *Form {
	return &Form{Min: min}
}

// OpenAdd shows the dialog for a new task.
func (f *Form) OpenAdd() {
	f.reset()
	f.Open = true
}

// OpenEdit shows the dialog prefilled for the task bound to s.
func (f *Form) OpenEdit(s *board.EditSession) {
	f.reset()
	f.Mode = ModeEdit
	f.session = s
	f.Values = s.Original()
	f.Open = true
}

// Close hides the dialog and restores the add-mode defaults.
func (f *Form) Close() {
	f.reset()
}

// Session returns the edit session of an edit dialog, or nil.
func (f *Form) Session() *board.EditSession {
	return f.session
}

// Title returns the message ID of the dialog title.
func (f *Form) Title() string {
	if f.Mode == ModeEdit {
		return i18n.ModalEditTitle
	}
	return i18n.ModalAddTitle
}

// Confirm returns the message ID of the confirm button.
func (f *Form) Confirm() string {
	if f.Mode == ModeEdit {
		return i18n.ModalEditConfirm
	}
	return i18n.ModalAddConfirm
}

// Validate checks the current values. The title is required; the date is
// optional but must be YYYY-MM-DD and not before Min.
func (f *Form) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(f.Values.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: i18n.TitleRequired})
	}
	if d := f.Values.Date; d != "" {
		if _, err := time.Parse(model.DateLayout, d); err != nil {
			errs = append(errs, FieldError{Field: "date", Message: i18n.DateInvalid})
		} else if f.Min != "" && d < f.Min {
			errs = append(errs, FieldError{Field: "date", Message: i18n.DateBeforeMin})
		}
	}
	return errs
}

// Submit validates the form. When invalid it marks the form for error
// display and returns a *ValidationError. Otherwise it adds a todo task
// through add (or commits the edit session), then resets and closes.
func (f *Form) Submit(add func(board.Values)) error {
	if errs := f.Validate(); len(errs) > 0 {
		f.Validated = true
		return &ValidationError{Fields: errs}
	}

	v := f.Values
	v.Title = strings.TrimSpace(v.Title)
	if f.Mode == ModeEdit && f.session != nil {
		if err := f.session.Commit(v); err != nil {
			return err
		}
	} else {
		add(v)
	}

	f.reset()
	return nil
}

func (f *Form) reset() {
	f.Values = board.Values{}
	f.Mode = ModeAdd
	f.Open = false
	f.Validated = false
	f.session = nil
}
