// Package dates turns ISO task dates into board labels.
package dates

import (
	"time"

	"github.com/nissyi-gh/quadro/internal/model"
)

const (
	LabelToday    = "Hoje"
	LabelTomorrow = "Amanhã"
)

// Formatter formats dates relative to its clock.
type Formatter struct {
	now func() time.Time
	min string
}

// New returns a formatter using the local system clock. The minimum
// selectable date is fixed to today at construction time.
func New() *Formatter {
	return NewWithClock(time.Now)
}

// NewWithClock returns a formatter that reads the current time from now.
func NewWithClock(now func() time.Time) *Formatter {
	f := &Formatter{now: now}
	f.min = f.Today()
	return f
}

// Today returns today's date as YYYY-MM-DD.
func (f *Formatter) Today() string {
	return f.now().Format(model.DateLayout)
}

// Tomorrow returns tomorrow's date as YYYY-MM-DD.
func (f *Formatter) Tomorrow() string {
	return f.now().AddDate(0, 0, 1).Format(model.DateLayout)
}

// Min returns the earliest date a task may be given.
func (f *Formatter) Min() string {
	return f.min
}

// Format returns "Hoje" for an empty date or today, "Amanhã" for tomorrow,
// and DD/MM/YYYY otherwise. The date is not validated.
func (f *Formatter) Format(iso string) string {
	if iso == "" || iso == f.Today() {
		return LabelToday
	}
	if iso == f.Tomorrow() {
		return LabelTomorrow
	}
	if len(iso) < len(model.DateLayout) {
		return iso
	}
	return iso[8:10] + "/" + iso[5:7] + "/" + iso[0:4]
}

// Normalize returns the ISO date that should be stored for iso. Empty dates
// are stored as today.
func (f *Formatter) Normalize(iso string) string {
	if iso == "" {
		return f.Today()
	}
	return iso
}
