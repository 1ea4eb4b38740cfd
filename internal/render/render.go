// Package render projects board tasks into cards grouped by column.
package render

import (
	"github.com/nissyi-gh/quadro/internal/dates"
	"github.com/nissyi-gh/quadro/internal/ids"
	"github.com/nissyi-gh/quadro/internal/model"
)

const (
	CardBase     = "newTask"
	CollapseBase = "collapseTask"
)

// Action is a control attached to a card.
type Action struct {
	Name string
	Icon string
}

// Card is the rendered form of one task: a header row, three actions and a
// collapsible panel that repeats the title next to the full description.
type Card struct {
	ID          string
	CollapseID  string
	TaskID      string
	Column      model.Column
	ToggleIcon  string
	Title       string
	DateIcon    string
	DateLabel   string
	Due         bool
	Overdue     bool
	Description string
	Actions     []Action
	Expanded    bool
}

// AdvanceIcon returns the icon of the advance control.
func (c Card) AdvanceIcon() string {
	for _, a := range c.Actions {
		if a.Name == "advance" {
			return a.Icon
		}
	}
	return ""
}

// View holds the rendered cards of every column container.
type View struct {
	columns map[model.Column][]Card
}

// NewView returns a view with three empty containers.
func NewView() *View {
	v := &View{columns: make(map[model.Column][]Card, 3)}
	for _, c := range model.Columns() {
		v.columns[c] = nil
	}
	return v
}

// Append adds a card to the end of a container.
func (v *View) Append(c model.Column, card Card) {
	card.Column = c
	v.columns[c] = append(v.columns[c], card)
}

// Column returns the cards rendered in c.
func (v *View) Column(c model.Column) []Card {
	return v.columns[c]
}

// Len returns the number of rendered cards.
func (v *View) Len() int {
	n := 0
	for _, cards := range v.columns {
		n += len(cards)
	}
	return n
}

// IDs returns every card and panel identifier present in the view.
func (v *View) IDs() []string {
	var out []string
	for _, c := range model.Columns() {
		for _, card := range v.columns[c] {
			out = append(out, card.ID, card.CollapseID)
		}
	}
	return out
}

// Find returns the card rendered for a task.
func (v *View) Find(taskID string) (Card, bool) {
	c, i := v.locate(func(card Card) bool { return card.TaskID == taskID })
	if i < 0 {
		return Card{}, false
	}
	return v.columns[c][i], true
}

// SetExpanded opens or closes the collapse panel of a task's card.
func (v *View) SetExpanded(taskID string, expanded bool) bool {
	c, i := v.locate(func(card Card) bool { return card.TaskID == taskID })
	if i < 0 {
		return false
	}
	v.columns[c][i].Expanded = expanded
	return true
}

// Toggle flips the collapse panel of a task's card and returns the new state.
func (v *View) Toggle(taskID string) bool {
	c, i := v.locate(func(card Card) bool { return card.TaskID == taskID })
	if i < 0 {
		return false
	}
	v.columns[c][i].Expanded = !v.columns[c][i].Expanded
	return v.columns[c][i].Expanded
}

// Remove drops a card, together with its panel, by card id.
func (v *View) Remove(cardID string) bool {
	c, i := v.locate(func(card Card) bool { return card.ID == cardID })
	if i < 0 {
		return false
	}
	cards := v.columns[c]
	v.columns[c] = append(cards[:i:i], cards[i+1:]...)
	return true
}

func (v *View) locate(match func(Card) bool) (model.Column, int) {
	for _, c := range model.Columns() {
		for i, card := range v.columns[c] {
			if match(card) {
				return c, i
			}
		}
	}
	return "", -1
}

// Renderer builds cards.
type Renderer struct {
	dates *dates.Formatter
	ids   ids.Generator
}

// NewRenderer returns a renderer that labels dates with f.
func NewRenderer(f *dates.Formatter) *Renderer {
	return &Renderer{dates: f}
}

// Render builds the card for t and appends it to the container of t's
// column. Card ids are numbered past the ones already present in v.
func (r *Renderer) Render(v *View, t model.Task) Card {
	column := t.Column
	if column == "" {
		column = model.Todo
	}

	existing := v.IDs()
	today := r.dates.Today()
	card := Card{
		ID:          r.ids.Next(CardBase, existing),
		CollapseID:  r.ids.Next(CollapseBase, existing),
		TaskID:      t.ID,
		Column:      column,
		ToggleIcon:  "bars",
		Title:       t.Title,
		DateIcon:    "calendar",
		DateLabel:   r.dates.Format(t.Date),
		Due:         t.IsDueToday(today),
		Overdue:     t.IsOverdue(today),
		Description: t.Description,
		Actions: []Action{
			{Name: "delete", Icon: "trash"},
			{Name: "edit", Icon: "pen-to-square"},
			{Name: "advance", Icon: column.Icon()},
		},
	}
	v.Append(column, card)
	return card
}

// Project renders every task of b into a fresh view.
func (r *Renderer) Project(b *model.Board) *View {
	v := NewView()
	for _, c := range model.Columns() {
		for _, t := range b.Column(c) {
			r.Render(v, t)
		}
	}
	return v
}
