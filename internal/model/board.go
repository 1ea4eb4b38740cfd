package model

// Board holds the ordered task lists of every column. It is the source of
// truth for the board; views are rebuilt from it.
type Board struct {
	columns map[Column][]Task
}

// NewBoard returns a board with three empty columns.
func NewBoard() *Board {
	b := &Board{columns: make(map[Column][]Task, 3)}
	for _, c := range Columns() {
		b.columns[c] = []Task{}
	}
	return b
}

// Add appends a task to the end of its column.
func (b *Board) Add(t Task) {
	if t.Column == "" {
		t.Column = Todo
	}
	b.columns[t.Column] = append(b.columns[t.Column], t)
}

// Get looks a task up by ID.
func (b *Board) Get(id string) (Task, bool) {
	c, i := b.locate(id)
	if i < 0 {
		return Task{}, false
	}
	return b.columns[c][i], true
}

// Remove deletes a task. It reports whether the task existed.
func (b *Board) Remove(id string) bool {
	c, i := b.locate(id)
	if i < 0 {
		return false
	}
	tasks := b.columns[c]
	b.columns[c] = append(tasks[:i:i], tasks[i+1:]...)
	return true
}

// Update applies fn to the stored task in place. ID and column changes made
// by fn are ignored; use Move to change columns.
func (b *Board) Update(id string, fn func(*Task)) bool {
	c, i := b.locate(id)
	if i < 0 {
		return false
	}
	t := b.columns[c][i]
	fn(&t)
	t.ID = id
	t.Column = c
	b.columns[c][i] = t
	return true
}

// Move takes a task out of its column and appends it to the end of dst.
func (b *Board) Move(id string, dst Column) bool {
	t, ok := b.Get(id)
	if !ok {
		return false
	}
	b.Remove(id)
	t.Column = dst
	b.columns[dst] = append(b.columns[dst], t)
	return true
}

// Column returns a copy of the tasks in c.
func (b *Board) Column(c Column) []Task {
	out := make([]Task, len(b.columns[c]))
	copy(out, b.columns[c])
	return out
}

// Tasks returns every task in column order.
func (b *Board) Tasks() []Task {
	var out []Task
	for _, c := range Columns() {
		out = append(out, b.columns[c]...)
	}
	return out
}

// Len returns the number of tasks on the board.
func (b *Board) Len() int {
	n := 0
	for _, tasks := range b.columns {
		n += len(tasks)
	}
	return n
}

func (b *Board) locate(id string) (Column, int) {
	for _, c := range Columns() {
		for i, t := range b.columns[c] {
			if t.ID == id {
				return c, i
			}
		}
	}
	return "", -1
}
