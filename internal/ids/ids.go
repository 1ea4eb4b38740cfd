// Package ids generates numbered element identifiers such as "newTask-3".
package ids

import (
	"strconv"
	"strings"
	"sync"
)

// Generator issues "<base>-<n>" identifiers one past the highest number
// already in use. It remembers the last id it issued so that two calls made
// before the first id is put into use still return distinct values.
type Generator struct {
	mu   sync.Mutex
	last string
}

// Next returns the next identifier for base given the identifiers currently
// in use. Identifiers whose suffix is not a number are ignored.
func (g *Generator) Next(base string, existing []string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	highest := Max(base, existing)
	id := Format(base, highest+1)
	if id == g.last {
		id = Format(base, highest+2)
	}
	g.last = id
	return id
}

// Max returns the highest number used by base in existing, or 0.
func Max(base string, existing []string) int {
	prefix := base + "-"
	highest := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}

// Format builds "<base>-<n>".
func Format(base string, n int) string {
	return base + "-" + strconv.Itoa(n)
}
