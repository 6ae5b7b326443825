package drawable

import (
	"strings"
	"sync"
)

// Line is a single rendered line together with the item that produced it
type Line struct {
	Text string
	Item int // index into the registry
}

// Registry is an ordered, append-only collection of drawable items.
// Insertion order is rendering order.
type Registry struct {
	mu    sync.RWMutex
	items []Drawable
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		items: make([]Drawable, 0),
	}
}

// Add appends an item. Nil items are ignored.
func (r *Registry) Add(item Drawable) {
	if item == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
}

// Len returns the number of registered items
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Draw renders every item followed by a newline, in insertion order
func (r *Registry) Draw() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	for _, item := range r.items {
		b.WriteString(item.Draw())
		b.WriteString("\n")
	}
	return b.String()
}

// Lines renders the registry and splits the result into lines, tagging each
// line with the index of its item. An item whose rendering contains embedded
// newlines contributes one line per segment; a "\r" ending a segment is
// dropped so "\r\n" counts as a plain line break.
func (r *Registry) Lines() []Line {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]Line, 0, len(r.items))
	for i, item := range r.items {
		for _, text := range strings.Split(item.Draw(), "\n") {
			lines = append(lines, Line{Text: strings.TrimSuffix(text, "\r"), Item: i})
		}
	}
	return lines
}
