package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tsuika/internal/ui/input/types"
)

// Binding ties a physical key to the abstract event it produces
type Binding struct {
	Key   key.Binding
	Event types.Event
}

// KeyMap is the two-dimensional mode x key lookup table. Keys missing from a
// mode's row produce EventNothing.
type KeyMap map[types.Mode][]Binding

// DefaultKeyMap returns the standard bindings:
//
//	key  normal    edit
//	q    quit      quit
//	e    enter     enter
//	w    roll up   up
//	s    roll down down
func DefaultKeyMap() KeyMap {
	return KeyMap{
		types.ModeNormal: {
			{Key: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")), Event: types.EventQuit},
			{Key: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")), Event: types.EventEnter},
			{Key: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "scroll up")), Event: types.EventRollUp},
			{Key: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scroll down")), Event: types.EventRollDown},
		},
		types.ModeEdit: {
			{Key: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "back")), Event: types.EventQuit},
			{Key: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")), Event: types.EventEnter},
			{Key: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "prev item")), Event: types.EventUp},
			{Key: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "next item")), Event: types.EventDown},
		},
	}
}

// Lookup returns the event bound to msg in the given mode and whether any
// binding matched. Unbound keys and unknown modes yield EventNothing.
func (km KeyMap) Lookup(mode types.Mode, msg tea.KeyMsg) (types.Event, bool) {
	for _, b := range km[mode] {
		if key.Matches(msg, b.Key) {
			return b.Event, true
		}
	}
	return types.EventNothing, false
}
