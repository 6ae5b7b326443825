package types

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents an interaction mode
type Mode int

const (
	// ModeNormal browses the rendered text page by page
	ModeNormal Mode = iota
	// ModeEdit moves the cursor between items
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// ModeHandler maps keys to abstract events for a specific mode
type ModeHandler interface {
	// HandleKey returns the event bound to msg and whether the key was bound at all
	HandleKey(msg tea.KeyMsg) (Event, bool)

	// Bindings lists the bound keys for the help footer
	Bindings() []key.Binding

	// Name returns the mode name for display
	Name() string
}
