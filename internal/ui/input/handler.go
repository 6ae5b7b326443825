package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tsuika/internal/ui/input/modes"
	"tsuika/internal/ui/input/types"
)

// Handler turns raw key messages into abstract events. The current mode is
// owned by the navigation state and passed in on every call.
type Handler struct {
	modes map[types.Mode]types.ModeHandler
}

func New() *Handler {
	return NewWithKeyMap(modes.DefaultKeyMap())
}

// NewWithKeyMap creates a handler backed by a custom table
func NewWithKeyMap(km modes.KeyMap) *Handler {
	h := &Handler{
		modes: make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode(km)
	h.modes[types.ModeEdit] = modes.NewEditMode(km)

	return h
}

// HandleKey maps msg to an event for the given mode. Unbound keys and
// unknown modes yield EventNothing.
func (h *Handler) HandleKey(msg tea.KeyMsg, mode types.Mode) types.Event {
	handler := h.modes[mode]
	if handler == nil {
		return types.EventNothing
	}
	event, ok := handler.HandleKey(msg)
	if !ok {
		return types.EventNothing
	}
	return event
}

// Bindings returns the bound keys of a mode, for help rendering
func (h *Handler) Bindings(mode types.Mode) []key.Binding {
	if handler := h.modes[mode]; handler != nil {
		return handler.Bindings()
	}
	return nil
}

// ModeName returns the display name of a mode
func (h *Handler) ModeName(mode types.Mode) string {
	if handler := h.modes[mode]; handler != nil {
		return handler.Name()
	}
	return mode.String()
}
