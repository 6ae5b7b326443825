package navigation

import (
	"tsuika/internal/eventbus"
	"tsuika/internal/ui/input/types"
)

// Service owns the navigation state and applies abstract events to it
type Service struct {
	state   *State
	bus     eventbus.EventBus
	countFn func() int // number of items in the registry
}

// NewService creates a new navigation service at page 0, cursor 0, normal
// mode. bus may be nil.
func NewService(bus eventbus.EventBus, countFn func() int) *Service {
	return &Service{
		state: &State{
			Page:   0,
			Cursor: 0,
			Mode:   types.ModeNormal,
		},
		bus:     bus,
		countFn: countFn,
	}
}

// State returns a copy of the current state
func (s *Service) State() State {
	return *s.state
}

// Mode returns the current interaction mode
func (s *Service) Mode() types.Mode {
	return s.state.Mode
}

// Cursor returns the index of the active item
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// Page returns the index of the first visible line
func (s *Service) Page() int {
	return s.state.Page
}

// Apply performs the transition for event and reports whether the
// interaction loop should terminate. Only Quit in normal mode terminates.
func (s *Service) Apply(event types.Event) (quit bool) {
	switch event {
	case types.EventQuit:
		if s.state.Mode == types.ModeNormal {
			return true
		}
		s.setMode(types.ModeNormal)

	case types.EventEnter:
		if s.state.Mode == types.ModeNormal {
			s.setMode(types.ModeEdit)
		}

	case types.EventUp:
		s.moveUp()

	case types.EventDown:
		s.moveDown()

	case types.EventRollUp:
		s.rollUp()

	case types.EventRollDown:
		// No upper bound here; ClampPage corrects it on the next render
		s.setPage(s.state.Page+1, false)

	case types.EventNothing:
	}
	return false
}

// ClampPage pulls the page back into [0, lineCount-1] (0 when there are no
// lines) and returns the result. A page already in range is left unchanged.
func (s *Service) ClampPage(lineCount int) int {
	maxPage := lineCount - 1
	if maxPage < 0 {
		maxPage = 0
	}
	page := s.state.Page
	if page > maxPage {
		page = maxPage
	}
	if page < 0 {
		page = 0
	}
	s.setPage(page, true)
	return page
}

// Internal navigation methods
func (s *Service) moveUp() {
	if s.state.Cursor > 0 {
		s.setCursor(s.state.Cursor - 1)
	}
}

func (s *Service) moveDown() {
	if s.state.Cursor < s.maxIndex() {
		s.setCursor(s.state.Cursor + 1)
	}
}

func (s *Service) rollUp() {
	if s.state.Page > 0 {
		s.setPage(s.state.Page-1, false)
	}
}

// maxIndex is the last valid cursor position, 0 for an empty registry
func (s *Service) maxIndex() int {
	if s.countFn == nil {
		return 0
	}
	n := s.countFn() - 1
	if n < 0 {
		return 0
	}
	return n
}

func (s *Service) setMode(mode types.Mode) {
	old := s.state.Mode
	if old == mode {
		return
	}
	s.state.Mode = mode
	s.publish(eventbus.ModeChangedEvent{From: old.String(), To: mode.String()})
}

func (s *Service) setCursor(cursor int) {
	old := s.state.Cursor
	if old == cursor {
		return
	}
	s.state.Cursor = cursor
	s.publish(eventbus.CursorMovedEvent{OldIndex: old, NewIndex: cursor})
}

func (s *Service) setPage(page int, clamped bool) {
	old := s.state.Page
	if old == page {
		return
	}
	s.state.Page = page
	s.publish(eventbus.PageChangedEvent{OldPage: old, NewPage: page, Clamped: clamped})
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
