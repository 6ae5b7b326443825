package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tsuika/internal/config"
	"tsuika/internal/drawable"
	"tsuika/internal/eventbus"
	"tsuika/internal/ui/services/navigation"
)

// Session owns one interactive program over a registry
type Session struct {
	bus      eventbus.EventBus
	model    *Model
	program  *tea.Program
	registry *drawable.Registry
}

// NewSession prepares a full-screen program. Extra options are applied after
// the defaults, so tests can swap input and output.
func NewSession(ctx context.Context, registry *drawable.Registry, cfg *config.Config, bus eventbus.EventBus, opts ...tea.ProgramOption) *Session {
	model := NewModel(bus, cfg, registry)

	options := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	options = append(options, opts...)

	return &Session{
		bus:      bus,
		model:    model,
		program:  tea.NewProgram(model, options...),
		registry: model.registry,
	}
}

// Run takes the terminal, runs the interaction loop until quit and restores
// the terminal on every exit path.
func (s *Session) Run() error {
	s.publish(eventbus.SessionStartedEvent{Items: s.registry.Len(), At: time.Now()})
	log.Printf("Session started with %d items", s.registry.Len())

	_, err := s.program.Run()

	s.publish(eventbus.SessionEndedEvent{Err: err, At: time.Now()})
	if err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	log.Printf("Session ended at page %d, cursor %d", s.model.State().Page, s.model.State().Cursor)
	return nil
}

// Send injects a message into the running program
func (s *Session) Send(msg tea.Msg) {
	s.program.Send(msg)
}

// State returns the navigation state; stable once Run has returned
func (s *Session) State() navigation.State {
	return s.model.State()
}

func (s *Session) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

// Run shows the registry until the user quits
func Run(ctx context.Context, registry *drawable.Registry, cfg *config.Config, bus eventbus.EventBus) error {
	return NewSession(ctx, registry, cfg, bus).Run()
}
