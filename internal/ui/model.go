package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tsuika/internal/config"
	"tsuika/internal/drawable"
	"tsuika/internal/eventbus"
	"tsuika/internal/ui/input"
	"tsuika/internal/ui/input/types"
	"tsuika/internal/ui/services/navigation"
	"tsuika/internal/ui/viewmodels"
	"tsuika/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	registry *drawable.Registry

	width  int
	height int

	pollInterval time.Duration
	quitting     bool

	// Handlers
	navigator    *navigation.Service
	inputHandler *input.Handler
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
}

// NewModel creates a new UI model over a populated registry. bus may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, registry *drawable.Registry) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if registry == nil {
		registry = drawable.NewRegistry()
	}

	navigator := navigation.NewService(bus, registry.Len)
	inputHandler := input.New()

	interval := time.Duration(cfg.UI.PollInterval)
	if interval <= 0 {
		interval = time.Duration(config.DefaultConfig().UI.PollInterval)
	}

	return &Model{
		bus:          bus,
		config:       cfg,
		registry:     registry,
		pollInterval: interval,
		navigator:    navigator,
		inputHandler: inputHandler,
		viewModel:    viewmodels.NewViewModel(registry, navigator, inputHandler, cfg),
		renderer:     views.NewRenderer(cfg.UI.Border),
	}
}

// Init starts the poll cadence
func (m *Model) Init() tea.Cmd {
	return m.poll()
}

func (m *Model) poll() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			log.Printf("Interrupted in %s mode", m.inputHandler.ModeName(m.navigator.Mode()))
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.apply(m.inputHandler.HandleKey(msg, m.navigator.Mode()))

	case pollMsg:
		return m, tea.Batch(m.apply(types.EventNothing), m.poll())
	}

	return m, nil
}

// apply runs one transition and turns a terminating transition into tea.Quit
func (m *Model) apply(event types.Event) tea.Cmd {
	if m.navigator.Apply(event) {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// View renders the current frame
func (m *Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}
	m.viewModel.SetDimensions(m.width, m.height)
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// State returns a copy of the navigation state
func (m *Model) State() navigation.State {
	return m.navigator.State()
}

// Quitting reports whether the interaction loop has been asked to end
func (m *Model) Quitting() bool {
	return m.quitting
}
