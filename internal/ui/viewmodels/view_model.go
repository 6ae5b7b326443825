package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"tsuika/internal/config"
	"tsuika/internal/drawable"
	"tsuika/internal/ui/input"
	"tsuika/internal/ui/input/types"
	"tsuika/internal/ui/services/navigation"
	"tsuika/internal/ui/views"
)

// ViewModel transforms the registry and navigation state into view-ready data
type ViewModel struct {
	registry  *drawable.Registry
	navigator *navigation.Service
	input     *input.Handler
	config    *config.Config
	width     int
	height    int
	help      help.Model
}

// NewViewModel creates a new view model
func NewViewModel(registry *drawable.Registry, navigator *navigation.Service, handler *input.Handler, cfg *config.Config) *ViewModel {
	return &ViewModel{
		registry:  registry,
		navigator: navigator,
		input:     handler,
		config:    cfg,
		help:      help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// BuildViewState runs the render step: render every item, clamp the page to
// the rendered line count and keep the lines from the page onwards.
func (vm *ViewModel) BuildViewState() views.ViewState {
	lines := vm.registry.Lines()
	page := vm.navigator.ClampPage(len(lines))

	var visible []drawable.Line
	if page < len(lines) {
		visible = lines[page:]
	}

	mode := vm.navigator.Mode()
	return views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		Lines:           visible,
		Page:            page,
		TotalLines:      len(lines),
		Cursor:          vm.navigator.Cursor(),
		Items:           vm.registry.Len(),
		Mode:            vm.input.ModeName(mode),
		Editing:         mode == types.ModeEdit,
		HighlightCursor: vm.config.UI.HighlightCursor,
		ShowStatus:      vm.config.UI.ShowStatus,
		Title:           vm.config.UI.Title,
		Help:            vm.help.ShortHelpView(vm.input.Bindings(mode)),
	}
}
