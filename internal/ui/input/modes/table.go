package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tsuika/internal/ui/input/types"
)

// TableMode is a base for modes whose keys are one row of a KeyMap
type TableMode struct {
	mode   types.Mode
	keyMap KeyMap
}

func NewTableMode(mode types.Mode, km KeyMap) TableMode {
	return TableMode{
		mode:   mode,
		keyMap: km,
	}
}

func (m TableMode) Name() string {
	return m.mode.String()
}

func (m TableMode) HandleKey(msg tea.KeyMsg) (types.Event, bool) {
	return m.keyMap.Lookup(m.mode, msg)
}

func (m TableMode) Bindings() []key.Binding {
	row := m.keyMap[m.mode]
	keys := make([]key.Binding, 0, len(row))
	for _, b := range row {
		keys = append(keys, b.Key)
	}
	return keys
}
