package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Frame      lipgloss.Style
	Status     lipgloss.Style
	Title      lipgloss.Style
	ModeNormal lipgloss.Style
	ModeEdit   lipgloss.Style
	Cursor     lipgloss.Style
}

// NewStyles creates a new Styles instance for the given border style name
func NewStyles(border string) *Styles {
	return &Styles{
		Frame: lipgloss.NewStyle().
			Border(BorderFor(border)).
			BorderForeground(lipgloss.Color("241")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		ModeNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),  // green
		ModeEdit:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Cursor:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}

// BorderFor maps a config border name to a lipgloss border. Unknown names
// fall back to the normal border.
func BorderFor(name string) lipgloss.Border {
	switch name {
	case "rounded":
		return lipgloss.RoundedBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
