package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tsuika/internal/drawable"
)

const tabWidth = 4

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Lines           []drawable.Line // visible lines, starting at Page
	Page            int
	TotalLines      int
	Cursor          int
	Items           int
	Mode            string
	Editing         bool // mode is edit
	HighlightCursor bool // highlight the cursor item's lines while editing
	ShowStatus      bool
	Title           string
	Help            string // rendered key help
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(border string) *Renderer {
	return &Renderer{
		styles: NewStyles(border),
	}
}

// Render produces the bordered frame, optionally followed by a status line.
// Lines are clipped to the inner width and to the inner height, so every
// content line occupies exactly one row.
func (r *Renderer) Render(state ViewState) string {
	frameHeight := state.Height
	if state.ShowStatus {
		frameHeight--
	}

	frameStyle := r.styles.Frame
	innerWidth := state.Width - frameStyle.GetHorizontalBorderSize()
	innerHeight := frameHeight - frameStyle.GetVerticalBorderSize()
	if innerWidth < 1 || innerHeight < 1 {
		// Too small to draw a frame
		return ""
	}

	rows := make([]string, 0, innerHeight)
	for _, line := range state.Lines {
		if len(rows) == innerHeight {
			break
		}
		text := ClipLine(line.Text, innerWidth)
		if state.Editing && state.HighlightCursor && line.Item == state.Cursor {
			text = r.styles.Cursor.Render(runewidth.FillRight(text, innerWidth))
		}
		rows = append(rows, text)
	}

	frame := frameStyle.
		Width(innerWidth).
		Height(innerHeight).
		Render(strings.Join(rows, "\n"))

	if !state.ShowStatus {
		return frame
	}
	return lipgloss.JoinVertical(lipgloss.Left, frame, r.renderStatus(state))
}

// renderStatus builds the one-line status bar under the frame
func (r *Renderer) renderStatus(state ViewState) string {
	modeStyle := r.modeStyle(state)

	item, line := 0, 0
	if state.Items > 0 {
		item = state.Cursor + 1
	}
	if state.TotalLines > 0 {
		line = state.Page + 1
	}

	parts := []string{
		r.styles.Title.Render(state.Title),
		modeStyle.Render(strings.ToUpper(state.Mode)),
		r.styles.Status.Render(fmt.Sprintf("item %d/%d", item, state.Items)),
		r.styles.Status.Render(fmt.Sprintf("line %d/%d", line, state.TotalLines)),
	}
	if state.Help != "" {
		parts = append(parts, state.Help)
	}

	status := strings.Join(parts, "  ")
	if lipgloss.Width(status) > state.Width {
		// Fall back to the unstyled form, clipped
		plain := fmt.Sprintf("%s  %s  item %d/%d  line %d/%d",
			state.Title, strings.ToUpper(state.Mode), item, state.Items, line, state.TotalLines)
		status = r.styles.Status.Render(ClipLine(plain, state.Width))
	}
	return status
}

// modeStyle colours the mode name by the mode alone
func (r *Renderer) modeStyle(state ViewState) lipgloss.Style {
	if state.Editing {
		return r.styles.ModeEdit
	}
	return r.styles.ModeNormal
}

// ClipLine expands tabs, drops carriage returns and truncates s to at most width display cells
func ClipLine(s string, width int) string {
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	s = strings.ReplaceAll(s, "\r", "")
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}
