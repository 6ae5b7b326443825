package navigation

import (
	"tsuika/internal/ui/input/types"
)

// State holds all navigation-related state
type State struct {
	Page   int        // index of the first visible rendered line
	Cursor int        // index of the active item
	Mode   types.Mode // current interaction mode
}
