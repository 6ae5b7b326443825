package modes

import (
	"tsuika/internal/ui/input/types"
)

// EditMode moves the cursor between items
type EditMode struct {
	TableMode
}

func NewEditMode(km KeyMap) *EditMode {
	return &EditMode{
		TableMode: NewTableMode(types.ModeEdit, km),
	}
}
