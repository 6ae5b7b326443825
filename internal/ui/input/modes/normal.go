package modes

import (
	"tsuika/internal/ui/input/types"
)

// NormalMode pages through the rendered text
type NormalMode struct {
	TableMode
}

func NewNormalMode(km KeyMap) *NormalMode {
	return &NormalMode{
		TableMode: NewTableMode(types.ModeNormal, km),
	}
}
