package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"imgswipe/internal/ui/input/types"
)

// FilterMode edits the picker's name filter
type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, types.ModePicker, "filter", "Filter: ", ti),
	}
}
