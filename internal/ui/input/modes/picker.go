package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"imgswipe/internal/ui/input/types"
)

// PickerMode drives the library listing while the picker is open
type PickerMode struct{}

func NewPickerMode() *PickerMode {
	return &PickerMode{}
}

func (m *PickerMode) Name() string {
	return "picker"
}

func (m *PickerMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{
			types.CancelPickAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter":
		return []types.Action{
			types.ConfirmPickAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "up", "k":
		return []types.Action{types.PickerNavigateAction{Direction: "up"}}, true

	case "down", "j":
		return []types.Action{types.PickerNavigateAction{Direction: "down"}}, true

	case "pgup", "ctrl+u":
		return []types.Action{types.PickerNavigateAction{Direction: "pageup"}}, true

	case "pgdown", "ctrl+d":
		return []types.Action{types.PickerNavigateAction{Direction: "pagedown"}}, true

	case "home", "g":
		return []types.Action{types.PickerNavigateAction{Direction: "home"}}, true

	case "end", "G":
		return []types.Action{types.PickerNavigateAction{Direction: "end"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Data: ctx.FilterQuery()}}, true

	case "o":
		return []types.Action{types.CycleSortAction{}}, true
	}

	if !ctx.MultiplePicker() {
		return nil, true
	}

	switch msg.String() {
	case " ":
		return []types.Action{types.ToggleMarkAction{}}, true

	case "v", "V":
		return []types.Action{types.MarkRangeAction{}}, true

	case "a", "A":
		return []types.Action{types.ToggleAllMarksAction{}}, true
	}

	// The picker is modal; swallow everything else
	return nil, true
}
