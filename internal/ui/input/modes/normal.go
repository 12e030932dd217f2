package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"imgswipe/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "left", "h":
		if ctx.CanMoveBack() {
			return []types.Action{types.NavigateAction{Direction: "back"}}, true
		}
		return nil, true

	case "right", "l":
		if ctx.CanMoveForward() {
			return []types.Action{types.NavigateAction{Direction: "forward"}}, true
		}
		return nil, true

	case "p":
		return []types.Action{
			types.OpenPickerAction{Multiple: false},
			types.ChangeModeAction{Mode: types.ModePicker},
		}, true

	case "P":
		return []types.Action{
			types.OpenPickerAction{Multiple: true},
			types.ChangeModeAction{Mode: types.ModePicker},
		}, true

	case "s":
		// Selection listing only makes sense with something picked
		if ctx.SelectionCount() > 0 {
			return []types.Action{types.ShowSelectionAction{}}, true
		}
		return nil, true

	case "i":
		if ctx.HasImage() {
			return []types.Action{types.ToggleInfoAction{}}, true
		}
		return nil, true

	case "r":
		return []types.Action{types.RescanAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
