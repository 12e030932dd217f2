package types

// Viewer actions
type NavigateAction struct {
	Direction string // "back" or "forward"
}

func (a NavigateAction) Type() string { return "navigate" }

type OpenPickerAction struct {
	Multiple bool
}

func (a OpenPickerAction) Type() string { return "open_picker" }

type RescanAction struct{}

func (a RescanAction) Type() string { return "rescan" }

type ShowSelectionAction struct{}

func (a ShowSelectionAction) Type() string { return "show_selection" }

type ToggleInfoAction struct{}

func (a ToggleInfoAction) Type() string { return "toggle_info" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

// Picker actions
type PickerNavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a PickerNavigateAction) Type() string { return "picker_navigate" }

type ToggleMarkAction struct{}

func (a ToggleMarkAction) Type() string { return "toggle_mark" }

type MarkRangeAction struct{}

func (a MarkRangeAction) Type() string { return "mark_range" }

type ToggleAllMarksAction struct{}

func (a ToggleAllMarksAction) Type() string { return "toggle_all_marks" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ConfirmPickAction struct{}

func (a ConfirmPickAction) Type() string { return "confirm_pick" }

type CancelPickAction struct{}

func (a CancelPickAction) Type() string { return "cancel_pick" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }
