package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"imgswipe/internal/config"
	"imgswipe/internal/picker"
	"imgswipe/internal/ui/services/navigation"
	"imgswipe/internal/ui/state"
	"imgswipe/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	navigator *navigation.Service
	picker    *picker.Picker
	width     int
	height    int
	help      help.Model
	keys      help.KeyMap
	textInput *textinput.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, nav *navigation.Service, p *picker.Picker) *ViewModel {
	return &ViewModel{
		state:     appState,
		config:    cfg,
		navigator: nav,
		picker:    p,
		help:      help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetKeys sets the bindings shown in the help bar
func (vm *ViewModel) SetKeys(keys help.KeyMap) {
	vm.keys = keys
}

// SetTextInput sets the filter input; nil when not filtering
func (vm *ViewModel) SetTextInput(ti *textinput.Model) {
	vm.textInput = ti
}

// Layout returns the screen geometry for the current dimensions
func (vm *ViewModel) Layout() views.Layout {
	return views.NewLayout(vm.width, vm.height, vm.config.UISettings.ShowHelpBar)
}

// PickerHeight is how many listing rows fit in the picker popup
func (vm *ViewModel) PickerHeight() int {
	// border, title, filter line, spacers, footer and scroll indicators
	h := vm.height - 12
	if h < 3 {
		h = 3
	}
	return h
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	layout := vm.Layout()
	vs := views.ViewState{
		Layout:         layout,
		Scanning:       vm.state.Scanning,
		SpinnerFrame:   vm.state.LoadingCount,
		LibraryCount:   len(vm.state.Library),
		CanMoveBack:    vm.navigator.CanMoveBack(),
		CanMoveForward: vm.navigator.CanMoveForward(),
		StatusMessage:  vm.state.StatusMessage,
		StatusIsError:  vm.state.StatusIsError,
		Toast:          vm.state.Toast,
		ShowHelpBar:    vm.config.UISettings.ShowHelpBar,
		HelpModel:      vm.help,
		Keys:           vm.keys,
		ShowInfo:       vm.state.ShowInfo,
	}

	if ref, ok := vm.navigator.CurrentImage(); ok {
		vs.HasImage = true
		vs.Current = ref
		vs.Position = vm.navigator.GetCursor() + 1
		vs.Count = vm.navigator.Len()

		frame := vm.state.Frame
		if frame.Matches(ref.Path, layout.Image.W, layout.Image.H) {
			vs.FrameReady = true
			vs.Frame = frame.Content
			vs.FrameErr = frame.Err
		}
		if frame.Path == ref.Path {
			vs.Info = views.ImageInfo{Format: frame.Format, Width: frame.Width, Height: frame.Height}
		}
	}

	if vm.picker.IsOpen() {
		pv := &views.PickerView{
			Multiple: vm.picker.Mode() == picker.ModeMultiple,
			Status:   vm.picker.Status(),
			Err:      vm.picker.Err(),
			Rows:     vm.picker.Rows(),
			Filter:   vm.picker.Filter(),
			Total:    vm.picker.Total(),
			Visible:  vm.picker.Visible(),
			Marked:   vm.picker.Marked(),
			Sort:     vm.picker.SortMode(),
			Offset:   vm.picker.Offset(),
			Height:   vm.PickerHeight(),
			Root:     vm.state.LibraryRoot,
		}
		if vm.textInput != nil {
			pv.Filtering = true
			pv.FilterInput = vm.textInput.View()
		}
		vs.Picker = pv
	}

	return vs
}
