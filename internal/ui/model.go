package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"imgswipe/internal/config"
	"imgswipe/internal/domain"
	"imgswipe/internal/eventbus"
	"imgswipe/internal/logging"
	"imgswipe/internal/picker"
	"imgswipe/internal/render"
	"imgswipe/internal/ui/handlers"
	"imgswipe/internal/ui/input"
	inputtypes "imgswipe/internal/ui/input/types"
	"imgswipe/internal/ui/services/events"
	"imgswipe/internal/ui/services/navigation"
	"imgswipe/internal/ui/state"
	"imgswipe/internal/ui/viewmodels"
	"imgswipe/internal/ui/views"
)

var log = logging.NewLogger("ui")

// renderFunc draws the image at path into at most cols x rows cells
type renderFunc func(path string, cols, rows int) (string, render.Picture, error)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	width  int
	height int

	navigator    *navigation.Service
	picker       *picker.Picker
	uiBus        *events.Bus
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	pager        *Pager
	viewerKeys   viewerKeys
	pickerKeys   pickerKeys

	drag          dragTracker
	pendingToasts []string
	initial       []domain.ImageRef
	renderFile    renderFunc
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	appState := state.NewAppState(cfg.LibraryRoot())
	uiBus := events.NewBus()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		uiBus:        uiBus,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPager(),
		viewerKeys:   newViewerKeys(),
		pickerKeys:   newPickerKeys(),
		renderFile:   render.File,
	}

	m.navigator = navigation.NewService(uiBus, navigation.NotifierFunc(m.notify))
	m.picker = picker.New(uiBus)
	m.eventHandler = handlers.NewEventHandler(appState, m.picker)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.navigator, m.picker)
	m.viewModel.SetKeys(m.viewerKeys)

	m.subscribeNavigation()

	return m
}

// subscribeNavigation logs navigator changes
func (m *Model) subscribeNavigation() {
	m.uiBus.Subscribe(events.TypeOf(navigation.SelectionReplacedEvent{}), func(e interface{}) {
		ev := e.(navigation.SelectionReplacedEvent)
		log.WithField("count", ev.Count).WithField("navigation", ev.NavigationEnabled).Info("selection replaced")
	})
	m.uiBus.Subscribe(events.TypeOf(navigation.CursorMovedEvent{}), func(e interface{}) {
		ev := e.(navigation.CursorMovedEvent)
		log.WithField("from", ev.OldIndex).WithField("to", ev.NewIndex).Debug("cursor moved")
	})
	m.uiBus.Subscribe(events.TypeOf(navigation.SwipeEvent{}), func(e interface{}) {
		ev := e.(navigation.SwipeEvent)
		log.WithField("direction", ev.Direction).WithField("moved", ev.Moved).Debug("swipe")
	})
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// SetInitialSelection opens refs as if they had been picked together
func (m *Model) SetInitialSelection(refs []domain.ImageRef) {
	m.initial = append([]domain.ImageRef(nil), refs...)
}

// Navigator exposes the browsing state
func (m *Model) Navigator() *navigation.Service {
	return m.navigator
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("imgswipe")}
	if len(m.initial) > 0 {
		cmds = append(cmds, picker.Deliver(picker.Result{Mode: picker.ModeMultiple, Refs: m.initial}))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.picker.SetHeight(m.viewModel.PickerHeight())

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case picker.PickedMsg:
		m.applyPick(msg.Result)

	case EventMsg:
		cmds = append(cmds, m.eventHandler.HandleEvent(msg.Event))

	case handlers.TickMsg:
		if m.state.Scanning {
			m.state.LoadingCount++
			cmds = append(cmds, handlers.Tick())
		}

	case FrameMsg:
		m.acceptFrame(msg)

	case toastExpiredMsg:
		m.state.ExpireToast(msg.seq)

	case pagerDoneMsg:
		if msg.err != nil {
			log.WithError(msg.err).WithField("pager", msg.title).Warn("pager failed")
			m.state.SetStatus(fmt.Sprintf("Cannot show %s: %v", msg.title, msg.err), true)
		}

	default:
		cmds = append(cmds, m.inputHandler.Update(msg))
	}

	cmds = append(cmds, m.flushToasts(), m.requestFrame())
	m.syncKeys()

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.state.ShowInfo && msg.String() == "esc" {
		m.state.ShowInfo = false
		return nil
	}

	ctx := &input.ModelContext{Navigator: m.navigator, Picker: m.picker}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

// processAction executes an action produced by the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "back":
			m.navigator.MoveBack()
		case "forward":
			m.navigator.MoveForward()
		}

	case inputtypes.OpenPickerAction:
		return m.openPicker(a.Multiple)

	case inputtypes.RescanAction:
		m.publish(eventbus.ScanRequestedEvent{Root: m.state.LibraryRoot})

	case inputtypes.ShowSelectionAction:
		return m.pager.Show("selection", selectionContent(m.navigator.Selection(), m.navigator.GetCursor()))

	case inputtypes.ToggleInfoAction:
		m.state.ShowInfo = !m.state.ShowInfo

	case inputtypes.ToggleHelpAction:
		return m.pager.Show("help", helpContent())

	case inputtypes.PickerNavigateAction:
		switch a.Direction {
		case "up":
			m.picker.Move(-1)
		case "down":
			m.picker.Move(1)
		case "pageup":
			m.picker.PageUp()
		case "pagedown":
			m.picker.PageDown()
		case "home":
			m.picker.Home()
		case "end":
			m.picker.End()
		}

	case inputtypes.ToggleMarkAction:
		m.picker.ToggleMark()

	case inputtypes.MarkRangeAction:
		m.picker.MarkRange()

	case inputtypes.ToggleAllMarksAction:
		m.picker.ToggleAll()

	case inputtypes.CycleSortAction:
		m.picker.CycleSort()

	case inputtypes.ConfirmPickAction:
		return picker.Deliver(m.picker.Confirm())

	case inputtypes.CancelPickAction:
		return picker.Deliver(m.picker.Cancel())

	case inputtypes.UpdateTextAction:
		m.picker.SetFilter(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.picker.SetFilter(a.Text)
		}

	case inputtypes.CancelTextAction:
		m.picker.SetFilter("")

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// openPicker shows the picker. Its result comes back later as a PickedMsg.
func (m *Model) openPicker(multiple bool) tea.Cmd {
	mode := picker.ModeSingle
	if multiple {
		mode = picker.ModeMultiple
	}
	m.state.ShowInfo = false
	m.picker.Open(mode)
	if m.inputHandler.CurrentMode() != inputtypes.ModePicker {
		m.inputHandler.ChangeMode(inputtypes.ModePicker, "")
	}
	if m.picker.Status() == picker.StatusEmpty && !m.state.Scanning {
		m.publish(eventbus.ScanRequestedEvent{Root: m.state.LibraryRoot})
	}
	return nil
}

// applyPick hands a picker result to the navigator. Cancelled picks change nothing.
func (m *Model) applyPick(result picker.Result) {
	if m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
		m.inputHandler.Reset()
	}
	switch result.Mode {
	case picker.ModeSingle:
		var ref domain.ImageRef
		if !result.Cancelled() {
			ref = result.Refs[0]
		}
		m.navigator.PickSingle(ref, !result.Cancelled())
	case picker.ModeMultiple:
		m.navigator.PickMultiple(result.Refs)
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// notify receives toasts from the navigator
func (m *Model) notify(message string) {
	m.pendingToasts = append(m.pendingToasts, message)
}

// flushToasts shows the newest pending toast and schedules its expiry
func (m *Model) flushToasts() tea.Cmd {
	if len(m.pendingToasts) == 0 {
		return nil
	}
	message := m.pendingToasts[len(m.pendingToasts)-1]
	m.pendingToasts = m.pendingToasts[:0]

	seq := m.state.ShowToast(message)
	return tea.Tick(m.config.UISettings.ToastDuration.Duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func frameKey(path string, cols, rows int) string {
	return fmt.Sprintf("%s@%dx%d", path, cols, rows)
}

// requestFrame starts rendering the current image unless a matching frame
// is already shown or on its way
func (m *Model) requestFrame() tea.Cmd {
	ref, ok := m.navigator.CurrentImage()
	if !ok {
		return nil
	}
	box := m.viewModel.Layout().Image
	if box.Empty() || m.state.Frame.Matches(ref.Path, box.W, box.H) {
		return nil
	}
	key := frameKey(ref.Path, box.W, box.H)
	if m.state.RenderPending == key {
		return nil
	}
	m.state.RenderPending = key

	path, cols, rows, draw := ref.Path, box.W, box.H, m.renderFile
	return func() tea.Msg {
		content, pic, err := draw(path, cols, rows)
		pic.Image = nil
		return FrameMsg{Path: path, Cols: cols, Rows: rows, Content: content, Picture: pic, Err: err}
	}
}

// acceptFrame keeps a rendered frame if it is still wanted
func (m *Model) acceptFrame(msg FrameMsg) {
	if m.state.RenderPending == frameKey(msg.Path, msg.Cols, msg.Rows) {
		m.state.RenderPending = ""
	}
	ref, ok := m.navigator.CurrentImage()
	box := m.viewModel.Layout().Image
	if !ok || ref.Path != msg.Path || box.W != msg.Cols || box.H != msg.Rows {
		log.WithField("path", msg.Path).Debug("dropping stale frame")
		return
	}
	if msg.Err != nil {
		log.WithError(msg.Err).WithField("path", msg.Path).Warn("cannot render image")
	}
	m.state.Frame = state.Frame{
		Path:    msg.Path,
		Cols:    msg.Cols,
		Rows:    msg.Rows,
		Content: msg.Content,
		Format:  msg.Picture.Format,
		Width:   msg.Picture.Width,
		Height:  msg.Picture.Height,
		Err:     msg.Err,
	}
}

// syncKeys points the help bar and filter line at the active mode
func (m *Model) syncKeys() {
	var keys help.KeyMap = m.viewerKeys
	if m.picker.IsOpen() {
		keys = m.pickerKeys.forMode(m.picker.Mode() == picker.ModeMultiple)
	}
	m.viewModel.SetKeys(keys)
	m.viewModel.SetTextInput(m.inputHandler.TextInput())
}

// View renders the UI
func (m *Model) View() string {
	return m.renderer.Render(m.viewModel.BuildViewState())
}
