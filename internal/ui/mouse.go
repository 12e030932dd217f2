package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"imgswipe/internal/ui/views"
)

// dragTracker follows one left-button gesture from press to release
type dragTracker struct {
	active    bool
	moved     bool
	pressZone views.Zone
	lastX     int
	lastY     int
}

func (d *dragTracker) press(x, y int, zone views.Zone) {
	*d = dragTracker{active: true, pressZone: zone, lastX: x, lastY: y}
}

// motion returns the cell delta since the previous event
func (d *dragTracker) motion(x, y int) (dx, dy int) {
	dx, dy = x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	if dx != 0 || dy != 0 {
		d.moved = true
	}
	return dx, dy
}

func (d *dragTracker) release() {
	d.active = false
}

// handleMouse turns mouse events into clicks and swipes
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.picker.IsOpen() {
		return m.handlePickerMouse(msg)
	}

	layout := m.viewModel.Layout()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.drag.press(msg.X, msg.Y, layout.ZoneAt(msg.X, msg.Y))

	case tea.MouseActionMotion:
		if !m.drag.active {
			return nil
		}
		m.dragMotion(msg.X, msg.Y)

	case tea.MouseActionRelease:
		if !m.drag.active {
			return nil
		}
		m.drag.release()
		m.dragMotion(msg.X, msg.Y)

		if m.drag.pressZone == views.ZoneImage && m.drag.moved {
			m.navigator.EndDrag(m.navigator.Direction())
			return nil
		}
		m.navigator.CancelDrag()
		if !m.drag.moved {
			return m.click(m.drag.pressZone)
		}
	}
	return nil
}

func (m *Model) dragMotion(x, y int) {
	dx, dy := m.drag.motion(x, y)
	if m.drag.pressZone == views.ZoneImage && (dx != 0 || dy != 0) {
		// Cells are taller than wide; scale rows so both axes count pixels alike
		m.navigator.ClassifyDrag(float64(dx), float64(dy)*m.config.UISettings.CellAspect)
	}
}

// click acts on a press and release in the same cell
func (m *Model) click(zone views.Zone) tea.Cmd {
	switch zone {
	case views.ZonePickOne:
		return m.openPicker(false)
	case views.ZonePickMany:
		return m.openPicker(true)
	case views.ZoneBack:
		if m.navigator.CanMoveBack() {
			m.navigator.MoveBack()
		}
	case views.ZoneForward:
		if m.navigator.CanMoveForward() {
			m.navigator.MoveForward()
		}
	}
	return nil
}

func (m *Model) handlePickerMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.picker.Move(-1)
	case tea.MouseButtonWheelDown:
		m.picker.Move(1)
	}
	return nil
}
