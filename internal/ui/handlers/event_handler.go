package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"imgswipe/internal/eventbus"
	"imgswipe/internal/logging"
	"imgswipe/internal/picker"
	"imgswipe/internal/ui/state"
)

var log = logging.NewLogger("ui")

// TickMsg is a tick message for animations
type TickMsg time.Time

// Tick schedules the next spinner frame
func Tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state  *state.AppState
	picker *picker.Picker
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, p *picker.Picker) *EventHandler {
	return &EventHandler{
		state:  appState,
		picker: p,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ScanStartedEvent:
		wasScanning := h.state.Scanning
		h.state.Scanning = true
		h.state.LoadingCount = 0
		h.state.SetStatus(fmt.Sprintf("Scanning %s...", e.Root), false)
		h.picker.SetLoading()
		if wasScanning {
			return nil
		}
		return Tick()

	case eventbus.ScanCompletedEvent:
		h.state.SetLibrary(e.Images, e.Err)
		h.picker.SetItems(e.Images, e.Err)
		if e.Err != nil {
			h.state.SetStatus(fmt.Sprintf("Scan failed: %v", e.Err), true)
			return nil
		}
		h.state.SetStatus(fmt.Sprintf("Found %d images in %s", len(e.Images), e.Root), false)

	case eventbus.LibraryChangedEvent:
		log.WithField("paths", len(e.Paths)).Debug("library changed")

	case eventbus.ErrorEvent:
		if e.Err != nil {
			log.WithError(e.Err).Warn(e.Message)
		}
		h.state.SetStatus(fmt.Sprintf("Error: %s", e.Message), true)

	case eventbus.ConfigSavedEvent:
		log.WithField("path", e.Path).Debug("config saved")
	}

	return nil
}
