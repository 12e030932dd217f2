package sorting

import (
	"sort"
	"strings"

	"imgswipe/internal/domain"
	"imgswipe/internal/ui/services/events"
)

// Service handles sorting logic
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new sorting service. Newest first is the library's own order.
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			CurrentMode: SortNewest,
		},
		bus: bus,
	}
}

// GetCurrentMode returns the current sort mode
func (s *Service) GetCurrentMode() Mode {
	return s.state.CurrentMode
}

// SetMode sets the sort mode
func (s *Service) SetMode(mode Mode) {
	if mode == s.state.CurrentMode {
		return
	}

	oldMode := s.state.CurrentMode
	s.state.CurrentMode = mode

	s.bus.Publish(SortModeChangedEvent{
		OldMode: oldMode,
		NewMode: mode,
	})
}

// NextMode cycles to the next sort mode
func (s *Service) NextMode() {
	modes := []Mode{
		SortNewest,
		SortOldest,
		SortName,
		SortSize,
	}

	currentIndex := 0
	for i, mode := range modes {
		if mode == s.state.CurrentMode {
			currentIndex = i
			break
		}
	}

	nextIndex := (currentIndex + 1) % len(modes)
	s.SetMode(modes[nextIndex])
}

// SortImages orders refs in place. Ties fall back to the path so the order is stable across rescans.
func (s *Service) SortImages(refs []domain.ImageRef) {
	var less func(a, b domain.ImageRef) (bool, bool)

	switch s.state.CurrentMode {
	case SortOldest:
		less = func(a, b domain.ImageRef) (bool, bool) {
			return a.ModTime.Before(b.ModTime), a.ModTime.Equal(b.ModTime)
		}

	case SortName:
		less = func(a, b domain.ImageRef) (bool, bool) {
			na, nb := strings.ToLower(a.Name), strings.ToLower(b.Name)
			return na < nb, na == nb
		}

	case SortSize:
		less = func(a, b domain.ImageRef) (bool, bool) {
			return a.Size > b.Size, a.Size == b.Size
		}

	default:
		less = func(a, b domain.ImageRef) (bool, bool) {
			return a.ModTime.After(b.ModTime), a.ModTime.Equal(b.ModTime)
		}
	}

	sort.SliceStable(refs, func(i, j int) bool {
		lt, eq := less(refs[i], refs[j])
		if eq {
			return refs[i].Path < refs[j].Path
		}
		return lt
	})
}

// GetModeString returns a string representation of the current mode
func (s *Service) GetModeString() string {
	switch s.state.CurrentMode {
	case SortNewest:
		return "newest"
	case SortOldest:
		return "oldest"
	case SortName:
		return "name"
	case SortSize:
		return "size"
	default:
		return "unknown"
	}
}
