package selection

import (
	"sort"

	"imgswipe/internal/ui/services/events"
)

// Service keeps the set of images marked in the multiple picker
type Service struct {
	state   *State
	bus     events.EventBus
	queryFn func(int) string // path of the library item at index
}

// NewService creates a new selection service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Marked:       make(map[string]int),
			LastSelected: -1,
		},
		bus: bus,
	}
}

// SetQueryFunction sets the function used to resolve library indices to paths
func (s *Service) SetQueryFunction(fn func(int) string) {
	s.queryFn = fn
}

// Toggle flips the mark of the library item at index
func (s *Service) Toggle(index int) {
	if s.queryFn == nil {
		return
	}

	path := s.queryFn(index)
	if path == "" {
		return
	}

	var added, removed []string
	if _, ok := s.state.Marked[path]; ok {
		delete(s.state.Marked, path)
		removed = append(removed, path)
	} else {
		s.state.Marked[path] = index
		added = append(added, path)
	}

	s.state.LastSelected = index

	s.bus.Publish(SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.Marked),
	})
}

// SelectRange marks the entries of order lying between the last toggled
// index and toIndex, both inclusive. order lists library indices as the user
// sees them, so rows hidden by a filter are never marked. Nothing happens
// when either end is missing from order.
func (s *Service) SelectRange(order []int, toIndex int) {
	if s.queryFn == nil || s.state.LastSelected < 0 {
		return
	}

	start, end := -1, -1
	for pos, i := range order {
		if i == s.state.LastSelected {
			start = pos
		}
		if i == toIndex {
			end = pos
		}
	}
	if start < 0 || end < 0 {
		return
	}
	if start > end {
		start, end = end, start
	}

	var added []string
	for _, i := range order[start : end+1] {
		path := s.queryFn(i)
		if _, ok := s.state.Marked[path]; path != "" && !ok {
			s.state.Marked[path] = i
			added = append(added, path)
		}
	}
	s.state.LastSelected = toIndex

	if len(added) > 0 {
		s.bus.Publish(SelectionChangedEvent{
			Added: added,
			Total: len(s.state.Marked),
		})
	}
}

// SelectAll marks exactly the given library indices
func (s *Service) SelectAll(indices []int) {
	s.state.Marked = make(map[string]int)
	var paths []string
	for _, i := range indices {
		if s.queryFn == nil {
			break
		}
		if path := s.queryFn(i); path != "" {
			s.state.Marked[path] = i
			paths = append(paths, path)
		}
	}

	s.bus.Publish(AllSelectedEvent{Paths: paths})
}

// DeselectAll clears all marks
func (s *Service) DeselectAll() {
	s.state.Marked = make(map[string]int)
	s.state.LastSelected = -1

	s.bus.Publish(SelectionClearedEvent{})
}

// IsSelected checks if a path is marked
func (s *Service) IsSelected(path string) bool {
	_, ok := s.state.Marked[path]
	return ok
}

// GetSelected returns the library indices of marked items in library order
func (s *Service) GetSelected() []int {
	indices := make([]int, 0, len(s.state.Marked))
	for _, i := range s.state.Marked {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// GetCount returns the number of marked items
func (s *Service) GetCount() int {
	return len(s.state.Marked)
}

// HasSelection returns true if anything is marked
func (s *Service) HasSelection() bool {
	return len(s.state.Marked) > 0
}

// Retain drops marks whose path is no longer in the library and re-indexes
// the rest, e.g. after a rescan
func (s *Service) Retain(indexOf func(path string) (int, bool)) {
	var removed []string
	for path := range s.state.Marked {
		if i, ok := indexOf(path); ok {
			s.state.Marked[path] = i
		} else {
			delete(s.state.Marked, path)
			removed = append(removed, path)
		}
	}
	s.state.LastSelected = -1

	if len(removed) > 0 {
		s.bus.Publish(SelectionChangedEvent{
			Removed: removed,
			Total:   len(s.state.Marked),
		})
	}
}
