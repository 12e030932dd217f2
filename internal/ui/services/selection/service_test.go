package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"imgswipe/internal/ui/services/events"
)

var library = []string{"/p/a.png", "/p/b.png", "/p/c.png", "/p/d.png", "/p/e.png"}

func newService() *Service {
	s := NewService(nil)
	s.SetQueryFunction(func(i int) string {
		if i < 0 || i >= len(library) {
			return ""
		}
		return library[i]
	})
	return s
}

func TestToggleKeepsLibraryOrder(t *testing.T) {
	s := newService()
	s.Toggle(3)
	s.Toggle(0)
	s.Toggle(2)

	assert.Equal(t, []int{0, 2, 3}, s.GetSelected())
	assert.True(t, s.IsSelected("/p/d.png"))

	s.Toggle(0)
	assert.Equal(t, []int{2, 3}, s.GetSelected())
	assert.Equal(t, 2, s.GetCount())
}

func TestToggleOutOfRangeIgnored(t *testing.T) {
	s := newService()
	s.Toggle(99)
	assert.False(t, s.HasSelection())
}

func TestSelectRange(t *testing.T) {
	s := newService()
	all := []int{0, 1, 2, 3, 4}
	s.SelectRange(all, 2)
	assert.False(t, s.HasSelection(), "range needs an anchor")

	s.Toggle(3)
	s.SelectRange(all, 1)
	assert.Equal(t, []int{1, 2, 3}, s.GetSelected())
}

func TestSelectRangeSkipsIndicesOutsideOrder(t *testing.T) {
	s := newService()
	visible := []int{0, 3, 4}

	s.Toggle(0)
	s.SelectRange(visible, 4)
	assert.Equal(t, []int{0, 3, 4}, s.GetSelected())
}

func TestSelectRangeNeedsVisibleAnchor(t *testing.T) {
	s := newService()
	s.Toggle(1)
	s.SelectRange([]int{0, 3, 4}, 4)
	assert.Equal(t, []int{1}, s.GetSelected())
}

func TestSelectAllAndClear(t *testing.T) {
	s := newService()
	s.Toggle(4)
	s.SelectAll([]int{0, 1})
	assert.Equal(t, []int{0, 1}, s.GetSelected())

	s.DeselectAll()
	assert.Empty(t, s.GetSelected())
}

func TestRetainReindexes(t *testing.T) {
	s := newService()
	s.Toggle(1)
	s.Toggle(4)

	positions := map[string]int{"/p/e.png": 0}
	s.Retain(func(path string) (int, bool) {
		i, ok := positions[path]
		return i, ok
	})

	assert.Equal(t, []int{0}, s.GetSelected())
	assert.False(t, s.IsSelected("/p/b.png"))
}

func TestPublishesChanges(t *testing.T) {
	bus := events.NewBus()
	var got []SelectionChangedEvent
	bus.Subscribe(events.TypeOf(SelectionChangedEvent{}), func(e interface{}) {
		got = append(got, e.(SelectionChangedEvent))
	})

	s := NewService(bus)
	s.SetQueryFunction(func(i int) string { return library[i] })
	s.Toggle(0)
	s.Toggle(0)

	assert.Equal(t, []SelectionChangedEvent{
		{Added: []string{"/p/a.png"}, Total: 1},
		{Removed: []string{"/p/a.png"}, Total: 0},
	}, got)
}
