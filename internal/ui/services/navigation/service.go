package navigation

import (
	"math"

	"imgswipe/internal/domain"
	"imgswipe/internal/ui/services/events"
)

// Service owns the picked images and the browsing position within them.
// Moves that are not currently legal are ignored.
type Service struct {
	state    *State
	bus      events.EventBus
	notifier Notifier
}

// NewService creates a new navigation service
func NewService(bus events.EventBus, notifier Notifier) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	return &Service{
		state: &State{
			Cursor:    -1,
			Direction: DragNone,
		},
		bus:      bus,
		notifier: notifier,
	}
}

// PickSingle replaces the selection with ref. ok=false means the picker was cancelled.
func (s *Service) PickSingle(ref domain.ImageRef, ok bool) {
	if !ok || ref.IsZero() {
		return
	}
	s.replace([]domain.ImageRef{ref})
}

// PickMultiple replaces the selection with refs. An empty result means the picker was cancelled.
func (s *Service) PickMultiple(refs []domain.ImageRef) {
	if len(refs) == 0 {
		return
	}
	s.replace(refs)
}

func (s *Service) replace(refs []domain.ImageRef) {
	s.state.Selection = append([]domain.ImageRef(nil), refs...)
	s.state.Cursor = 0
	s.bus.Publish(SelectionReplacedEvent{
		Count:             len(s.state.Selection),
		NavigationEnabled: s.NavigationEnabled(),
	})
}

// GetCursor returns the current cursor, -1 when nothing is selected
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// Len returns the number of selected images
func (s *Service) Len() int {
	return len(s.state.Selection)
}

// Selection returns a copy of the selected images in picker order
func (s *Service) Selection() []domain.ImageRef {
	return append([]domain.ImageRef(nil), s.state.Selection...)
}

// NavigationEnabled reports whether prev/next controls are active
func (s *Service) NavigationEnabled() bool {
	return len(s.state.Selection) > 1
}

// CanMoveBack reports whether an earlier image exists, so MoveBack would move
func (s *Service) CanMoveBack() bool {
	return s.NavigationEnabled() && s.state.Cursor > 0
}

// CanMoveForward reports whether a later image exists, so MoveForward would move
func (s *Service) CanMoveForward() bool {
	return s.NavigationEnabled() && s.state.Cursor < len(s.state.Selection)-1
}

// MoveBack steps to the previous image
func (s *Service) MoveBack() bool {
	if !s.CanMoveBack() {
		return false
	}
	s.moveTo(s.state.Cursor - 1)
	return true
}

// MoveForward steps to the next image
func (s *Service) MoveForward() bool {
	if !s.CanMoveForward() {
		return false
	}
	s.moveTo(s.state.Cursor + 1)
	return true
}

func (s *Service) moveTo(index int) {
	old := s.state.Cursor
	s.state.Cursor = index
	s.bus.Publish(CursorMovedEvent{OldIndex: old, NewIndex: index})
}

// CurrentImage returns the image at the cursor
func (s *Service) CurrentImage() (domain.ImageRef, bool) {
	if len(s.state.Selection) == 0 {
		return domain.ImageRef{}, false
	}
	return s.state.Selection[s.state.Cursor], true
}

// Direction returns the classification of the drag in progress
func (s *Service) Direction() DragDirection {
	return s.state.Direction
}

// ClassifyDrag folds one drag update into the gesture direction. The
// dominant axis decides; a zero delta on it keeps the previous direction,
// so the last decisive update before release wins.
func (s *Service) ClassifyDrag(dx, dy float64) DragDirection {
	if math.Abs(dx) > math.Abs(dy) {
		switch {
		case dx > 0:
			s.state.Direction = DragRight
		case dx < 0:
			s.state.Direction = DragLeft
		}
	} else {
		switch {
		case dy > 0:
			s.state.Direction = DragDown
		case dy < 0:
			s.state.Direction = DragUp
		}
	}
	return s.state.Direction
}

// EndDrag finishes a gesture. Swipes move the stack: right shows the
// previous image, left the next. Up and down only notify.
func (s *Service) EndDrag(last DragDirection) {
	defer func() { s.state.Direction = DragNone }()

	moved := false
	switch last {
	case DragRight:
		if moved = s.MoveBack(); moved {
			s.notifier.Notify("swiped right")
		}
	case DragLeft:
		if moved = s.MoveForward(); moved {
			s.notifier.Notify("swiped left")
		}
	case DragDown:
		s.notifier.Notify("swiped down")
	case DragUp:
		s.notifier.Notify("swiped up")
	default:
		return
	}

	s.bus.Publish(SwipeEvent{Direction: last, Moved: moved})
}

// CancelDrag drops the gesture in progress without acting on it
func (s *Service) CancelDrag() {
	s.state.Direction = DragNone
}
