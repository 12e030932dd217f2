package navigation

import "imgswipe/internal/domain"

// State holds all navigation-related state
type State struct {
	Selection []domain.ImageRef
	Cursor    int // -1 while Selection is empty
	Direction DragDirection
}

// DragDirection is the classification of an in-flight drag gesture
type DragDirection int

const (
	DragNone DragDirection = iota
	DragLeft
	DragRight
	DragUp
	DragDown
)

func (d DragDirection) String() string {
	switch d {
	case DragLeft:
		return "left"
	case DragRight:
		return "right"
	case DragUp:
		return "up"
	case DragDown:
		return "down"
	default:
		return "none"
	}
}

// Notifier shows a transient message to the user
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Event types for navigation changes
type SelectionReplacedEvent struct {
	Count             int
	NavigationEnabled bool
}

type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

type SwipeEvent struct {
	Direction DragDirection
	Moved     bool
}
