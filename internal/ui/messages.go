package ui

import (
	"imgswipe/internal/eventbus"
	"imgswipe/internal/render"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// FrameMsg carries a rendered image back to the update loop
type FrameMsg struct {
	Path    string
	Cols    int
	Rows    int
	Content string
	Picture render.Picture
	Err     error
}

// toastExpiredMsg clears the toast with the same sequence number
type toastExpiredMsg struct {
	seq int
}

// pagerDoneMsg is sent after the ov pager exits
type pagerDoneMsg struct {
	title string
	err   error
}
