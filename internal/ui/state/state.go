package state

import (
	"imgswipe/internal/domain"
)

// Frame is the last rendered image, stamped with what it was rendered for
type Frame struct {
	Path    string
	Cols    int
	Rows    int
	Content string
	Format  string
	Width   int // source pixels
	Height  int
	Err     error
}

// Matches reports whether the frame was rendered for path at cols x rows
func (f Frame) Matches(path string, cols, rows int) bool {
	return f.Path == path && f.Cols == cols && f.Rows == rows
}

// AppState contains all the application state outside the navigator and picker
type AppState struct {
	// Library data
	LibraryRoot string
	Library     []domain.ImageRef
	Scanning    bool
	ScanErr     error

	// Rendering
	Frame         Frame
	RenderPending string // path of the frame being rendered, if any

	// UI state
	ShowInfo      bool
	StatusMessage string // status bar message
	StatusIsError bool
	Toast         string
	ToastSeq      int
	LoadingCount  int // spinner frame while scanning
}

// NewAppState creates a new application state
func NewAppState(libraryRoot string) *AppState {
	return &AppState{
		LibraryRoot: libraryRoot,
		Library:     make([]domain.ImageRef, 0),
	}
}

// SetStatus shows a status bar message
func (s *AppState) SetStatus(message string, isError bool) {
	s.StatusMessage = message
	s.StatusIsError = isError
}

// ShowToast replaces the current toast and returns its sequence number.
// A toast is only cleared by the expiry carrying the same number.
func (s *AppState) ShowToast(message string) int {
	s.ToastSeq++
	s.Toast = message
	return s.ToastSeq
}

// ExpireToast clears the toast if seq is still the current one
func (s *AppState) ExpireToast(seq int) {
	if seq == s.ToastSeq {
		s.Toast = ""
	}
}

// SetLibrary replaces the library listing
func (s *AppState) SetLibrary(images []domain.ImageRef, err error) {
	s.Scanning = false
	s.ScanErr = err
	if err == nil {
		s.Library = append([]domain.ImageRef(nil), images...)
	}
}
