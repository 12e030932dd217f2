package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventScanRequested  EventType = "ScanRequested"
	EventScanStarted    EventType = "ScanStarted"
	EventScanCompleted  EventType = "ScanCompleted"
	EventLibraryChanged EventType = "LibraryChanged"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ScanRequestedEvent is emitted to request a new library scan
type ScanRequestedEvent struct {
	Root string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// ScanStartedEvent is emitted when library scanning begins
type ScanStartedEvent struct {
	Root string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent carries the full library listing, newest first
type ScanCompletedEvent struct {
	Root   string
	Images []ImageRef
	Err    error
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// LibraryChangedEvent is emitted by the watcher when files under the library root change
type LibraryChangedEvent struct {
	Root  string
	Paths []string
}

func (e LibraryChangedEvent) Type() EventType { return EventLibraryChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path       string
	LibraryDir string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
