package sorting

// Mode is the order of the picker listing
type Mode int

const (
	SortNewest Mode = iota
	SortOldest
	SortName
	SortSize
)

// State holds sorting state
type State struct {
	CurrentMode Mode
}

// Event types
type SortModeChangedEvent struct {
	OldMode Mode
	NewMode Mode
}
