package selection

// State holds the picker's marks
type State struct {
	Marked       map[string]int // path -> library index, for ordering
	LastSelected int            // for range marking
}

// Event types
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

type SelectionClearedEvent struct{}

type AllSelectedEvent struct {
	Paths []string
}
