// Package picker is the media picker dialog: a filterable listing of the
// library from which one image, or several marked images, are returned.
package picker

import (
	tea "github.com/charmbracelet/bubbletea"

	"imgswipe/internal/domain"
	"imgswipe/internal/ui/services/events"
	"imgswipe/internal/ui/services/selection"
	"imgswipe/internal/ui/services/sorting"
)

// Mode selects between the single and the multiple picker
type Mode int

const (
	ModeSingle Mode = iota
	ModeMultiple
)

func (m Mode) String() string {
	if m == ModeMultiple {
		return "multiple"
	}
	return "single"
}

// Status is the state of the library listing
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusEmpty
	StatusError
)

// Result is what the picker hands back. No refs means cancelled.
type Result struct {
	Mode Mode
	Refs []domain.ImageRef
}

// Cancelled reports whether the user dismissed the picker without a choice
func (r Result) Cancelled() bool {
	return len(r.Refs) == 0
}

// PickedMsg delivers a Result to the Bubble Tea update loop
type PickedMsg struct {
	Result
}

// Deliver returns a command that hands r back to the update loop
func Deliver(r Result) tea.Cmd {
	return func() tea.Msg {
		return PickedMsg{Result: r}
	}
}

// Row is one visible line of the listing
type Row struct {
	Ref     domain.ImageRef
	Marked  bool
	Current bool
}

// Picker holds the dialog state
type Picker struct {
	open   bool
	mode   Mode
	status Status
	err    error

	items   []domain.ImageRef
	index   map[string]int
	visible []int // indices into items that match the filter

	cursor int // index into visible
	offset int
	height int
	filter string

	marks  *selection.Service
	sorter *sorting.Service
}

// New creates a closed picker
func New(bus events.EventBus) *Picker {
	p := &Picker{
		status: StatusLoading,
		index:  make(map[string]int),
		height: 10,
		marks:  selection.NewService(bus),
		sorter: sorting.NewService(bus),
	}
	p.marks.SetQueryFunction(func(i int) string {
		if i < 0 || i >= len(p.items) {
			return ""
		}
		return p.items[i].Path
	})
	return p
}

// Open shows the picker in mode with a fresh cursor, filter and marks
func (p *Picker) Open(mode Mode) {
	p.open = true
	p.mode = mode
	p.cursor = 0
	p.offset = 0
	p.filter = ""
	p.marks.DeselectAll()
	p.refilter()
}

func (p *Picker) IsOpen() bool   { return p.open }
func (p *Picker) Mode() Mode     { return p.mode }
func (p *Picker) Status() Status { return p.status }
func (p *Picker) Err() error     { return p.err }
func (p *Picker) Filter() string { return p.filter }
func (p *Picker) Total() int     { return len(p.items) }
func (p *Picker) Visible() int   { return len(p.visible) }
func (p *Picker) Marked() int    { return p.marks.GetCount() }
func (p *Picker) Cursor() int    { return p.cursor }
func (p *Picker) Offset() int    { return p.offset }

// SortMode names the listing order
func (p *Picker) SortMode() string { return p.sorter.GetModeString() }

// SetLoading marks the listing as being (re)scanned
func (p *Picker) SetLoading() {
	if len(p.items) == 0 {
		p.status = StatusLoading
	}
}

// SetItems replaces the library listing. Marks on images that are still
// present survive; the cursor stays on the same image when possible.
func (p *Picker) SetItems(items []domain.ImageRef, err error) {
	if err != nil {
		p.status = StatusError
		p.err = err
		return
	}

	currentPath := p.currentPath()

	p.err = nil
	p.items = append([]domain.ImageRef(nil), items...)
	if len(p.items) == 0 {
		p.status = StatusEmpty
	} else {
		p.status = StatusLoaded
	}
	p.reorder(currentPath)
}

// CycleSort switches to the next listing order, keeping the cursor on the same image
func (p *Picker) CycleSort() {
	currentPath := p.currentPath()
	p.sorter.NextMode()
	p.reorder(currentPath)
}

// reorder sorts the listing, re-indexes the marks and puts the cursor back on currentPath
func (p *Picker) reorder(currentPath string) {
	p.sorter.SortImages(p.items)
	p.index = make(map[string]int, len(p.items))
	for i, ref := range p.items {
		p.index[ref.Path] = i
	}
	p.marks.Retain(func(path string) (int, bool) {
		i, ok := p.index[path]
		return i, ok
	})

	p.refilter()
	if currentPath != "" {
		if i, ok := p.index[currentPath]; ok {
			for vi, idx := range p.visible {
				if idx == i {
					p.cursor = vi
					break
				}
			}
		}
	}
	p.ensureVisible()
}

func (p *Picker) currentPath() string {
	if ref, ok := p.currentRef(); ok {
		return ref.Path
	}
	return ""
}

// SetFilter narrows the listing and moves the cursor to the first match
func (p *Picker) SetFilter(query string) {
	if query == p.filter {
		return
	}
	p.filter = query
	p.cursor = 0
	p.offset = 0
	p.refilter()
}

// SetHeight sets how many rows the listing may show
func (p *Picker) SetHeight(h int) {
	if h < 1 {
		h = 1
	}
	p.height = h
	p.ensureVisible()
}

func (p *Picker) refilter() {
	p.visible = p.visible[:0]
	for i, ref := range p.items {
		if MatchesFilter(ref, p.filter) {
			p.visible = append(p.visible, i)
		}
	}
	p.clamp()
}

// Move moves the cursor by delta rows
func (p *Picker) Move(delta int) {
	p.cursor += delta
	p.clamp()
}

func (p *Picker) PageUp()   { p.Move(-(p.height - 1)) }
func (p *Picker) PageDown() { p.Move(p.height - 1) }
func (p *Picker) Home()     { p.cursor = 0; p.clamp() }
func (p *Picker) End()      { p.cursor = len(p.visible) - 1; p.clamp() }

func (p *Picker) clamp() {
	if p.cursor >= len(p.visible) {
		p.cursor = len(p.visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.ensureVisible()
}

func (p *Picker) ensureVisible() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	} else if p.cursor >= p.offset+p.height {
		p.offset = p.cursor - p.height + 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

func (p *Picker) currentRef() (domain.ImageRef, bool) {
	if p.cursor < 0 || p.cursor >= len(p.visible) {
		return domain.ImageRef{}, false
	}
	return p.items[p.visible[p.cursor]], true
}

// ToggleMark marks or unmarks the row under the cursor and steps down.
// Only the multiple picker marks.
func (p *Picker) ToggleMark() {
	if p.mode != ModeMultiple || len(p.visible) == 0 {
		return
	}
	p.marks.Toggle(p.visible[p.cursor])
	p.Move(1)
}

// MarkRange marks the visible rows from the last toggled row to the cursor
func (p *Picker) MarkRange() {
	if p.mode != ModeMultiple || len(p.visible) == 0 {
		return
	}
	p.marks.SelectRange(p.visible, p.visible[p.cursor])
}

// ToggleAll marks every visible row, or clears the marks when all visible rows are marked
func (p *Picker) ToggleAll() {
	if p.mode != ModeMultiple || len(p.visible) == 0 {
		return
	}
	allMarked := true
	for _, i := range p.visible {
		if !p.marks.IsSelected(p.items[i].Path) {
			allMarked = false
			break
		}
	}
	if allMarked {
		p.marks.DeselectAll()
		return
	}
	p.marks.SelectAll(p.visible)
}

// Confirm closes the picker with the current choice. The multiple picker
// returns its marks in listing order, or the row under the cursor when
// nothing is marked.
func (p *Picker) Confirm() Result {
	result := Result{Mode: p.mode}
	if p.mode == ModeMultiple && p.marks.HasSelection() {
		for _, i := range p.marks.GetSelected() {
			result.Refs = append(result.Refs, p.items[i])
		}
	} else if ref, ok := p.currentRef(); ok {
		result.Refs = []domain.ImageRef{ref}
	}
	p.close()
	return result
}

// Cancel closes the picker without a choice
func (p *Picker) Cancel() Result {
	mode := p.mode
	p.close()
	return Result{Mode: mode}
}

func (p *Picker) close() {
	p.open = false
	p.marks.DeselectAll()
}

// Rows returns the visible window of the listing
func (p *Picker) Rows() []Row {
	end := p.offset + p.height
	if end > len(p.visible) {
		end = len(p.visible)
	}
	rows := make([]Row, 0, end-p.offset)
	for vi := p.offset; vi < end; vi++ {
		ref := p.items[p.visible[vi]]
		rows = append(rows, Row{
			Ref:     ref,
			Marked:  p.marks.IsSelected(ref.Path),
			Current: vi == p.cursor,
		})
	}
	return rows
}
