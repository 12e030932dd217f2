package ui

import "github.com/charmbracelet/bubbles/key"

// The bindings below only feed the help bar. Key dispatch lives in
// input/modes, which matches msg.String(); keep both in step.

// viewerKeys are shown in the help bar while browsing
type viewerKeys struct {
	Back      key.Binding
	Forward   key.Binding
	PickOne   key.Binding
	PickMany  key.Binding
	Selection key.Binding
	Info      key.Binding
	Rescan    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newViewerKeys() viewerKeys {
	return viewerKeys{
		Back:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "back")),
		Forward:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "forward")),
		PickOne:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pick a photo")),
		PickMany:  key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "pick multiple")),
		Selection: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "list selection")),
		Info:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Rescan:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rescan")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k viewerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.PickOne, k.PickMany, k.Help, k.Quit}
}

func (k viewerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward},
		{k.PickOne, k.PickMany, k.Selection, k.Info},
		{k.Rescan, k.Help, k.Quit},
	}
}

// pickerKeys are shown in the help bar while the picker is open
type pickerKeys struct {
	Move    key.Binding
	Page    key.Binding
	Ends    key.Binding
	Filter  key.Binding
	Sort    key.Binding
	Mark    key.Binding
	MarkAll key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func newPickerKeys() pickerKeys {
	return pickerKeys{
		Move:    key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "move")),
		Page:    key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
		Ends:    key.NewBinding(key.WithKeys("g", "G"), key.WithHelp("g/G", "top/bottom")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Sort:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		Mark:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark")),
		MarkAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "mark all")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// forMode returns the bindings that apply to the single or the multiple picker
func (k pickerKeys) forMode(multiple bool) pickerKeys {
	k.Mark.SetEnabled(multiple)
	k.MarkAll.SetEnabled(multiple)
	return k
}

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Filter, k.Mark, k.MarkAll, k.Confirm, k.Cancel}
}

func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Page, k.Ends},
		{k.Filter, k.Sort, k.Mark, k.MarkAll},
		{k.Confirm, k.Cancel},
	}
}
