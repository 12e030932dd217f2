package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Filter         lipgloss.Style
	InfoBox        lipgloss.Style
	PickerBox      lipgloss.Style
	Help           lipgloss.Style
	Scroll         lipgloss.Style
	Highlight      lipgloss.Style
	SelectionBg    lipgloss.Style
	Marked         lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	NavButton      lipgloss.Style
	Toast          lipgloss.Style
	Placeholder    lipgloss.Style
	StatusError    lipgloss.Style
	StatusLoading  lipgloss.Style
	StatusSuccess  lipgloss.Style
}

// ImageBoxColor is the light grey behind the picture
const ImageBoxColor = "252"

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		PickerBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("99")),
		Help:        lipgloss.NewStyle().Faint(true),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Marked:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Bold(true),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("237")),
		NavButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Bold(true),
		Toast:         lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true), // cyan
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color(ImageBoxColor)),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
