package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"imgswipe/internal/domain"
)

// Placeholder is shown in the image box when nothing is picked
const Placeholder = "No Image to Display"

var spinner = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ImageInfo describes the decoded current image
type ImageInfo struct {
	Format string
	Width  int
	Height int
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Layout Layout

	// Header
	Scanning     bool
	SpinnerFrame int
	LibraryCount int

	// Image box
	HasImage       bool
	Current        domain.ImageRef
	Position       int // 1-based
	Count          int
	Frame          string
	FrameErr       error
	FrameReady     bool
	CanMoveBack    bool
	CanMoveForward bool

	// Footer
	StatusMessage string
	StatusIsError bool
	Toast         string
	ShowHelpBar   bool
	HelpModel     help.Model
	Keys          help.KeyMap

	// Overlays
	ShowInfo bool
	Info     ImageInfo
	Picker   *PickerView
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	pickerRender *PickerRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		pickerRender: NewPickerRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	l := state.Layout
	if l.Width <= 0 || l.Height <= 0 {
		return ""
	}

	lines := []string{
		r.renderHeader(state),
		"",
		r.renderBody(state),
		r.renderStatus(state),
	}
	if state.ShowHelpBar && state.Keys != nil {
		state.HelpModel.Width = l.Width
		lines = append(lines, state.HelpModel.View(state.Keys))
	}
	content := lipgloss.NewStyle().MaxWidth(l.Width).MaxHeight(l.Height).Render(strings.Join(lines, "\n"))

	// Overlay popups on top of main content
	if state.Picker != nil {
		width := l.Width - 10
		if width > 100 {
			width = 100
		}
		body := r.pickerRender.Render(*state.Picker, width)
		return r.popupRender.RenderPopupOverlay(content, body, l.Height, l.Width, r.styles.PickerBox.Width(width+2))
	}

	if state.ShowInfo && state.HasImage {
		return r.popupRender.RenderPopupOverlay(content, r.renderInfo(state), l.Height, l.Width, r.styles.InfoBox)
	}

	return content
}

func (r *Renderer) renderHeader(state ViewState) string {
	one := r.styles.Button.Render(PickOneLabel)
	many := r.styles.Button.Render(PickManyLabel)
	left := one + strings.Repeat(" ", buttonGap) + many

	var right string
	if state.Scanning {
		frame := spinner[state.SpinnerFrame%len(spinner)]
		right = r.styles.Dim.Render(fmt.Sprintf("%s Scanning", frame))
	} else {
		right = r.styles.Dim.Render(english.Plural(state.LibraryCount, "photo", ""))
	}

	padding := state.Layout.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		return left
	}
	return left + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderBody(state ViewState) string {
	l := state.Layout

	back := r.renderNavButton(BackLabel, state.CanMoveBack, l.Back)
	forward := r.renderNavButton(ForwardLabel, state.CanMoveForward, l.Forward)

	if l.Image.Empty() {
		return lipgloss.JoinHorizontal(lipgloss.Top, back, forward)
	}
	box := lipgloss.Place(l.Image.W, l.Image.H, lipgloss.Center, lipgloss.Center,
		r.renderImage(state),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(ImageBoxColor)))

	return lipgloss.JoinHorizontal(lipgloss.Top, back, " ", box, " ", forward)
}

func (r *Renderer) renderNavButton(label string, enabled bool, zone Rect) string {
	style := r.styles.ButtonDisabled
	if enabled {
		style = r.styles.NavButton
	}
	return lipgloss.Place(zone.W, zone.H, lipgloss.Center, lipgloss.Center, style.Render(label))
}

func (r *Renderer) renderImage(state ViewState) string {
	switch {
	case !state.HasImage:
		return r.styles.Placeholder.Render(Placeholder)
	case state.FrameErr != nil:
		msg := fmt.Sprintf("Cannot display %s: %v", state.Current.Name, state.FrameErr)
		return r.styles.StatusError.Background(lipgloss.Color(ImageBoxColor)).Render(truncate(msg, state.Layout.Image.W))
	case !state.FrameReady:
		return r.styles.Placeholder.Render(truncate(fmt.Sprintf("Loading %s...", state.Current.Name), state.Layout.Image.W))
	}
	return state.Frame
}

func (r *Renderer) renderStatus(state ViewState) string {
	var parts []string
	if state.HasImage {
		parts = append(parts, fmt.Sprintf("%d/%d", state.Position, state.Count))
		parts = append(parts, state.Current.Name)
	}
	left := r.styles.Status.Render(strings.Join(parts, "  "))

	var right string
	switch {
	case state.Toast != "":
		right = r.styles.Toast.Render(state.Toast)
	case state.StatusIsError:
		right = r.styles.StatusError.Render(state.StatusMessage)
	case state.StatusMessage != "":
		right = r.styles.Status.Render(state.StatusMessage)
	}

	if left == "" || right == "" {
		return left + right
	}
	return left + "  " + right
}

func (r *Renderer) renderInfo(state ViewState) string {
	ref := state.Current
	label := r.styles.Dim
	rows := [][2]string{
		{"Path", ref.Path},
		{"Size", humanize.Bytes(uint64(ref.Size))},
		{"Modified", ref.ModTime.Format(time.DateTime)},
	}
	if state.Info.Width > 0 {
		rows = append(rows,
			[2]string{"Dimensions", fmt.Sprintf("%d x %d", state.Info.Width, state.Info.Height)},
			[2]string{"Format", state.Info.Format},
		)
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(ref.Name))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(label.Render(fmt.Sprintf("%-11s", row[0])))
		b.WriteString(row[1])
	}
	return b.String()
}
