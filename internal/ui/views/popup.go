package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
	dim    lipgloss.Style
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderPopupOverlay centres the popup over mainContent, which is greyed out
// but stays visible to the left and right of the popup
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(mainContent, "\n")
	for len(base) < height {
		base = append(base, "")
	}
	popupLines := strings.Split(styledPopup, "\n")

	out := make([]string, len(base))
	for i, line := range base {
		plain := ansi.Strip(line)
		if pad := width - ansi.StringWidth(plain); pad > 0 {
			plain += strings.Repeat(" ", pad)
		}

		row := i - y
		if row < 0 || row >= len(popupLines) {
			out[i] = pr.dim.Render(plain)
			continue
		}

		left := ansi.Truncate(plain, x, "")
		right := ansi.TruncateLeft(plain, x+modalW, "")
		out[i] = pr.dim.Render(left) + popupLines[row] + pr.dim.Render(right)
	}
	return strings.Join(out, "\n")
}
