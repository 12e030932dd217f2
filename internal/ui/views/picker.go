package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"imgswipe/internal/picker"
)

// PickerView is the picker dialog as the renderer sees it
type PickerView struct {
	Multiple    bool
	Status      picker.Status
	Err         error
	Rows        []picker.Row
	Filter      string
	Filtering   bool
	FilterInput string // rendered text input while filtering
	Total       int
	Visible     int
	Marked      int
	Sort        string
	Offset      int
	Height      int
	Root        string
}

// PickerRenderer handles rendering of the picker dialog
type PickerRenderer struct {
	styles *Styles
}

// NewPickerRenderer creates a new picker renderer
func NewPickerRenderer(styles *Styles) *PickerRenderer {
	return &PickerRenderer{styles: styles}
}

// Render draws the dialog body, width cells wide
func (r *PickerRenderer) Render(v PickerView, width int) string {
	var lines []string

	title := "Pick a Photo"
	if v.Multiple {
		title = "Pick Multiple Photos"
	}
	lines = append(lines, r.styles.Title.Render(title))

	switch {
	case v.Filtering:
		lines = append(lines, r.styles.Filter.Render("Filter: ")+v.FilterInput)
	case v.Filter != "":
		lines = append(lines, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", v.Filter)))
	default:
		lines = append(lines, r.styles.Dim.Render(truncate(v.Root, width)))
	}
	lines = append(lines, "")

	switch v.Status {
	case picker.StatusLoading:
		lines = append(lines, r.styles.Dim.Render("Looking for photos..."))
	case picker.StatusEmpty:
		lines = append(lines, r.styles.Dim.Render("No photos found. Press r to rescan."))
	case picker.StatusError:
		lines = append(lines, r.styles.StatusError.Render(fmt.Sprintf("Cannot read library: %v", v.Err)))
	default:
		lines = append(lines, r.renderList(v, width)...)
	}

	lines = append(lines, "")
	lines = append(lines, r.styles.Dim.Render(r.footer(v)))

	return strings.Join(lines, "\n")
}

func (r *PickerRenderer) renderList(v PickerView, width int) []string {
	if v.Visible == 0 {
		return []string{r.styles.Dim.Render("No photos match the filter.")}
	}

	var lines []string
	if v.Offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", v.Offset)))
	}
	for _, row := range v.Rows {
		lines = append(lines, r.RenderRow(row, v.Multiple, v.Filter, width))
	}
	if below := v.Visible - v.Offset - len(v.Rows); below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return lines
}

func (r *PickerRenderer) footer(v PickerView) string {
	count := fmt.Sprintf("%d photos", v.Total)
	if v.Visible != v.Total {
		count = fmt.Sprintf("%d of %d photos", v.Visible, v.Total)
	}
	if v.Sort != "" {
		count += " by " + v.Sort
	}
	if v.Multiple {
		return fmt.Sprintf("%s • %d marked • space mark • a all • enter open • esc cancel", count, v.Marked)
	}
	return fmt.Sprintf("%s • / filter • enter open • esc cancel", count)
}

// RenderRow renders one library entry
func (r *PickerRenderer) RenderRow(row picker.Row, multiple bool, filter string, width int) string {
	bgColor := ""
	if row.Current {
		bgColor = "238"
	}
	base := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))

	var parts []string

	if multiple {
		indicator := "[ ]"
		style := base
		if row.Marked {
			indicator = "[x]"
			style = r.styles.Marked.Background(lipgloss.Color(bgColor))
		}
		parts = append(parts, style.Render(indicator), base.Render(" "))
	}

	detail := fmt.Sprintf("  %s  %s  %s",
		humanize.Bytes(uint64(row.Ref.Size)),
		humanize.Time(row.Ref.ModTime),
		filepath.Base(filepath.Dir(row.Ref.Path)),
	)

	name := row.Ref.Name
	nameWidth := width - lipgloss.Width(strings.Join(parts, "")) - lipgloss.Width(detail)
	if nameWidth < 8 {
		nameWidth = 8
	}
	name = truncate(name, nameWidth)

	if filter != "" && !strings.HasPrefix(strings.ToLower(filter), "ext:") {
		parts = append(parts, r.highlightMatch(name, filter, r.styles.Highlight.Background(lipgloss.Color(bgColor)), base))
	} else {
		parts = append(parts, base.Render(name))
	}

	parts = append(parts, r.styles.Dim.Background(lipgloss.Color(bgColor)).Render(detail))

	line := strings.Join(parts, "")
	if row.Current {
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += base.Render(strings.Repeat(" ", pad))
		}
	}
	return line
}

// highlightMatch highlights matching text within a string
func (r *PickerRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	index := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if index == -1 || index+len(query) > len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
