package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/noborus/ov/oviewer"

	"imgswipe/internal/domain"
)

var errNoProgram = errors.New("program not set")

// Pager shows long text in the ov pager, handing it the terminal meanwhile
type Pager struct {
	program *tea.Program
	run     func(content string) error
}

// NewPager creates a pager backed by ov
func NewPager() *Pager {
	return &Pager{run: runOv}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show returns a command that pages content and reports back with a pagerDoneMsg
func (p *Pager) Show(title, content string) tea.Cmd {
	return func() tea.Msg {
		return pagerDoneMsg{title: title, err: p.page(content)}
	}
}

func (p *Pager) page(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return p.run(content)
}

func runOv(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)
	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginTop(1)
	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Browsing", []helpEntry{
		{"←/h", "Previous photo"},
		{"→/l", "Next photo"},
		{"drag", "Swipe right for the previous photo, left for the next"},
		{"click ◀ ▶", "Previous / next photo"},
		{"i", "Show photo info"},
		{"s", "List the picked photos"},
	}},
	{"Picking", []helpEntry{
		{"p", "Pick a photo"},
		{"P", "Pick multiple photos"},
		{"r", "Rescan the library"},
	}},
	{"Picker", []helpEntry{
		{"↑/↓, j/k", "Move"},
		{"PgUp/PgDn", "Page up/down"},
		{"g/G", "Go to top/bottom"},
		{"/", "Filter by name"},
		{"o", "Sort by newest, oldest, name or size"},
		{"Space", "Mark photo (multiple)"},
		{"v", "Mark range (multiple)"},
		{"a", "Mark or unmark all (multiple)"},
		{"Enter", "Open the marked photos, or the one under the cursor"},
		{"Esc", "Cancel"},
	}},
	{"Other", []helpEntry{
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
}

// helpContent renders the key reference for the pager
func helpContent() string {
	var help strings.Builder

	help.WriteString(helpTitleStyle.Render("imgswipe Help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString(helpSectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s  %s\n", helpKeyStyle.Render(fmt.Sprintf("%-10s", e.keys)), helpDescStyle.Render(e.desc)))
		}
	}
	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Filter examples: beach, 2024/, ext:png"))
	help.WriteString("\n")

	return help.String()
}

// selectionContent lists the picked photos with the current one marked
func selectionContent(refs []domain.ImageRef, cursor int) string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render(fmt.Sprintf("Picked photos (%d)", len(refs))))
	b.WriteString("\n")
	for i, ref := range refs {
		marker := "  "
		if i == cursor {
			marker = helpKeyStyle.Render("▶ ")
		}
		b.WriteString(fmt.Sprintf("%s%3d  %s  %s  %s\n", marker, i+1, ref.Name,
			helpDescStyle.Render(humanize.Bytes(uint64(ref.Size))), ref.Path))
	}
	return b.String()
}
