package views

import "github.com/charmbracelet/lipgloss"

const (
	PickOneLabel  = " Pick a Photo "
	PickManyLabel = " Pick Multiple Photos "
	BackLabel     = " ◀ "
	ForwardLabel  = " ▶ "

	headerHeight = 2 // button row and a spacer
	buttonGap    = 2
)

// Rect is a cell rectangle on screen
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Zone names the clickable areas of the screen
type Zone int

const (
	ZoneNone Zone = iota
	ZonePickOne
	ZonePickMany
	ZoneBack
	ZoneForward
	ZoneImage
)

func (z Zone) String() string {
	switch z {
	case ZonePickOne:
		return "pick-one"
	case ZonePickMany:
		return "pick-many"
	case ZoneBack:
		return "back"
	case ZoneForward:
		return "forward"
	case ZoneImage:
		return "image"
	default:
		return "none"
	}
}

// Layout is the geometry shared by the renderer and mouse hit testing
type Layout struct {
	Width  int
	Height int

	PickOne  Rect
	PickMany Rect
	Back     Rect
	Forward  Rect
	Image    Rect

	StatusY int
	HelpY   int // -1 when the help bar is hidden
}

// NewLayout splits a width x height screen into header, body and footer
func NewLayout(width, height int, showHelpBar bool) Layout {
	l := Layout{Width: width, Height: height, HelpY: -1}

	oneW := lipgloss.Width(PickOneLabel)
	l.PickOne = Rect{X: 0, Y: 0, W: oneW, H: 1}
	l.PickMany = Rect{X: oneW + buttonGap, Y: 0, W: lipgloss.Width(PickManyLabel), H: 1}

	footer := 1
	if showHelpBar {
		footer++
	}
	bodyH := height - headerHeight - footer
	if bodyH < 1 {
		bodyH = 1
	}

	navW := lipgloss.Width(BackLabel)
	l.Back = Rect{X: 0, Y: headerHeight, W: navW, H: bodyH}
	l.Forward = Rect{X: width - navW, Y: headerHeight, W: navW, H: bodyH}

	boxW := width - 2*(navW+1)
	if boxW < 0 {
		boxW = 0
	}
	l.Image = Rect{X: navW + 1, Y: headerHeight, W: boxW, H: bodyH}

	l.StatusY = headerHeight + bodyH
	if showHelpBar {
		l.HelpY = l.StatusY + 1
	}
	return l
}

// ZoneAt returns the clickable area under the cell (x, y)
func (l Layout) ZoneAt(x, y int) Zone {
	switch {
	case l.PickOne.Contains(x, y):
		return ZonePickOne
	case l.PickMany.Contains(x, y):
		return ZonePickMany
	case l.Back.Contains(x, y):
		return ZoneBack
	case l.Forward.Contains(x, y):
		return ZoneForward
	case l.Image.Contains(x, y):
		return ZoneImage
	}
	return ZoneNone
}
