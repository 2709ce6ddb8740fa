package app

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tally/terminal"
	"github.com/lixenwraith/tally/terminal/tui"
)

// Frame is one fully-rendered snapshot of the UI, rebuilt every iteration.
type Frame struct {
	Cells  []terminal.Cell
	Width  int
	Height int
}

var (
	styleDefault = tcell.StyleDefault
	styleKey     = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleValue   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// span is a styled run of text; bars are composed of spans drawn in sequence.
type span struct {
	text  string
	style tcell.Style
}

// Render projects application state into a frame. It reads state only, so
// rendering the same state twice yields identical cell buffers.
func Render(a *App, width, height int) Frame {
	cells := make([]terminal.Cell, width*height)
	root := tui.NewRegion(cells, width, 0, 0, width, height)
	root.Fill(styleDefault)
	root.Box(tui.LineHeavy, styleDefault)

	root.TextCenter(0, " tally ", styleTitle)

	drawSpans(root, height-1, []span{
		{" Decrement ", styleDefault},
		{"<Left>", styleKey},
		{" Increment ", styleDefault},
		{"<Right>", styleKey},
		{" Quit ", styleDefault},
		{"<Q> ", styleKey},
	})

	inner := root.Inset(1)
	valueRow := inner.H / 2
	drawSpans(inner, valueRow, []span{
		{"Value: ", styleDefault},
		{strconv.Itoa(a.Counter()), styleValue},
	})

	if n := a.Notice(); n != "" {
		inner.TextCenter(valueRow+1, n, styleNotice)
	}

	return Frame{Cells: cells, Width: width, Height: height}
}

// drawSpans draws a sequence of styled spans centered on row y.
func drawSpans(r tui.Region, y int, spans []span) {
	total := 0
	for _, s := range spans {
		total += len([]rune(s.text))
	}
	x := (r.W - total) / 2
	for _, s := range spans {
		r.Text(x, y, s.text, s.style)
		x += len([]rune(s.text))
	}
}
