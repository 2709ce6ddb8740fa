package tui

import "github.com/gdamore/tcell/v2"

// Text draws a string at position, clipped to region bounds
func (r Region) Text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.Cell(x+i, y, ch, style)
	}
}

// TextCenter draws a string horizontally centered on row y
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	x := (r.W - len([]rune(s))) / 2
	r.Text(x, y, s, style)
}

// TextRight draws a string right-aligned on row y
func (r Region) TextRight(y int, s string, style tcell.Style) {
	r.Text(r.W-len([]rune(s)), y, s, style)
}
