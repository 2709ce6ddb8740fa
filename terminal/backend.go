package terminal

import "github.com/gdamore/tcell/v2"

// Cell is a single drawable terminal cell.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Backend abstracts the terminal primitives the session and the render loop
// consume: mode switching, frame submission, and decoded input events.
// The production implementation wraps a tcell screen; tests substitute fakes.
type Backend interface {
	// Lifecycle
	// Init switches the terminal into interactive mode: raw input and the
	// alternate screen buffer. It also starts event delivery on Events.
	Init() error
	// Fini restores normal mode and stops event delivery. Safe to call
	// multiple times and before Init.
	Fini()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Flush writes a full cell buffer to the terminal.
	// Cells are row-major: cells[y*width + x].
	Flush(cells []Cell, width, height int) error

	// Events returns the decoded input event channel. Delivery stops after
	// Fini; an EventClosed is posted when the input source ends.
	Events() <-chan Event
}
