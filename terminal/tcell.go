package terminal

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// tcellBackend implements Backend on top of a tcell screen. tcell owns the
// raw-mode and alternate-screen transitions; this wrapper adds idempotent
// lifecycle flags and the event pump goroutine.
type tcellBackend struct {
	screen  tcell.Screen
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates the production backend. The underlying screen is allocated in
// Init so that construction never touches the terminal.
func New() Backend {
	return &tcellBackend{
		eventCh: make(chan Event, 64),
	}
}

// newWithScreen wires an externally supplied screen, used by tests with a
// tcell simulation screen.
func newWithScreen(s tcell.Screen) *tcellBackend {
	return &tcellBackend{
		screen:  s,
		eventCh: make(chan Event, 64),
	}
}

func (b *tcellBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized && !b.finalized {
		return nil
	}

	if b.screen == nil {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("stdin is not a terminal")
		}
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		b.screen = s
	}

	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	b.screen.HideCursor()

	b.stopCh = make(chan struct{})
	b.doneCh = make(chan struct{})
	go b.pollLoop()

	b.initialized = true
	b.finalized = false
	return nil
}

// pollLoop reads screen events until the screen is finalized. A panic here
// surfaces as a fatal EventError so the loop aborts and the session restores
// the terminal before anything is printed.
func (b *tcellBackend) pollLoop() {
	defer close(b.doneCh)

	defer func() {
		if r := recover(); r != nil {
			b.post(Event{Type: EventError, Err: fmt.Errorf("event poll panic: %v", r)})
		}
	}()

	for {
		tev := b.screen.PollEvent()
		if tev == nil {
			// Screen finalized, input closed
			b.post(Event{Type: EventClosed})
			return
		}

		ev, ok := translateEvent(tev)
		if !ok {
			continue
		}
		if !b.post(ev) {
			return
		}
	}
}

// post delivers an event unless shutdown has started.
func (b *tcellBackend) post(ev Event) bool {
	select {
	case b.eventCh <- ev:
		return true
	case <-b.stopCh:
		return false
	}
}

func (b *tcellBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.finalized {
		return
	}

	close(b.stopCh)
	// Fini unblocks PollEvent, which then returns nil
	b.screen.Fini()
	<-b.doneCh

	b.finalized = true
}

func (b *tcellBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.screen == nil || !b.initialized || b.finalized {
		return 80, 24 // Fallback
	}
	return b.screen.Size()
}

func (b *tcellBackend) Flush(cells []Cell, width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.finalized {
		return nil
	}

	// Validation against screen size; if mismatch, drop frame to prevent
	// resize race corruption
	currW, currH := b.screen.Size()
	if currW != width || currH != height {
		return nil
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			b.screen.SetContent(x, y, r, nil, c.Style)
		}
	}
	b.screen.Show()
	return nil
}

func (b *tcellBackend) Events() <-chan Event {
	return b.eventCh
}
