package app

import (
	"errors"

	"github.com/lixenwraith/tally/terminal"
)

// Counter bounds. A transition that would leave this range is rejected
// before any mutation, so the counter is never observable out of range.
const (
	CounterMin = 0
	CounterMax = 2
)

var (
	ErrCounterOverflow  = errors.New("counter overflow")
	ErrCounterUnderflow = errors.New("counter underflow")
)

// App holds the application state driven by the render loop: a bounded
// counter and a monotonic exit flag. State is mutated only through HandleKey.
type App struct {
	counter int
	exit    bool
	notice  string
}

// NewApp returns the initial state: counter zero, running.
func NewApp() *App {
	return &App{}
}

// Counter returns the current counter value.
func (a *App) Counter() int { return a.counter }

// Done reports whether a quit transition has been applied. Once true it
// never resets.
func (a *App) Done() bool { return a.exit }

// Notice returns the user-visible message from the last rejected transition,
// empty after any successful one.
func (a *App) Notice() string { return a.notice }

// HandleKey applies the transition for a key event. Rejected transitions
// return a validation error and leave the counter unchanged; unbound keys
// succeed as no-ops. After quit, every event is a no-op.
func (a *App) HandleKey(ev terminal.Event) error {
	if a.exit {
		return nil
	}

	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		a.quit()
	case terminal.KeyRight:
		return a.increment()
	case terminal.KeyLeft:
		return a.decrement()
	case terminal.KeyRune:
		switch ev.Rune {
		case 'q', 'Q':
			a.quit()
		case '+', 'k':
			return a.increment()
		case '-', 'j':
			return a.decrement()
		}
	}
	return nil
}

func (a *App) quit() {
	a.exit = true
}

func (a *App) increment() error {
	if a.counter >= CounterMax {
		a.notice = "counter is at its maximum"
		return ErrCounterOverflow
	}
	a.counter++
	a.notice = ""
	return nil
}

func (a *App) decrement() error {
	if a.counter <= CounterMin {
		a.notice = "counter is at its minimum"
		return ErrCounterUnderflow
	}
	a.counter--
	a.notice = ""
	return nil
}
