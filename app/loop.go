package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/tally/terminal"
)

// DefaultTick bounds the wait for input each iteration (~60 fps), so the
// loop stays responsive whether or not events arrive.
const DefaultTick = 16 * time.Millisecond

// Loop is the scheduling core: each iteration draws one frame from current
// state, waits (bounded) for an input event, and dispatches it to the state
// machine. Frames and events strictly alternate.
type Loop struct {
	Backend terminal.Backend
	App     *App
	Tick    time.Duration
	Sound   *Beeper // optional, may be nil
}

// Run drives the loop until the app signals exit or a fatal failure occurs.
// Validation errors from transitions are recoverable: they are logged, the
// state notice shows them to the user, and the loop continues. Backend
// failures abort.
func (l *Loop) Run() error {
	tick := l.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	width, height := l.Backend.Size()

	for !l.App.Done() {
		frame := Render(l.App, width, height)
		if err := l.Backend.Flush(frame.Cells, frame.Width, frame.Height); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		select {
		case ev := <-l.Backend.Events():
			switch ev.Type {
			case terminal.EventKey:
				// Only press kinds dispatch; repeat and release variants of
				// the same keystroke must not trigger a second transition
				if ev.Kind != terminal.KindPress {
					continue
				}
				if err := l.App.HandleKey(ev); err != nil {
					if !isValidation(err) {
						return fmt.Errorf("handle key %v: %w", ev.Key, err)
					}
					log.Printf("rejected input: %v", err)
					l.Sound.PlayReject()
				}

			case terminal.EventResize:
				width, height = ev.Width, ev.Height

			case terminal.EventError:
				return fmt.Errorf("read input: %w", ev.Err)

			case terminal.EventClosed:
				// Input source ended; nothing further can arrive
				return nil
			}

		case <-ticker.C:
			// No event within the bound; redraw and keep waiting
		}
	}

	return nil
}

// isValidation reports whether an error is a recoverable domain-validation
// failure rather than a fatal one.
func isValidation(err error) bool {
	return errors.Is(err, ErrCounterOverflow) || errors.Is(err, ErrCounterUnderflow)
}
