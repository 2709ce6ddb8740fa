package terminal

import "github.com/gdamore/tcell/v2"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // Read or decode failure
	EventClosed // Input source ended
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyCtrlC
)

// KeyKind distinguishes the phases of a keystroke. The tcell backend only
// reports presses, but backends that distinguish repeat and release variants
// must mark them so a single logical keystroke is not dispatched twice.
type KeyKind uint8

const (
	KindPress KeyKind = iota
	KindRepeat
	KindRelease
)

// Event represents a terminal input event
type Event struct {
	Type EventType
	Key  Key
	Rune rune
	Kind KeyKind

	Width  int   // For EventResize
	Height int   // For EventResize
	Err    error // For EventError
}

// translateEvent decodes a tcell event into our event union. Events with no
// counterpart (mouse, paste, interrupts) come back as ok=false and are
// dropped by the pump.
func translateEvent(tev tcell.Event) (Event, bool) {
	switch tev := tev.(type) {
	case *tcell.EventKey:
		ev := Event{Type: EventKey, Kind: KindPress}
		switch tev.Key() {
		case tcell.KeyRune:
			ev.Key = KeyRune
			ev.Rune = tev.Rune()
		case tcell.KeyEscape:
			ev.Key = KeyEscape
		case tcell.KeyEnter:
			ev.Key = KeyEnter
		case tcell.KeyTab:
			ev.Key = KeyTab
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			ev.Key = KeyBackspace
		case tcell.KeyUp:
			ev.Key = KeyUp
		case tcell.KeyDown:
			ev.Key = KeyDown
		case tcell.KeyLeft:
			ev.Key = KeyLeft
		case tcell.KeyRight:
			ev.Key = KeyRight
		case tcell.KeyCtrlC:
			ev.Key = KeyCtrlC
		default:
			return Event{}, false
		}
		return ev, true

	case *tcell.EventResize:
		w, h := tev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventError:
		return Event{Type: EventError, Err: tev}, true
	}

	return Event{}, false
}
