package app

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/tally/terminal"
)

// fakeBackend is a scripted backend for loop and session tests. It records
// lifecycle and draw calls in order so tests can assert sequencing.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	events   chan terminal.Event
	width    int
	height   int
	initErr  error
	flushErr error
}

func newFakeBackend(events ...terminal.Event) *fakeBackend {
	ch := make(chan terminal.Event, len(events)+1)
	for _, ev := range events {
		ch <- ev
	}
	return &fakeBackend{events: ch, width: 40, height: 8}
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) Init() error {
	if f.initErr != nil {
		f.record("init-error")
		return f.initErr
	}
	f.record("init")
	return nil
}

func (f *fakeBackend) Fini() {
	f.record("fini")
}

func (f *fakeBackend) Size() (int, int) {
	return f.width, f.height
}

func (f *fakeBackend) Flush(cells []terminal.Cell, width, height int) error {
	if f.flushErr != nil {
		f.record("flush-error")
		return f.flushErr
	}
	f.record("flush")
	if len(cells) != width*height {
		return errors.New("cell buffer size mismatch")
	}
	return nil
}

func (f *fakeBackend) Events() <-chan terminal.Event {
	return f.events
}

func TestLoopQuit(t *testing.T) {
	b := newFakeBackend(keyEvent(terminal.KeyRune, 'q'))
	a := NewApp()
	l := &Loop{Backend: b, App: a, Tick: time.Second}

	if err := l.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !a.Done() {
		t.Error("Expected app done after quit key")
	}

	calls := b.Calls()
	if len(calls) == 0 || calls[0] != "flush" {
		t.Errorf("Expected a frame drawn before the first event wait, calls: %v", calls)
	}
}

func TestLoopScenarioOverflowContinues(t *testing.T) {
	// Two increments reach the cap, the third is rejected, the loop keeps
	// running until quit
	b := newFakeBackend(
		keyEvent(terminal.KeyRight, 0),
		keyEvent(terminal.KeyRight, 0),
		keyEvent(terminal.KeyRight, 0),
		keyEvent(terminal.KeyRune, 'q'),
	)
	a := NewApp()
	l := &Loop{Backend: b, App: a, Tick: time.Second}

	if err := l.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if a.Counter() != CounterMax {
		t.Errorf("Expected counter %d, got %d", CounterMax, a.Counter())
	}
}

func TestLoopScenarioUnderflowContinues(t *testing.T) {
	b := newFakeBackend(
		keyEvent(terminal.KeyLeft, 0),
		keyEvent(terminal.KeyRune, 'q'),
	)
	a := NewApp()
	l := &Loop{Backend: b, App: a, Tick: time.Second}

	if err := l.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if a.Counter() != CounterMin {
		t.Errorf("Expected counter %d, got %d", CounterMin, a.Counter())
	}
}

func TestLoopIgnoresNonPressKinds(t *testing.T) {
	release := keyEvent(terminal.KeyRight, 0)
	release.Kind = terminal.KindRelease
	repeat := keyEvent(terminal.KeyRight, 0)
	repeat.Kind = terminal.KindRepeat

	b := newFakeBackend(release, repeat, keyEvent(terminal.KeyRune, 'q'))
	a := NewApp()
	l := &Loop{Backend: b, App: a, Tick: time.Second}

	if err := l.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if a.Counter() != 0 {
		t.Errorf("Expected non-press kinds ignored, counter is %d", a.Counter())
	}
}

func TestLoopFatalDrawError(t *testing.T) {
	b := newFakeBackend()
	b.flushErr = errors.New("terminal gone")
	a := NewApp()
	l := &Loop{Backend: b, App: a, Tick: time.Second}

	err := l.Run()
	if err == nil {
		t.Fatal("Expected error from failing draw")
	}
	if !errors.Is(err, b.flushErr) {
		t.Errorf("Expected wrapped draw error, got %v", err)
	}
}

func TestLoopFatalInputError(t *testing.T) {
	readErr := errors.New("input torn down")
	b := newFakeBackend(terminal.Event{Type: terminal.EventError, Err: readErr})
	a := NewApp()
	l := &Loop{Backend: b, App: a, Tick: time.Second}

	err := l.Run()
	if !errors.Is(err, readErr) {
		t.Errorf("Expected wrapped input error, got %v", err)
	}
}

func TestLoopInputClosed(t *testing.T) {
	b := newFakeBackend(terminal.Event{Type: terminal.EventClosed})
	l := &Loop{Backend: b, App: NewApp(), Tick: time.Second}

	if err := l.Run(); err != nil {
		t.Errorf("Expected clean exit on closed input, got %v", err)
	}
}

func TestLoopResizeRedraws(t *testing.T) {
	b := newFakeBackend(
		terminal.Event{Type: terminal.EventResize, Width: 60, Height: 10},
		keyEvent(terminal.KeyRune, 'q'),
	)
	a := NewApp()
	l := &Loop{Backend: b, App: a, Tick: time.Second}

	if err := l.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Two frames flushed: one per pre-dispatch draw at each iteration
	calls := strings.Join(b.Calls(), ",")
	if calls != "flush,flush" {
		t.Errorf("Expected strict frame/event alternation, calls: %v", calls)
	}
}

func TestLoopAlternatesFramesAndEvents(t *testing.T) {
	b := newFakeBackend(
		keyEvent(terminal.KeyRight, 0),
		keyEvent(terminal.KeyLeft, 0),
		keyEvent(terminal.KeyRune, 'q'),
	)
	l := &Loop{Backend: b, App: NewApp(), Tick: time.Second}

	if err := l.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// One flush per consumed event, each preceding its event
	flushes := 0
	for _, c := range b.Calls() {
		if c == "flush" {
			flushes++
		}
	}
	if flushes != 3 {
		t.Errorf("Expected 3 frames for 3 events, got %d", flushes)
	}
}
