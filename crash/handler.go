// Package crash installs the process-wide fatal paths: every panic or fatal
// error first restores the terminal via the registered cleanup, then prints
// its diagnostics, so crash output is never corrupted by raw-mode or
// alternate-screen state.
package crash

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// ErrAlreadyInstalled is returned when Install is called a second time.
var ErrAlreadyInstalled = errors.New("crash hooks already installed")

var (
	mu        sync.Mutex
	restoreFn func()
	installed bool
)

// Test seams; the defaults are the real process surfaces.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Install registers the cleanup run before any fatal diagnostic is printed.
// It must be called exactly once, before the terminal session is entered, so
// that a failure during session setup is still reported cleanly. The cleanup
// must be idempotent; it is invoked on every fatal path.
func Install(restore func()) error {
	mu.Lock()
	defer mu.Unlock()

	if installed {
		return ErrAlreadyInstalled
	}
	restoreFn = restore
	installed = true
	return nil
}

// restoreTerminal runs the registered cleanup, tolerating the not-installed
// case so fatal reporting works even before Install.
func restoreTerminal() {
	mu.Lock()
	fn := restoreFn
	mu.Unlock()

	if fn != nil {
		fn()
	}
}

// HandleCrash is the unified panic handler: it restores the terminal and
// prints the panic value with a stack trace. Use from a deferred recover at
// the top of main and of any goroutine started with Go.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state before any output
	restoreTerminal()

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(stderr, "\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Stderr.Sync()

	exit(1)
}

// Fatal reports a top-level error after restoring the terminal, then exits
// with a non-zero status.
func Fatal(err error) {
	restoreTerminal()

	os.Stdout.Sync()
	fmt.Fprintf(stderr, "tally: %v\n", err)
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
