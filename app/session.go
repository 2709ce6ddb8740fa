package app

import "github.com/lixenwraith/tally/terminal"

// Run wraps the loop's lifetime in the terminal session: enter interactive
// mode, run until exit or failure, and restore on every path out, including
// panics unwinding through here. Any error is returned only after the
// terminal is back in normal mode, so the caller can print it safely.
func Run(guard *terminal.Session, loop *Loop) error {
	if err := guard.Enter(); err != nil {
		return err
	}
	defer guard.Restore()

	return loop.Run()
}
