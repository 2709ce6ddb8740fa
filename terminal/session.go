package terminal

import (
	"fmt"
	"sync"
)

// Session owns the terminal mode lifetime: Enter switches into interactive
// mode, Restore switches back. Restore is idempotent and safe from any exit
// path, including panic handlers, so it can be registered as the process
// crash cleanup.
type Session struct {
	backend Backend

	mu       sync.Mutex
	entered  bool
	restored bool
}

// NewSession creates a session over a backend. The session becomes the sole
// owner of the backend's lifecycle.
func NewSession(b Backend) *Session {
	return &Session{backend: b}
}

// Enter switches the terminal into interactive mode. At most one Enter may be
// in effect without a matching Restore.
func (s *Session) Enter() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entered && !s.restored {
		return fmt.Errorf("session already active")
	}

	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("enter interactive mode: %w", err)
	}

	s.entered = true
	s.restored = false
	return nil
}

// Restore switches the terminal back to normal mode. Calling it twice, or
// before Enter, is a no-op.
func (s *Session) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.entered || s.restored {
		return
	}

	s.backend.Fini()
	s.restored = true
}

// Active reports whether the terminal is currently in interactive mode.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entered && !s.restored
}
