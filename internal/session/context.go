package session

import (
	"log/slog"
	"sync"

	"github.com/carrierops/interpreter/internal/model"
)

// Context holds the journal session currently open, if any.
type Context struct {
	mu      sync.RWMutex
	Session *model.Session
}

// NewContext creates a new Context with a placeholder session
func NewContext() *Context {
	return &Context{
		Session: &model.Session{Name: "No session open"},
	}
}

// GetSession returns the current session
func (sc *Context) GetSession() *model.Session {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.Session
}

// SetSession sets the current session
func (sc *Context) SetSession(s *model.Session) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.Session = s
}

// Clear restores the placeholder session.
func (sc *Context) Clear() {
	sc.SetSession(&model.Session{Name: "No session open"})
}

// LogAttrs describes the current session for log records. It has the
// signature of logging.ContextProvider.
func (sc *Context) LogAttrs() []slog.Attr {
	s := sc.GetSession()
	attrs := []slog.Attr{slog.String("session", s.Name)}
	if s.ID != 0 {
		attrs = append(attrs, slog.Uint64("sessionId", uint64(s.ID)))
	}
	if s.Source != "" {
		attrs = append(attrs, slog.String("source", s.Source))
	}
	return attrs
}
