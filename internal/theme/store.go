package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie session holding the theme.
	SessionName = "portfolio-theme"
	sessionKey  = "mode"
)

// SessionStore keeps the mode in a gorilla cookie session. It is bound to a
// single request.
type SessionStore struct {
	c echo.Context
}

// NewSessionStore returns a store for the request behind c. The session
// middleware must already be installed.
func NewSessionStore(c echo.Context) *SessionStore {
	return &SessionStore{c: c}
}

// Load reports the stored mode. A cookie that no longer decodes, for example
// one signed with a rotated secret, counts as nothing stored.
func (s *SessionStore) Load(_ context.Context) (Mode, bool, error) {
	sess, err := session.Get(SessionName, s.c)
	if sess == nil {
		return "", false, fmt.Errorf("get session: %w", err)
	}
	if err != nil {
		return "", false, nil
	}
	raw, ok := sess.Values[sessionKey].(string)
	if !ok {
		return "", false, nil
	}
	mode, err := ParseMode(raw)
	if err != nil {
		return "", false, err
	}
	return mode, true, nil
}

// Save writes mode to the session cookie, replacing any cookie that failed
// to decode.
func (s *SessionStore) Save(_ context.Context, mode Mode) error {
	sess, err := session.Get(SessionName, s.c)
	if sess == nil {
		return fmt.Errorf("get session: %w", err)
	}
	sess.Options.Path = "/"
	sess.Options.MaxAge = 365 * 24 * 60 * 60
	sess.Options.HttpOnly = true
	sess.Values[sessionKey] = string(mode)
	return sess.Save(s.c.Request(), s.c.Response())
}

// MemoryStore is an in-process Store. The zero value is empty and ready to use.
type MemoryStore struct {
	mu    sync.Mutex
	mode  Mode
	set   bool
	Fail  error // returned by Save when set
	saves int
}

// NewMemoryStore returns a store preloaded with mode.
func NewMemoryStore(mode Mode) *MemoryStore {
	return &MemoryStore{mode: mode, set: true}
}

func (s *MemoryStore) Load(_ context.Context) (Mode, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.set, nil
}

func (s *MemoryStore) Save(_ context.Context, mode Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	s.mode, s.set = mode, true
	s.saves++
	return nil
}

// Saves returns how many saves succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
