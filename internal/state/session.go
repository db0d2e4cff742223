// Package state owns the navigation state of one explorer session:
// the directory on display, the history stack, and the session phase.
// A session processes one intent at a time; nothing here touches the
// filesystem.
package state

import (
	"path/filepath"

	"burrow/internal/domain"
)

type Phase int

const (
	Browsing Phase = iota
	Exited
)

type Session struct {
	root    string
	current string
	history []string
	phase   Phase
}

func NewSession(root string) *Session {
	abs, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		abs = filepath.Clean(root)
	}
	return &Session{root: abs, current: abs}
}

func (session *Session) Root() string    { return session.root }
func (session *Session) Current() string { return session.current }
func (session *Session) Phase() Phase    { return session.phase }

func (session *Session) History() []string {
	return append([]string{}, session.history...)
}

// Enter descends into entry. Only directories can be entered; for
// anything else the session is left untouched and the caller surfaces
// a notice.
func (session *Session) Enter(entry domain.Entry) (string, bool) {
	if session.phase == Exited || entry.Kind != domain.KindDir {
		return "", false
	}
	session.history = append(session.history, session.current)
	session.current = entry.Path
	return session.current, true
}

// Up ascends one level. The history stack restores the exact path the
// user descended from; with an empty stack the filesystem parent is
// used. At the filesystem root this is a no-op.
func (session *Session) Up() (string, bool) {
	if session.phase == Exited {
		return "", false
	}
	if top := len(session.history) - 1; top >= 0 {
		session.current = session.history[top]
		session.history = session.history[:top]
		return session.current, true
	}
	parent := filepath.Dir(session.current)
	if parent == session.current {
		return "", false
	}
	session.current = parent
	return session.current, true
}

// Refresh re-reads the current directory; the history is untouched.
func (session *Session) Refresh() string {
	return session.current
}

func (session *Session) Quit() {
	session.phase = Exited
}

// AtFilesystemRoot reports whether the display is at "/" (or a drive
// root), where no parent row is offered.
func (session *Session) AtFilesystemRoot() bool {
	return filepath.Dir(session.current) == session.current
}
