package main

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Session is the manager's connection to the X server, plus the few
// ICCCM atoms it needs to talk to clients.
type Session struct {
	Display

	root               xproto.Window
	atomWMProtocols    xproto.Atom
	atomWMDeleteWindow xproto.Atom

	faultMu sync.Mutex
	fault   func(xgb.Error)

	closeOnce sync.Once
}

// OpenSession connects to the named display. An empty name means the
// one in $DISPLAY.
func OpenSession(displayName string) (*Session, error) {
	d, err := dialDisplay(displayName)
	if err != nil {
		return nil, fmt.Errorf("open display %q: %w", displayName, err)
	}
	s, err := newSession(d)
	if err != nil {
		d.Close()
		return nil, err
	}
	return s, nil
}

func newSession(d Display) (*Session, error) {
	s := &Session{
		Display: d,
		root:    d.Root(),
	}
	var err error
	if s.atomWMProtocols, err = d.Atom("WM_PROTOCOLS"); err != nil {
		return nil, fmt.Errorf("intern WM_PROTOCOLS: %w", err)
	}
	if s.atomWMDeleteWindow, err = d.Atom("WM_DELETE_WINDOW"); err != nil {
		return nil, fmt.Errorf("intern WM_DELETE_WINDOW: %w", err)
	}
	d.SetErrorHandler(s.dispatchError)
	return s, nil
}

// OnError makes h the one handler that sees protocol errors, and
// returns a function that puts the previous handler back.
func (s *Session) OnError(h func(xgb.Error)) (restore func()) {
	s.faultMu.Lock()
	prev := s.fault
	s.fault = h
	s.faultMu.Unlock()
	return func() {
		s.faultMu.Lock()
		s.fault = prev
		s.faultMu.Unlock()
	}
}

func (s *Session) dispatchError(err xgb.Error) {
	s.faultMu.Lock()
	h := s.fault
	s.faultMu.Unlock()
	if h != nil {
		h(err)
	}
}

// Close releases the connection. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(s.Display.Close)
}

// raise puts w on top of its siblings.
func (s *Session) raise(w xproto.Window) {
	s.ConfigureWindow(w, xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
}

// supportsDelete reports whether the client listed WM_DELETE_WINDOW in
// its WM_PROTOCOLS.
func (s *Session) supportsDelete(w xproto.Window) bool {
	protocols, err := s.Protocols(w)
	if err != nil {
		return false
	}
	for _, a := range protocols {
		if a == s.atomWMDeleteWindow {
			return true
		}
	}
	return false
}
