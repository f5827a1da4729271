package main

import (
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// detectMu serializes detection: only one fault handler can be armed
// on a session at a time.
var detectMu sync.Mutex

// conflictFlag records that the server refused us during detection.
type conflictFlag struct {
	mu  sync.Mutex
	set bool
}

func (f *conflictFlag) raise(xgb.Error) {
	f.mu.Lock()
	f.set = true
	f.mu.Unlock()
}

func (f *conflictFlag) isSet() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set
}

// rootEventMask is what the window manager listens to on the root
// window. Only one client may hold SubstructureRedirect at a time.
const rootEventMask = xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify

// detectExistingManager asks for substructure redirection on the root
// window and reports whether the server refused, which means another
// window manager is already running. On success the subscription
// stays in place.
func detectExistingManager(s *Session) bool {
	detectMu.Lock()
	defer detectMu.Unlock()

	var flag conflictFlag
	restore := s.OnError(flag.raise)
	defer restore()

	s.SelectInput(s.root, rootEventMask)
	s.Sync()
	return flag.isSet()
}
