package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog/log"
)

// WM holds the global window manager state.
type WM struct {
	xs      *Session
	clients *Registry
	drag    *dragSession

	grabs []*Grab

	// hub is nil unless the API is enabled.
	hub *eventHub
}

// NewWM returns a WM that will manage the display behind s.
func NewWM(s *Session) *WM {
	return &WM{
		xs:      s,
		clients: NewRegistry(),
	}
}

// Init takes over the display: it makes sure no other window manager
// is running, switches to the steady-state error handler and frames
// the windows that are already on screen.
func (wm *WM) Init() error {
	if detectExistingManager(wm.xs) {
		return errAnotherWM
	}
	wm.xs.OnError(logXError)
	wm.initKeys()
	return wm.manageExisting()
}

// Deinit releases the connection to the X server.
func (wm *WM) Deinit() {
	log.Info().Msg("closing display")
	wm.xs.Close()
}

// manageExisting frames every top-level window that is visible and
// wants to be managed. The server is grabbed so the tree cannot change
// while we walk it.
func (wm *WM) manageExisting() error {
	wm.xs.GrabServer()
	defer wm.xs.UngrabServer()

	windows, err := wm.xs.TopLevelWindows()
	if err != nil {
		return err
	}
	for _, w := range windows {
		wm.Frame(w, true)
	}
	return nil
}

// Run dispatches events until the connection to the server goes away.
func (wm *WM) Run() error {
	for {
		err := wm.handleEvent()
		switch err {
		case nil:
		case errConnClosed:
			return err
		default:
			log.Error().Err(err).Msg("event handler failed")
		}
	}
}

// frameOf is Registry.FrameOf for event handlers: events about windows
// we do not manage are routine, so the miss is only logged at debug.
func (wm *WM) frameOf(client xproto.Window) (xproto.Window, bool) {
	frame, ok := wm.clients.FrameOf(client)
	if !ok {
		log.Debug().Uint32("window", uint32(client)).Msg("window is not managed")
	}
	return frame, ok
}
