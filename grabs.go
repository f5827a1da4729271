package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog/log"
)

// modKey is held down for every binding the window manager owns.
const modKey = xproto.ModMask1

// Pointer bindings on client windows.
const (
	moveButton   = xproto.ButtonIndex1
	resizeButton = xproto.ButtonIndex3

	moveButtonMask   = xproto.KeyButMaskButton1
	resizeButtonMask = xproto.KeyButMaskButton3
)

// Grab represents a key grab and its callback
type Grab struct {
	sym       string
	modifiers uint16
	codes     []xproto.Keycode
	callback  func(client xproto.Window) error
}

func (wm *WM) getGrabs() []*Grab {
	return []*Grab{
		{
			sym:       "F4",
			modifiers: modKey,
			callback:  wm.closeClient,
		},
		{
			sym:       "Tab",
			modifiers: modKey,
			callback:  wm.focusNext,
		},
	}
}

// initKeys resolves the keysyms of every Grab to the keycodes of the
// current keyboard mapping.
func (wm *WM) initKeys() {
	wm.grabs = wm.getGrabs()
	for _, g := range wm.grabs {
		g.codes = wm.xs.Keycodes(g.sym)
		if len(g.codes) == 0 {
			log.Warn().Str("keysym", g.sym).Msg("no keycode for keysym, binding disabled")
		}
	}
}

// grabClient installs the window manager's bindings on a client.
func (wm *WM) grabClient(client xproto.Window) {
	wm.xs.GrabButton(client, moveButton, modKey)
	wm.xs.GrabButton(client, resizeButton, modKey)
	for _, g := range wm.grabs {
		for _, code := range g.codes {
			wm.xs.GrabKey(client, code, g.modifiers)
		}
	}
}

// grabFor finds the Grab a key press triggers, if any.
func (wm *WM) grabFor(code xproto.Keycode, state uint16) *Grab {
	for _, g := range wm.grabs {
		if state&g.modifiers != g.modifiers {
			continue
		}
		for _, c := range g.codes {
			if c == code {
				return g
			}
		}
	}
	return nil
}
