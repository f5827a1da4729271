package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog/log"
)

// closeClient asks client to close itself if it speaks
// WM_DELETE_WINDOW, and otherwise kills its connection.
func (wm *WM) closeClient(client xproto.Window) error {
	if !wm.xs.supportsDelete(client) {
		log.Info().Uint32("client", uint32(client)).Msg("killing client")
		wm.xs.KillClient(client)
		return nil
	}
	// ICCCM 4.2.8 ClientMessage
	log.Info().Uint32("client", uint32(client)).Msg("asking client to close")
	wm.xs.SendClientMessage(xproto.ClientMessageEvent{
		Format: 32,
		Window: client,
		Type:   wm.xs.atomWMProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(wm.xs.atomWMDeleteWindow),
			xproto.TimeCurrentTime,
			0,
			0,
			0,
		}),
	})
	return nil
}

// focusNext raises and focuses the client framed after current.
func (wm *WM) focusNext(current xproto.Window) error {
	next, ok := wm.clients.Next(current)
	if !ok {
		return nil
	}
	frame, ok := wm.clients.FrameOf(next)
	if !ok {
		return nil
	}
	wm.xs.raise(frame)
	wm.xs.SetInputFocus(next)
	log.Debug().
		Uint32("from", uint32(current)).
		Uint32("to", uint32(next)).
		Msg("focus moved")
	return nil
}

func (wm *WM) onKeyPress(e xproto.KeyPressEvent) error {
	g := wm.grabFor(e.Detail, e.State)
	if g == nil {
		log.Debug().Uint8("keycode", uint8(e.Detail)).Msg("key press without binding")
		return nil
	}
	log.Debug().Str("keysym", g.sym).Uint32("window", uint32(e.Event)).Msg("key binding")
	return g.callback(e.Event)
}
