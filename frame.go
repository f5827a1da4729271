package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog/log"
)

// Frame decoration.
const (
	frameBorderWidth = 3
	frameBorderColor = 0xff0000
	frameBackground  = 0x0000ff
)

// Frame wraps client in a new decoration window and starts managing
// it. Windows that existed before we started (preExisting) are only
// framed if they are visible and do not set override-redirect; windows
// that asked to be mapped are always framed.
//
// It reports whether a frame was created.
func (wm *WM) Frame(client xproto.Window, preExisting bool) bool {
	logger := log.With().Uint32("client", uint32(client)).Logger()
	if wm.clients.IsManaged(client) {
		logger.Debug().Msg("already framed")
		return false
	}
	attrs, err := wm.xs.Attributes(client)
	if err != nil {
		logger.Info().Err(err).Msg("cannot read attributes, not framing")
		return false
	}
	if preExisting && (attrs.OverrideRedirect || attrs.MapState != xproto.MapStateViewable) {
		logger.Debug().
			Bool("override_redirect", attrs.OverrideRedirect).
			Uint8("map_state", attrs.MapState).
			Msg("skipping existing window")
		return false
	}

	frame, err := wm.xs.CreateWindow(
		wm.xs.root,
		attrs.Rect,
		frameBorderWidth,
		frameBorderColor,
		frameBackground,
	)
	if err != nil {
		logger.Error().Err(err).Msg("cannot create frame")
		return false
	}
	wm.xs.SelectInput(frame, rootEventMask)
	// If we die, the server puts the client back on the root window.
	wm.xs.ChangeSaveSet(client, xproto.SetModeInsert)
	wm.xs.ReparentWindow(client, frame, 0, 0)
	wm.xs.MapWindow(frame)
	wm.clients.Register(client, frame)
	wm.grabClient(client)

	logger.Info().Uint32("frame", uint32(frame)).Msg("framed window")
	return true
}

// Unframe undoes Frame: the client goes back to the root window and its
// frame is destroyed.
func (wm *WM) Unframe(client xproto.Window) bool {
	frame, ok := wm.clients.FrameOf(client)
	if !ok {
		return false
	}
	wm.xs.UnmapWindow(frame)
	wm.xs.ReparentWindow(client, wm.xs.root, 0, 0)
	wm.xs.ChangeSaveSet(client, xproto.SetModeDelete)
	wm.xs.DestroyWindow(frame)
	wm.clients.Unregister(client)
	if wm.drag != nil && wm.drag.client == client {
		wm.drag = nil
	}

	log.Info().
		Uint32("client", uint32(client)).
		Uint32("frame", uint32(frame)).
		Msg("unframed window")
	return true
}
