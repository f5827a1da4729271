package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog/log"
)

func (wm *WM) handleEvent() error {
	xev, err := wm.xs.NextEvent()
	if err != nil {
		return err
	}
	return wm.dispatch(xev)
}

// dispatch routes one event to its handler.
func (wm *WM) dispatch(xev xgb.Event) (err error) {
	var window xproto.Window
	switch e := xev.(type) {
	case xproto.MapRequestEvent:
		window = e.Window
		err = wm.handleMapRequestEvent(e)
	case xproto.ConfigureRequestEvent:
		window = e.Window
		err = wm.handleConfigureRequestEvent(e)
	case xproto.UnmapNotifyEvent:
		window = e.Window
		err = wm.handleUnmapNotifyEvent(e)
	case xproto.ButtonPressEvent:
		window = e.Event
		err = wm.onButtonPress(e)
	case xproto.MotionNotifyEvent:
		e = wm.xs.CoalesceMotion(e)
		window = e.Event
		err = wm.onMotionNotify(e)
	case xproto.KeyPressEvent:
		window = e.Event
		err = wm.onKeyPress(e)

	// Nothing to do for these yet.
	case xproto.CreateNotifyEvent:
		window = e.Window
	case xproto.DestroyNotifyEvent:
		window = e.Window
	case xproto.ReparentNotifyEvent:
		window = e.Window
	case xproto.MapNotifyEvent:
		window = e.Window
	case xproto.ConfigureNotifyEvent:
		window = e.Window
	case xproto.ButtonReleaseEvent:
		window = e.Event
	case xproto.KeyReleaseEvent:
		window = e.Event

	default:
		log.Warn().Str("type", eventName(xev)).Msg("ignoring unexpected event")
		return nil
	}
	log.Trace().Str("type", eventName(xev)).Uint32("window", uint32(window)).Msg("event")
	if wm.hub != nil {
		wm.hub.publish(eventMessage{
			Type:   eventName(xev),
			Window: uint32(window),
		})
	}
	return err
}

func (wm *WM) handleMapRequestEvent(e xproto.MapRequestEvent) error {
	wm.Frame(e.Window, false)
	wm.xs.MapWindow(e.Window)
	return nil
}

// handleConfigureRequestEvent grants the request as is. For managed
// clients the change is applied to the frame.
func (wm *WM) handleConfigureRequestEvent(e xproto.ConfigureRequestEvent) error {
	target := e.Window
	if frame, ok := wm.clients.FrameOf(e.Window); ok {
		target = frame
	}
	wm.xs.ConfigureWindow(target, e.ValueMask, configureValues(e))
	log.Debug().
		Uint32("window", uint32(target)).
		Uint16("width", e.Width).
		Uint16("height", e.Height).
		Msg("configure request")
	return nil
}

// configureValues lays out the fields selected by e.ValueMask in the
// order ConfigureWindow expects them.
func configureValues(e xproto.ConfigureRequestEvent) []uint32 {
	fields := []struct {
		bit   uint16
		value uint32
	}{
		{xproto.ConfigWindowX, uint32(int32(e.X))},
		{xproto.ConfigWindowY, uint32(int32(e.Y))},
		{xproto.ConfigWindowWidth, uint32(e.Width)},
		{xproto.ConfigWindowHeight, uint32(e.Height)},
		{xproto.ConfigWindowBorderWidth, uint32(e.BorderWidth)},
		{xproto.ConfigWindowSibling, uint32(e.Sibling)},
		{xproto.ConfigWindowStackMode, uint32(e.StackMode)},
	}
	values := []uint32{}
	for _, f := range fields {
		if e.ValueMask&f.bit != 0 {
			values = append(values, f.value)
		}
	}
	return values
}

func (wm *WM) handleUnmapNotifyEvent(e xproto.UnmapNotifyEvent) error {
	if !wm.clients.IsManaged(e.Window) {
		log.Debug().Uint32("window", uint32(e.Window)).Msg("unmapped a window that was not being managed")
		return nil
	}
	// Reparenting a mapped window into its frame unmaps it, and the
	// root hears about that. That is not the client going away.
	if e.Event == wm.xs.root {
		log.Debug().Uint32("window", uint32(e.Window)).Msg("ignoring unmap from reparent")
		return nil
	}
	wm.Unframe(e.Window)
	return nil
}

// eventName turns xproto.MapRequestEvent into "MapRequest".
func eventName(ev xgb.Event) string {
	name := fmt.Sprintf("%T", ev)
	name = strings.TrimPrefix(name, "xproto.")
	return strings.TrimSuffix(name, "Event")
}
