package main

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
)

// Attributes is what the manager needs to know about a window before
// deciding whether to frame it.
type Attributes struct {
	Rect
	OverrideRedirect bool
	// MapState is one of xproto.MapStateUnmapped, MapStateUnviewable
	// or MapStateViewable.
	MapState byte
}

// Display is the part of the X protocol the window manager drives.
//
// Requests that carry no reply are sent without waiting; when they
// fail, the error is handed to the function installed with
// SetErrorHandler the next time the event stream is read or the
// connection is synced.
type Display interface {
	Root() xproto.Window
	Atom(name string) (xproto.Atom, error)
	SetErrorHandler(func(xgb.Error))

	// NextEvent blocks until the server sends an event. It returns
	// errConnClosed once the connection is gone.
	NextEvent() (xgb.Event, error)
	// CoalesceMotion drops every queued MotionNotify for ev's window
	// and returns the most recent one (ev itself if nothing newer is
	// queued). Other events keep their order.
	CoalesceMotion(ev xproto.MotionNotifyEvent) xproto.MotionNotifyEvent
	// Sync waits until the server has processed every request sent so
	// far and reports any errors they produced.
	Sync()

	GrabServer()
	UngrabServer()
	TopLevelWindows() ([]xproto.Window, error)
	Attributes(w xproto.Window) (Attributes, error)
	Geometry(w xproto.Window) (Rect, error)

	CreateWindow(parent xproto.Window, r Rect, borderWidth, borderColor, background uint32) (xproto.Window, error)
	DestroyWindow(w xproto.Window)
	MapWindow(w xproto.Window)
	UnmapWindow(w xproto.Window)
	ReparentWindow(w, parent xproto.Window, x, y int16)
	ConfigureWindow(w xproto.Window, mask uint16, values []uint32)
	SelectInput(w xproto.Window, mask uint32)
	ChangeSaveSet(w xproto.Window, mode byte)

	GrabButton(w xproto.Window, button xproto.Button, modifiers uint16)
	GrabKey(w xproto.Window, key xproto.Keycode, modifiers uint16)
	Keycodes(keysym string) []xproto.Keycode
	SetInputFocus(w xproto.Window)

	// Protocols returns the atoms listed in the window's WM_PROTOCOLS
	// property.
	Protocols(w xproto.Window) ([]xproto.Atom, error)
	SendClientMessage(ev xproto.ClientMessageEvent)
	KillClient(w xproto.Window)

	Name(w xproto.Window) string
	Screens() []xinerama.ScreenInfo

	Close()
}
