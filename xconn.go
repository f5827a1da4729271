package main

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/rs/zerolog/log"
)

// xDisplay implements Display on top of a real X connection.
type xDisplay struct {
	xu       *xgbutil.XUtil
	xc       *xgb.Conn
	xinerama bool

	// pending holds events read off the wire while looking for
	// something else (motion coalescing, Sync).
	pending []xgb.Event
	onError func(xgb.Error)
}

func dialDisplay(name string) (*xDisplay, error) {
	xu, err := xgbutil.NewConnDisplay(name)
	if err != nil {
		return nil, err
	}
	keybind.Initialize(xu)
	d := &xDisplay{
		xu: xu,
		xc: xu.Conn(),
	}
	if err := xinerama.Init(d.xc); err != nil {
		log.Debug().Err(err).Msg("xinerama unavailable")
	} else {
		d.xinerama = true
	}
	return d, nil
}

func (d *xDisplay) Root() xproto.Window {
	return d.xu.RootWin()
}

func (d *xDisplay) Atom(name string) (xproto.Atom, error) {
	return xprop.Atm(d.xu, name)
}

func (d *xDisplay) SetErrorHandler(h func(xgb.Error)) {
	d.onError = h
}

func (d *xDisplay) report(err xgb.Error) {
	if d.onError != nil {
		d.onError(err)
	}
}

func (d *xDisplay) NextEvent() (xgb.Event, error) {
	for {
		if len(d.pending) > 0 {
			ev := d.pending[0]
			d.pending = d.pending[1:]
			return ev, nil
		}
		ev, xerr := d.xc.WaitForEvent()
		if ev == nil && xerr == nil {
			return nil, errConnClosed
		}
		if xerr != nil {
			d.report(xerr)
			continue
		}
		return ev, nil
	}
}

// drain moves everything the connection has already received into
// pending, reporting errors on the way.
func (d *xDisplay) drain() {
	for {
		ev, xerr := d.xc.PollForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			d.report(xerr)
			continue
		}
		d.pending = append(d.pending, ev)
	}
}

func (d *xDisplay) CoalesceMotion(ev xproto.MotionNotifyEvent) xproto.MotionNotifyEvent {
	d.drain()
	kept := d.pending[:0]
	for _, p := range d.pending {
		if m, ok := p.(xproto.MotionNotifyEvent); ok && m.Event == ev.Event {
			ev = m
			continue
		}
		kept = append(kept, p)
	}
	d.pending = kept
	return ev
}

func (d *xDisplay) Sync() {
	d.xc.Sync()
	d.drain()
}

func (d *xDisplay) GrabServer() {
	xproto.GrabServer(d.xc)
}

func (d *xDisplay) UngrabServer() {
	xproto.UngrabServer(d.xc)
}

func (d *xDisplay) TopLevelWindows() ([]xproto.Window, error) {
	tree, err := xproto.QueryTree(d.xc, d.Root()).Reply()
	if err != nil {
		return nil, err
	}
	return tree.Children, nil
}

func (d *xDisplay) Attributes(w xproto.Window) (Attributes, error) {
	attrCookie := xproto.GetWindowAttributes(d.xc, w)
	geomCookie := xproto.GetGeometry(d.xc, xproto.Drawable(w))
	attr, err := attrCookie.Reply()
	if err != nil {
		return Attributes{}, err
	}
	geom, err := geomCookie.Reply()
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		Rect:             rectFromGeometry(geom),
		OverrideRedirect: attr.OverrideRedirect,
		MapState:         attr.MapState,
	}, nil
}

func (d *xDisplay) Geometry(w xproto.Window) (Rect, error) {
	geom, err := xproto.GetGeometry(d.xc, xproto.Drawable(w)).Reply()
	if err != nil {
		return Rect{}, err
	}
	return rectFromGeometry(geom), nil
}

func rectFromGeometry(g *xproto.GetGeometryReply) Rect {
	return Rect{
		Position: Position{X: int(g.X), Y: int(g.Y)},
		Size:     Size{W: int(g.Width), H: int(g.Height)},
	}
}

func (d *xDisplay) CreateWindow(parent xproto.Window, r Rect, borderWidth, borderColor, background uint32) (xproto.Window, error) {
	w, err := xproto.NewWindowId(d.xc)
	if err != nil {
		return 0, fmt.Errorf("allocate window id: %w", err)
	}
	screen := d.xu.Screen()
	xproto.CreateWindow(
		d.xc,
		screen.RootDepth,
		w,
		parent,
		int16(r.X),
		int16(r.Y),
		uint16(r.W),
		uint16(r.H),
		uint16(borderWidth),
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwBorderPixel,
		[]uint32{
			background,
			borderColor,
		},
	)
	return w, nil
}

func (d *xDisplay) DestroyWindow(w xproto.Window) {
	xproto.DestroyWindow(d.xc, w)
}

func (d *xDisplay) MapWindow(w xproto.Window) {
	xproto.MapWindow(d.xc, w)
}

func (d *xDisplay) UnmapWindow(w xproto.Window) {
	xproto.UnmapWindow(d.xc, w)
}

func (d *xDisplay) ReparentWindow(w, parent xproto.Window, x, y int16) {
	xproto.ReparentWindow(d.xc, w, parent, x, y)
}

func (d *xDisplay) ConfigureWindow(w xproto.Window, mask uint16, values []uint32) {
	xproto.ConfigureWindow(d.xc, w, mask, values)
}

func (d *xDisplay) SelectInput(w xproto.Window, mask uint32) {
	xproto.ChangeWindowAttributes(d.xc, w, xproto.CwEventMask, []uint32{mask})
}

func (d *xDisplay) ChangeSaveSet(w xproto.Window, mode byte) {
	xproto.ChangeSaveSet(d.xc, mode, w)
}

func (d *xDisplay) GrabButton(w xproto.Window, button xproto.Button, modifiers uint16) {
	xproto.GrabButton(
		d.xc,
		false, // owner events
		w,
		xproto.EventMaskButtonPress|
			xproto.EventMaskButtonRelease|
			xproto.EventMaskButtonMotion,
		xproto.GrabModeAsync, // pointer
		xproto.GrabModeAsync, // keyboard
		xproto.WindowNone,    // confine to
		xproto.CursorNone,
		byte(button),
		modifiers,
	)
}

func (d *xDisplay) GrabKey(w xproto.Window, key xproto.Keycode, modifiers uint16) {
	xproto.GrabKey(
		d.xc,
		false,
		w,
		modifiers,
		key,
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
	)
}

func (d *xDisplay) Keycodes(keysym string) []xproto.Keycode {
	return keybind.StrToKeycodes(d.xu, keysym)
}

func (d *xDisplay) SetInputFocus(w xproto.Window) {
	xproto.SetInputFocus(
		d.xc,                         // conn
		xproto.InputFocusPointerRoot, // revert to
		w,                            // focus
		xproto.TimeCurrentTime,       // time
	)
}

func (d *xDisplay) Protocols(w xproto.Window) ([]xproto.Atom, error) {
	nums, err := xprop.PropValNums(xprop.GetProperty(d.xu, w, "WM_PROTOCOLS"))
	if err != nil {
		return nil, err
	}
	atoms := make([]xproto.Atom, len(nums))
	for i, n := range nums {
		atoms[i] = xproto.Atom(n)
	}
	return atoms, nil
}

func (d *xDisplay) SendClientMessage(ev xproto.ClientMessageEvent) {
	xproto.SendEvent(
		d.xc,
		false,                   // propagate
		ev.Window,               // destination
		xproto.EventMaskNoEvent, // eventmask
		string(ev.Bytes()),      // event
	)
}

func (d *xDisplay) KillClient(w xproto.Window) {
	xproto.KillClient(d.xc, uint32(w))
}

func (d *xDisplay) Name(w xproto.Window) string {
	name, err := ewmh.WmNameGet(d.xu, w)
	if name == "" || err != nil {
		name, _ = icccm.WmNameGet(d.xu, w)
	}
	return name
}

func (d *xDisplay) Screens() []xinerama.ScreenInfo {
	if d.xinerama {
		r, err := xinerama.QueryScreens(d.xc).Reply()
		if err == nil && len(r.ScreenInfo) > 0 {
			return r.ScreenInfo
		}
	}
	screen := d.xu.Screen()
	return []xinerama.ScreenInfo{
		{
			Width:  screen.WidthInPixels,
			Height: screen.HeightInPixels,
		},
	}
}

func (d *xDisplay) Close() {
	d.xc.Close()
}
