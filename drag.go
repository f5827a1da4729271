package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog/log"
)

// dragSession is the state captured when a bound button goes down on a
// client. Motion events are measured against it until the next press.
type dragSession struct {
	client  xproto.Window
	button  xproto.Button
	pointer Position
	frame   Rect
}

// moveTarget is where a frame goes after the pointer moved by delta.
func moveTarget(start Position, delta Vector) Position {
	return start.Add(delta)
}

// resizeTarget is the frame size after the pointer moved by delta.
// Shrinking stops at zero; growing has no limit.
func resizeTarget(start Size, delta Vector) Size {
	return start.Add(delta.Floor(start.Neg()))
}

func (wm *WM) onButtonPress(e xproto.ButtonPressEvent) error {
	wm.drag = nil
	frame, ok := wm.frameOf(e.Event)
	if !ok {
		return nil
	}
	geom, err := wm.xs.Geometry(frame)
	if err != nil {
		return err
	}
	wm.drag = &dragSession{
		client:  e.Event,
		button:  e.Detail,
		pointer: Position{X: int(e.RootX), Y: int(e.RootY)},
		frame:   geom,
	}
	wm.xs.raise(frame)
	log.Debug().
		Uint32("client", uint32(e.Event)).
		Uint8("button", uint8(e.Detail)).
		Msg("drag started")
	return nil
}

func (wm *WM) onMotionNotify(e xproto.MotionNotifyEvent) error {
	d := wm.drag
	if d == nil || d.client != e.Event {
		return nil
	}
	frame, ok := wm.frameOf(e.Event)
	if !ok {
		return nil
	}
	delta := Position{X: int(e.RootX), Y: int(e.RootY)}.Sub(d.pointer)

	switch {
	case e.State&moveButtonMask != 0:
		p := moveTarget(d.frame.Position, delta)
		wm.xs.ConfigureWindow(
			frame,
			xproto.ConfigWindowX|xproto.ConfigWindowY,
			[]uint32{uint32(int32(p.X)), uint32(int32(p.Y))},
		)
	case e.State&resizeButtonMask != 0:
		s := resizeTarget(d.frame.Size, delta)
		mask := uint16(xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
		values := []uint32{uint32(s.W), uint32(s.H)}
		wm.xs.ConfigureWindow(frame, mask, values)
		wm.xs.ConfigureWindow(e.Event, mask, values)
	}
	return nil
}
