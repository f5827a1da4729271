package main

import (
	"reflect"
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

func TestMapRequestFramesThenMaps(t *testing.T) {
	wm, f := newTestWM(t)
	f.addWindow(10, Rect{Size: Size{W: 50, H: 50}}, true, xproto.MapStateUnmapped)

	if err := wm.dispatch(xproto.MapRequestEvent{Parent: testRoot, Window: 10}); err != nil {
		t.Fatal(err)
	}
	if !wm.clients.IsManaged(10) {
		t.Fatal("window not framed")
	}
	if last := f.calls[len(f.calls)-1]; last != "MapWindow 10" {
		t.Errorf("last request = %q, want MapWindow 10", last)
	}
}

func TestUnmapNotify(t *testing.T) {
	tests := []struct {
		name     string
		event    xproto.Window
		window   xproto.Window
		unframed bool
	}{
		{"client unmapped itself", 10, 10, true},
		{"reparent side effect seen by root", testRoot, 10, false},
		{"unmanaged window", 20, 20, false},
		{"unmanaged window seen by root", testRoot, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wm, f := newTestWM(t)
			managed(t, wm, f, 10, Rect{Size: Size{W: 50, H: 50}})
			f.resetCalls()

			err := wm.dispatch(xproto.UnmapNotifyEvent{Event: tt.event, Window: tt.window})
			if err != nil {
				t.Fatal(err)
			}
			if got := !wm.clients.IsManaged(10); got != tt.unframed {
				t.Errorf("unframed = %v, want %v", got, tt.unframed)
			}
			if !tt.unframed && len(f.calls) != 0 {
				t.Errorf("ignored unmap caused requests: %q", f.calls)
			}
		})
	}
}

func TestConfigureRequestPassThrough(t *testing.T) {
	wm, f := newTestWM(t)
	frame := managed(t, wm, f, 10, Rect{Size: Size{W: 50, H: 50}})
	f.resetCalls()

	ev := xproto.ConfigureRequestEvent{
		Window:      10,
		X:           -5,
		Y:           20,
		Width:       640,
		Height:      480,
		BorderWidth: 2,
		Sibling:     33,
		StackMode:   xproto.StackModeBelow,
		ValueMask: xproto.ConfigWindowX | xproto.ConfigWindowWidth |
			xproto.ConfigWindowHeight | xproto.ConfigWindowStackMode,
	}
	if err := wm.dispatch(ev); err != nil {
		t.Fatal(err)
	}
	managedMask := ev.ValueMask
	ev.Window = 20
	ev.ValueMask = xproto.ConfigWindowY | xproto.ConfigWindowBorderWidth | xproto.ConfigWindowSibling
	if err := wm.dispatch(ev); err != nil {
		t.Fatal(err)
	}

	want := []configureCall{
		{frame, managedMask, []uint32{0xfffffffb, 640, 480, xproto.StackModeBelow}},
		{20, ev.ValueMask, []uint32{20, 2, 33}},
	}
	if !reflect.DeepEqual(f.configures, want) {
		t.Errorf("configures = %+v, want %+v", f.configures, want)
	}
}

func TestMotionIsCoalesced(t *testing.T) {
	wm, f := newTestWM(t)
	frame := managed(t, wm, f, 10, Rect{Position{X: 100, Y: 100}, Size{W: 200, H: 100}})
	if err := wm.dispatch(xproto.ButtonPressEvent{Event: 10, Detail: moveButton, RootX: 50, RootY: 50}); err != nil {
		t.Fatal(err)
	}
	f.resetCalls()

	f.events = []xgb.Event{
		xproto.MotionNotifyEvent{Event: 10, RootX: 60, RootY: 60, State: moveButtonMask},
		xproto.KeyReleaseEvent{Event: 10},
		xproto.MotionNotifyEvent{Event: 10, RootX: 70, RootY: 75, State: moveButtonMask},
	}
	if err := wm.dispatch(xproto.MotionNotifyEvent{Event: 10, RootX: 51, RootY: 51, State: moveButtonMask}); err != nil {
		t.Fatal(err)
	}

	want := []configureCall{
		{frame, xproto.ConfigWindowX | xproto.ConfigWindowY, []uint32{120, 125}},
	}
	if !reflect.DeepEqual(f.configures, want) {
		t.Errorf("configures = %+v, want %+v", f.configures, want)
	}
	if len(f.events) != 1 {
		t.Fatalf("queue = %v, want only the key release", f.events)
	}
	if _, ok := f.events[0].(xproto.KeyReleaseEvent); !ok {
		t.Errorf("queue = %v, want only the key release", f.events)
	}
}

func TestReservedAndUnknownEvents(t *testing.T) {
	wm, f := newTestWM(t)
	managed(t, wm, f, 10, Rect{Size: Size{W: 50, H: 50}})
	f.resetCalls()

	events := []xgb.Event{
		xproto.CreateNotifyEvent{Window: 10},
		xproto.DestroyNotifyEvent{Window: 10},
		xproto.ReparentNotifyEvent{Window: 10},
		xproto.MapNotifyEvent{Window: 10},
		xproto.ConfigureNotifyEvent{Window: 10},
		xproto.ButtonReleaseEvent{Event: 10},
		xproto.KeyReleaseEvent{Event: 10},
		xproto.ExposeEvent{Window: 10},
		xproto.PropertyNotifyEvent{Window: 10},
	}
	for _, ev := range events {
		if err := wm.dispatch(ev); err != nil {
			t.Errorf("%T: %v", ev, err)
		}
	}
	if len(f.calls) != 0 {
		t.Errorf("requests = %q, want none", f.calls)
	}
	if !wm.clients.IsManaged(10) {
		t.Error("client dropped")
	}
}

func TestRunStopsWhenConnectionCloses(t *testing.T) {
	wm, f := newTestWM(t)
	f.addWindow(10, Rect{Size: Size{W: 50, H: 50}}, false, xproto.MapStateUnmapped)
	f.events = []xgb.Event{
		xproto.MapRequestEvent{Window: 10},
		xproto.ExposeEvent{Window: 10},
	}
	if err := wm.Run(); err != errConnClosed {
		t.Fatalf("Run = %v, want errConnClosed", err)
	}
	if !wm.clients.IsManaged(10) {
		t.Error("map request was not handled")
	}
}

func TestEventName(t *testing.T) {
	if got := eventName(xproto.MapRequestEvent{}); got != "MapRequest" {
		t.Errorf("eventName = %q", got)
	}
}
