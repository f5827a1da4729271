package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestAPIClients(t *testing.T) {
	wm, f := newTestWM(t)
	managed(t, wm, f, 10, Rect{Size: Size{W: 50, H: 50}})
	managed(t, wm, f, 11, Rect{Size: Size{W: 50, H: 50}})
	f.names[11] = "xterm"
	router := newRouter(wm)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/clients/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var list struct{ Items []clientInfo }
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	want := []clientInfo{
		{Window: 10, Frame: 1000},
		{Window: 11, Frame: 1001, Name: "xterm"},
	}
	if len(list.Items) != len(want) || list.Items[0] != want[0] || list.Items[1] != want[1] {
		t.Errorf("items = %+v, want %+v", list.Items, want)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/clients/11", nil))
	var one struct{ Item clientInfo }
	if err := json.NewDecoder(rec.Body).Decode(&one); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK || one.Item != want[1] {
		t.Errorf("GET /clients/11 = %d %+v", rec.Code, one.Item)
	}
}

func TestAPINotFound(t *testing.T) {
	wm, _ := newTestWM(t)
	router := newRouter(wm)
	for _, path := range []string{"/clients/12", "/clients/abc", "/nope"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, rec.Code)
		}
	}
}

func TestAPIScreens(t *testing.T) {
	wm, _ := newTestWM(t)
	rec := httptest.NewRecorder()
	newRouter(wm).ServeHTTP(rec, httptest.NewRequest("GET", "/screens/", nil))
	var list struct {
		Items []struct{ Width, Height uint16 }
	}
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list.Items) != 1 || list.Items[0].Width != 1920 {
		t.Errorf("screens = %+v", list.Items)
	}
}

func TestDispatchPublishes(t *testing.T) {
	wm, f := newTestWM(t)
	NewAPIServer(wm, "127.0.0.1:0")
	ch := wm.hub.subscribe()
	defer wm.hub.unsubscribe(ch)

	f.addWindow(10, Rect{Size: Size{W: 50, H: 50}}, false, xproto.MapStateUnmapped)
	if err := wm.dispatch(xproto.MapRequestEvent{Window: 10}); err != nil {
		t.Fatal(err)
	}
	select {
	case m := <-ch:
		if m != (eventMessage{Type: "MapRequest", Window: 10}) {
			t.Errorf("published %+v", m)
		}
	default:
		t.Fatal("nothing published")
	}
}

func TestHubDropsForSlowSubscriber(t *testing.T) {
	h := newEventHub()
	ch := h.subscribe()
	for i := 0; i < subscriberBuffer+10; i++ {
		h.publish(eventMessage{Type: "MotionNotify", Window: uint32(i)})
	}
	if len(ch) != subscriberBuffer {
		t.Errorf("buffered %d, want %d", len(ch), subscriberBuffer)
	}
	h.unsubscribe(ch)
	h.publish(eventMessage{Type: "MapRequest"})
	if len(ch) != subscriberBuffer {
		t.Error("unsubscribed channel still receives")
	}
}
