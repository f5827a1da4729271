package main

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestRequestName(t *testing.T) {
	tests := []struct {
		major byte
		want  string
	}{
		{2, "ChangeWindowAttributes"},
		{7, "ReparentWindow"},
		{113, "KillClient"},
		{127, "NoOperation"},
		{0, "Unknown"},
		{120, "Unknown"},
		{200, "Unknown"},
	}
	for _, tt := range tests {
		if got := requestName(tt.major); got != tt.want {
			t.Errorf("requestName(%d) = %q, want %q", tt.major, got, tt.want)
		}
	}
}

func TestErrorDetails(t *testing.T) {
	name, major, ok := errorDetails(xproto.WindowError{NiceName: "Window", MajorOpcode: 12, BadValue: 77})
	if !ok || name != "Window" || major != 12 {
		t.Errorf("errorDetails = %q, %d, %v", name, major, ok)
	}
	name, major, ok = errorDetails(xproto.AccessError{NiceName: "Access", MajorOpcode: 2})
	if !ok || name != "Access" || major != 2 {
		t.Errorf("errorDetails = %q, %d, %v", name, major, ok)
	}
	// Must not panic.
	logXError(xproto.WindowError{NiceName: "Window", MajorOpcode: 12, BadValue: 77})
}

func TestSessionCloseOnce(t *testing.T) {
	f := newFakeDisplay()
	s, err := newSession(f)
	if err != nil {
		t.Fatal(err)
	}
	if s.atomWMProtocols != testAtomProtocols || s.atomWMDeleteWindow != testAtomDelete {
		t.Errorf("atoms = %d, %d", s.atomWMProtocols, s.atomWMDeleteWindow)
	}
	s.Close()
	s.Close()
	if f.closed != 1 {
		t.Errorf("closed %d times, want 1", f.closed)
	}
}
