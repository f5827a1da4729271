package main

import (
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog/log"
)

// Registry maps each managed client window to the frame we created for
// it. It remembers the order in which clients were framed; that order
// drives focus cycling.
//
// The event loop is the only writer. The lock is there for the API,
// which reads from its own goroutines.
type Registry struct {
	mu     sync.RWMutex
	frames map[xproto.Window]xproto.Window
	order  []xproto.Window
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{frames: map[xproto.Window]xproto.Window{}}
}

// IsManaged reports whether client has a frame.
func (r *Registry) IsManaged(client xproto.Window) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.frames[client]
	return ok
}

// Register records that frame decorates client. Registering a client
// twice keeps the first frame.
func (r *Registry) Register(client, frame xproto.Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.frames[client]; ok {
		log.Warn().
			Uint32("client", uint32(client)).
			Uint32("frame", uint32(old)).
			Uint32("rejected", uint32(frame)).
			Msg("client already framed")
		return
	}
	r.frames[client] = frame
	r.order = append(r.order, client)
}

// FrameOf returns the frame of client, if it is managed.
func (r *Registry) FrameOf(client xproto.Window) (xproto.Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	frame, ok := r.frames[client]
	return frame, ok
}

// ClientOf returns the client that frame decorates.
func (r *Registry) ClientOf(frame xproto.Window) (xproto.Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.order {
		if r.frames[c] == frame {
			return c, true
		}
	}
	return 0, false
}

// Unregister forgets client. The caller must already have undone the
// reparenting on the server.
func (r *Registry) Unregister(client xproto.Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.frames[client]; !ok {
		return
	}
	delete(r.frames, client)
	for i, c := range r.order {
		if c == client {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Clients returns the managed clients in the order they were framed.
func (r *Registry) Clients() []xproto.Window {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]xproto.Window{}, r.order...)
}

// Len returns the number of managed clients.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Next returns the client framed after current, wrapping around to the
// first one. If current is not managed the first client is returned.
// ok is false when nothing is managed.
func (r *Registry) Next(current xproto.Window) (next xproto.Window, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.order) == 0 {
		return 0, false
	}
	for i, c := range r.order {
		if c == current {
			return r.order[(i+1)%len(r.order)], true
		}
	}
	return r.order[0], true
}
