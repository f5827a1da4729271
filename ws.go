package main

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// eventMessage is sent to subscribers for every dispatched event.
type eventMessage struct {
	Type   string `json:"type"`
	Window uint32 `json:"window"`
}

// subscriberBuffer is how many events a slow subscriber may fall
// behind before it starts missing them.
const subscriberBuffer = 64

// eventHub fans events out from the event loop to WebSocket clients.
// publish never blocks.
type eventHub struct {
	mu   sync.Mutex
	subs map[chan eventMessage]struct{}
}

func newEventHub() *eventHub {
	return &eventHub{subs: map[chan eventMessage]struct{}{}}
}

func (h *eventHub) subscribe() chan eventMessage {
	ch := make(chan eventMessage, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *eventHub) unsubscribe(ch chan eventMessage) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

func (h *eventHub) publish(m eventMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- m:
		default:
		}
	}
}

// serve streams events to c until the peer goes away.
func (h *eventHub) serve(ctx context.Context, c *websocket.Conn) {
	ch := h.subscribe()
	defer h.unsubscribe(ch)
	ctx = c.CloseRead(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-ch:
			if err := wsjson.Write(ctx, c, m); err != nil {
				log.Debug().Err(err).Msg("event subscriber write failed")
				return
			}
		}
	}
}

func makeWSHandler(
	handler func(context.Context, *websocket.Conn),
) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Warn().Err(err).Msg("websocket accept failed")
			return
		}
		log.Info().Str("path", r.URL.Path).Str("remote", r.RemoteAddr).Msg("subscriber connected")
		defer c.Close(websocket.StatusInternalError, "")
		handler(r.Context(), c)
		c.Close(websocket.StatusNormalClosure, "")
		log.Info().Str("remote", r.RemoteAddr).Msg("subscriber disconnected")
	}
}
