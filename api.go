package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// APIServer exposes read-only state of the window manager over HTTP.
type APIServer struct {
	server *http.Server
	wm     *WM
}

// clientInfo is the JSON shape of a managed client.
type clientInfo struct {
	Window xproto.Window
	Frame  xproto.Window
	Name   string
}

func jsonResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	log.Debug().Int("status", status).Str("path", r.URL.Path).Msg("api")
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	e := json.NewEncoder(w)
	e.Encode(data)
}

// NewAPIServer builds the API for wm. It also starts publishing
// dispatched events to WebSocket subscribers.
func NewAPIServer(wm *WM, listenAddr string) (as *APIServer) {
	if wm.hub == nil {
		wm.hub = newEventHub()
	}
	as = &APIServer{
		server: &http.Server{
			Addr:           listenAddr,
			Handler:        newRouter(wm),
			ReadTimeout:    1 * time.Second,
			MaxHeaderBytes: 1 << 16,
		},
		wm: wm,
	}
	return as
}

func newRouter(wm *WM) *mux.Router {
	router := mux.NewRouter()

	describe := func(client xproto.Window) clientInfo {
		frame, _ := wm.clients.FrameOf(client)
		return clientInfo{
			Window: client,
			Frame:  frame,
			Name:   wm.xs.Name(client),
		}
	}

	router.HandleFunc("/screens/", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, r, http.StatusOK,
			map[string]interface{}{
				"items": wm.xs.Screens(),
			},
		)
	}).Methods("GET")

	router.HandleFunc("/clients/", func(w http.ResponseWriter, r *http.Request) {
		items := []clientInfo{}
		for _, client := range wm.clients.Clients() {
			items = append(items, describe(client))
		}
		jsonResponse(w, r, http.StatusOK,
			map[string]interface{}{
				"items": items,
			},
		)
	}).Methods("GET")

	router.HandleFunc("/clients/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
		if err != nil {
			jsonResponse(w, r, http.StatusNotFound, nil)
			return
		}
		client := xproto.Window(id)
		if !wm.clients.IsManaged(client) {
			jsonResponse(w, r, http.StatusNotFound, nil)
			return
		}
		jsonResponse(w, r, http.StatusOK,
			map[string]interface{}{
				"item": describe(client),
			},
		)
	}).Methods("GET")

	if wm.hub != nil {
		router.HandleFunc("/events", makeWSHandler(wm.hub.serve))
	}

	router.PathPrefix("/").Handler(http.NotFoundHandler())
	return router
}

// Start serves the API until the listener fails.
func (as *APIServer) Start() {
	log.Info().Str("addr", as.server.Addr).Msg("api listening")
	if err := as.server.ListenAndServe(); err != nil {
		log.Error().Err(err).Msg("api stopped")
	}
}
