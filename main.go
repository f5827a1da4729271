package main

import (
	"errors"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/rs/zerolog/log"
)

var (
	version    string
	listenAddr string
	debug      bool
)

var (
	errConnClosed = errors.New("connection to X server closed")
	errAnotherWM  = errors.New("another window manager is already running")
)

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "dl:")
	if err != nil {
		initLogger(false)
		log.Fatal().Err(err).Msg("usage: framewm [-d] [-l addr] [display]")
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			debug = true
		case 'l':
			listenAddr = opt.Value
		}
	}
	initLogger(debug)
	if version != "" {
		log.Info().Str("version", version).Msg("starting")
	}

	displayName := ""
	if args := os.Args[optind:]; len(args) > 0 {
		displayName = args[0]
	}
	os.Exit(run(displayName))
}

func run(displayName string) int {
	s, err := OpenSession(displayName)
	if err != nil {
		log.Error().Err(err).Msg("cannot connect to X server")
		return 1
	}
	wm := NewWM(s)
	defer wm.Deinit()

	if err := wm.Init(); err != nil {
		if errors.Is(err, errAnotherWM) {
			log.Error().Str("reason", "another_wm").Msg("detected another window manager, exiting")
			return 2
		}
		log.Error().Err(err).Msg("cannot take over the display")
		return 1
	}

	if listenAddr != "" {
		api := NewAPIServer(wm, listenAddr)
		go api.Start()
	}

	if err := wm.Run(); !errors.Is(err, errConnClosed) {
		log.Error().Err(err).Msg("event loop stopped")
		return 1
	}
	log.Info().Msg("display closed, exiting")
	return 0
}
