// Smallworld is a small card-placement game: draw cards from the deck at the
// bottom of the window and place them on matching map tiles.
//
// Controls: left-click a deck card to pick it up and left-click a
// highlighted tile to place it. Right-click cancels. Drag with the middle
// button to pan, scroll to zoom, R resets the camera, F12 saves a
// screenshot.
//
// Usage:
//
//	smallworld [-config smallworld.yaml] [-script demo.json] [-exit]
package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"

	sw "github.com/phanxgames/smallworld"
	"github.com/phanxgames/smallworld/config"
	"github.com/phanxgames/smallworld/ebitenhost"
	"github.com/phanxgames/smallworld/ecs"
	"github.com/phanxgames/smallworld/game"
	"github.com/phanxgames/smallworld/host"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	scriptPath := flag.String("script", "", "JSON input script to replay")
	exitOnEnd := flag.Bool("exit", false, "exit when the input script finishes")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	m, err := cfg.Map.BuildMap()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build map")
	}

	seed := cfg.Deck.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := game.New(m, rand.New(rand.NewPCG(seed, seed)))
	g.SetLogger(log.With().Str("component", "game").Logger())

	world := donburi.NewWorld()
	g.SetEventSink(ecs.NewDonburiSink(world))
	counter := ecs.NewPlacementCounter()
	counter.Subscribe(world)

	offX, offY := cfg.Camera.Offset()
	cam := host.NewCamera(sw.Vec2{X: offX, Y: offY}, cfg.Camera.Zoom)
	cam.MinZoom, cam.MaxZoom = cfg.Camera.MinZoom, cfg.Camera.MaxZoom

	session := host.NewSession(g, cam)
	session.SetLogger(log.With().Str("component", "host").Logger())
	session.SetDebugMode(cfg.Debug)
	session.Interp.LegacyColorRestore = cfg.LegacyColorRestore

	var script *host.ScriptRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read script")
		}
		if script, err = host.LoadScript(data); err != nil {
			log.Fatal().Err(err).Msg("failed to load script")
		}
	}

	log.Info().
		Uint64("seed", seed).
		Uint32("width", m.Width()).
		Uint32("height", m.Height()).
		Uint32("population", m.Pops()).
		Msg("starting smallworld")

	err = ebitenhost.Run(session, script, ebitenhost.Config{
		Title:           cfg.Window.Title,
		Width:           cfg.Window.Width,
		Height:          cfg.Window.Height,
		ShowFPS:         cfg.Window.ShowFPS,
		ScreenshotDir:   cfg.ScreenshotDir,
		ResetSeconds:    cfg.Camera.ResetSeconds,
		ExitOnScriptEnd: *exitOnEnd,
		AfterUpdate: func() {
			ecs.ActionEventType.ProcessEvents(world)
		},
	}, log.With().Str("component", "ebiten").Logger())
	if err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}

	log.Info().
		Int("farms", counter.Placed[game.CardFarm]).
		Int("lumbermills", counter.Placed[game.CardLumber]).
		Int("cancelled", counter.Cancellations).
		Uint32("population", m.Pops()).
		Uint32("workers", m.NecPops()).
		Msg("session ended")
}
