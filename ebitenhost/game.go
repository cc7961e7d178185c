// Package ebitenhost runs a host.Session inside an Ebitengine window: it
// polls mouse input into smallworld events, renders frames with a
// ScreenBackend, and captures screenshots.
package ebitenhost

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/phanxgames/smallworld/host"
)

// Config configures the window and host behavior.
type Config struct {
	Title  string
	Width  int
	Height int

	// ShowFPS draws an FPS/TPS counter.
	ShowFPS bool
	// ScreenshotDir receives PNG screenshots (F12 or scripted).
	ScreenshotDir string
	// ResetSeconds is the duration of the camera reset animation (key R).
	ResetSeconds float32
	// ExitOnScriptEnd closes the window once an attached script finishes.
	ExitOnScriptEnd bool
	// AfterUpdate, if set, runs once per tick after the session update.
	AfterUpdate func()
}

// Game implements ebiten.Game around a session.
type Game struct {
	session *host.Session
	script  *host.ScriptRunner
	backend *ScreenBackend
	input   inputPoller
	cfg     Config
	log     zerolog.Logger
}

// NewGame creates an ebiten.Game for session. script may be nil.
func NewGame(session *host.Session, script *host.ScriptRunner, cfg Config, log zerolog.Logger) (*Game, error) {
	faces, err := DefaultFaceCache()
	if err != nil {
		return nil, err
	}
	if script != nil {
		session.SetScriptRunner(script)
	}
	return &Game{
		session: session,
		script:  script,
		backend: NewScreenBackend(faces),
		cfg:     cfg,
		log:     log,
	}, nil
}

// Update polls input and advances the session.
func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Camera.Reset(g.cfg.ResetSeconds)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.session.Screenshot("manual")
	}

	g.session.Update(dt, g.input.poll())
	if g.cfg.AfterUpdate != nil {
		g.cfg.AfterUpdate()
	}

	if g.cfg.ExitOnScriptEnd && g.script != nil && g.script.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders one frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.Screen = screen
	g.session.Frame(g.backend)
	if g.cfg.ShowFPS {
		drawFPS(screen)
	}
	g.flushScreenshots(screen, g.session.TakeScreenshots())
}

// Layout uses the window size as the screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(session *host.Session, script *host.ScriptRunner, cfg Config, log zerolog.Logger) error {
	g, err := NewGame(session, script, cfg, log)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
