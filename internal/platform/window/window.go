// Package window provides the Ebitengine desktop frontend.
// It polls the keyboard once per tick, steps the game and draws it with
// filled rectangles and TrueType text.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/platform/session"
	"github.com/vovakirdan/blockfall/internal/storage"
)

const (
	textSize     = 24
	titleSize    = 48
	overlayAlpha = 128 // Final opacity of the game over veil
	overlayTime  = 0.4 // Seconds for the veil to fade in
	flashTime    = 0.35
)

// keyActions maps keys to the actions they trigger when pressed.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowUp, core.ActionRotate},
	{ebiten.KeyW, core.ActionRotate},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// Window implements ebiten.Game for one tetris session.
type Window struct {
	game    *tetris.Game
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	tracker *session.Tracker
	logger  *log.Logger

	textFace  *text.GoTextFace
	titleFace *text.GoTextFace

	overlay   *gween.Tween
	veil      float32
	flash     *gween.Tween
	flashGlow float32
}

// New creates the desktop frontend for game. store and logger may be nil.
func New(game *tetris.Game, store *storage.Store, rt core.RuntimeConfig, logger *log.Logger) (*Window, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}

	// The window lays the board out in pixels, so the terminal layout of
	// the game is disabled with a zero screen size.
	rt.ScreenW, rt.ScreenH = 0, 0
	game.Reset(rt)

	w := &Window{
		game:      game,
		cfg:       game.Config(),
		runtime:   rt,
		tracker:   session.NewTracker(game.ID(), store, logger),
		logger:    logger,
		textFace:  &text.GoTextFace{Source: source, Size: textSize},
		titleFace: &text.GoTextFace{Source: source, Size: titleSize},
	}
	game.SetSessionStats(w.tracker.Stats())
	return w, nil
}

// Update polls input and advances the game by one tick.
func (w *Window) Update() error {
	frame := core.NewInputFrame()
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			frame.Push(ka.action)
		}
	}
	if frame.Has(core.ActionQuit) {
		w.logger.Info("quit", "score", w.game.Score())
		return ebiten.Termination
	}

	result := w.game.Step(frame)
	w.observe(result)
	w.animate(float32(w.runtime.TickDuration().Seconds()))
	return nil
}

// observe reacts to the outcome of a tick: clear flash, game over veil.
func (w *Window) observe(result core.StepResult) {
	ev := w.tracker.Observe(result)

	if ev.Cleared > 0 {
		w.flash = gween.New(1, 0, flashTime, ease.OutQuad)
	}

	if ev.Restarted {
		w.overlay = nil
		w.veil = 0
	}

	if ev.Ended {
		w.overlay = gween.New(0, overlayAlpha, overlayTime, ease.OutCubic)
		w.game.SetSessionStats(w.tracker.Stats())
	}
}

// animate advances the cosmetic tweens by dt seconds.
func (w *Window) animate(dt float32) {
	if w.overlay != nil {
		w.veil, _ = w.overlay.Update(dt)
	}
	if w.flash != nil {
		var done bool
		w.flashGlow, done = w.flash.Update(dt)
		if done {
			w.flash = nil
			w.flashGlow = 0
		}
	}
}

// Layout returns the fixed pixel size of board plus side panel.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cfg.PixelSize()
}

// Run opens the window and blocks until the player quits or the window is
// closed. A graphics failure is returned as an error.
func Run(game *tetris.Game, store *storage.Store, rt core.RuntimeConfig, logger *log.Logger) error {
	w, err := New(game, store, rt, logger)
	if err != nil {
		return err
	}

	width, height := w.cfg.PixelSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(w.cfg.Window.Title)
	ebiten.SetTPS(w.runtime.TickRate)

	w.logger.Info("game started", "game", game.ID(), "seed", w.runtime.Seed, "size", fmt.Sprintf("%dx%d", width, height))
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
