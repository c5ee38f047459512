// Package game implements the client main loop.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sky/internal/config"
	"github.com/Faultbox/midgard-sky/internal/engine/debug"
	"github.com/Faultbox/midgard-sky/internal/engine/event"
	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
	"github.com/Faultbox/midgard-sky/internal/engine/input"
	"github.com/Faultbox/midgard-sky/internal/engine/picker"
	"github.com/Faultbox/midgard-sky/internal/engine/texture"
	"github.com/Faultbox/midgard-sky/internal/engine/window"
	"github.com/Faultbox/midgard-sky/internal/game/scene"
	"github.com/Faultbox/midgard-sky/internal/logger"
)

// Game is the windowed client.
type Game struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window *window.Window
	gl     *gfx.GL
	input  *input.Input
	bus    *event.Bus
	scene  *scene.Scene

	packs       *texture.PackRequest
	picking     bool
	screenshots *debug.ScreenshotCapture

	width, height int
}

// New creates the window, graphics backend and scene, and loads the texture pack.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{
		cfg:         cfg,
		log:         log,
		input:       input.New(),
		bus:         event.NewBus(),
		packs:       texture.NewPackRequest(logger.Named("picker")),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "skyview"),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "SkyView",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The GL backend needs the context created by the window.
	g.gl, err = gfx.NewGL(g.bus, logger.Named("gfx"))
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create graphics backend: %w", err)
	}

	g.scene, err = scene.New(g.gl, g.bus, cfg, logger.Log)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	g.resize(g.window.Size())

	if err := g.scene.LoadPack(cfg.Textures.Pack); err != nil {
		log.Warn("texture pack not loaded", zap.String("pack", cfg.Textures.Pack), zap.Error(err))
	}
	g.scene.StartMap()

	g.window.SetMouseCaptured(true)
	log.Info("game initialized successfully")
	return g, nil
}

// Run runs the main loop until the window closes or Esc is pressed.
func (g *Game) Run() error {
	g.running = true

	var minFrame time.Duration
	if g.cfg.Graphics.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(g.cfg.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")
	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		if err := g.handleInput(); err != nil {
			return err
		}
		g.openRequestedPack()
		g.scene.Poll()

		g.gl.Clear(g.scene.Env().SkyCol())
		g.scene.Render(dt)
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if elapsed := time.Since(now); elapsed < minFrame {
				time.Sleep(minFrame - elapsed)
			}
		}
	}
	return nil
}

func (g *Game) handleInput() error {
	for _, e := range g.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			g.resize(g.window.Size())
		case input.EventKeyDown:
			if e.Repeat {
				continue
			}
			if err := g.handleKey(e.Key); err != nil {
				return err
			}
		}
	}

	dx, dy := g.input.MouseDelta()
	if dx != 0 || dy != 0 {
		g.scene.Look(float32(dx), float32(dy))
	}
	if wheel := g.input.WheelDelta(); wheel != 0 {
		g.scene.Zoom(float32(wheel))
	}
	return nil
}

func (g *Game) handleKey(key sdl.Scancode) error {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		g.running = false
	case sdl.SCANCODE_F5:
		g.scene.CycleCamera()
	case sdl.SCANCODE_F6:
		if err := g.scene.NextPreset(); err != nil {
			g.log.Warn("failed to apply preset", zap.Error(err))
		}
	case sdl.SCANCODE_F7:
		g.scene.ToggleMinimal()
	case sdl.SCANCODE_F9:
		g.pickPack(false)
	case sdl.SCANCODE_F10:
		g.pickPack(true)
	case sdl.SCANCODE_F8:
		g.gl.LoseContext("simulated")
		if err := g.gl.RecreateContext(); err != nil {
			return fmt.Errorf("recreating graphics context: %w", err)
		}
		g.resize(g.window.Size())
	case sdl.SCANCODE_F12:
		g.screenshot()
	}
	return nil
}

func (g *Game) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	g.width, g.height = width, height
	g.gl.Viewport(width, height)
	g.gl.SetProjection(g.scene.Projection(width, height))
}

// pickPack shows a texture pack dialog without blocking the loop. The mouse
// is released while the dialog is open.
func (g *Game) pickPack(folder bool) {
	pick := picker.ForPack(g.scene.Pack(), folder)
	if g.packs.Pick(pick) {
		g.window.SetMouseCaptured(false)
		g.picking = true
	}
}

func (g *Game) openRequestedPack() {
	if g.picking && !g.packs.Picking() {
		g.picking = false
		g.window.SetMouseCaptured(true)
	}
	path, ok := g.packs.Take()
	if !ok {
		return
	}
	if err := g.scene.OpenPack(path); err != nil {
		g.log.Warn("texture pack not loaded", zap.String("pack", path), zap.Error(err))
	}
}

func (g *Game) screenshot() {
	if g.width == 0 || g.height == 0 {
		return
	}
	pixels := g.gl.ReadPixels(g.width, g.height)
	path, err := g.screenshots.CaptureFromPixels(pixels, g.width, g.height)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the scene, graphics backend and window.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.scene != nil {
		g.scene.Close()
	}
	if g.gl != nil {
		g.gl.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
