// Package editor implements the ImGui sky editor: a live skybox preview next
// to a panel that edits the environment and swaps texture packs at runtime.
package editor

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sky/internal/config"
	"github.com/Faultbox/midgard-sky/internal/engine/debug"
	"github.com/Faultbox/midgard-sky/internal/engine/event"
	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
	"github.com/Faultbox/midgard-sky/internal/engine/picker"
	"github.com/Faultbox/midgard-sky/internal/engine/texture"
	"github.com/Faultbox/midgard-sky/internal/engine/ui"
	"github.com/Faultbox/midgard-sky/internal/game/scene"
	"github.com/Faultbox/midgard-sky/internal/logger"
)

const (
	panelWidth    = 320
	statusTimeout = 3 * time.Second
)

// Editor is the windowed sky editor.
type Editor struct {
	cfg *config.Config
	log *zap.Logger

	ui     *ui.Backend
	gl     *gfx.GL
	bus    *event.Bus
	scene  *scene.Scene
	target *gfx.Target

	packs       *texture.PackRequest
	screenshots *debug.ScreenshotCapture

	lastFrame time.Time
	lastMouse imgui.Vec2
	status    string
	statusAt  time.Time
}

// New creates the editor window, graphics backend and scene, and loads the
// configured texture pack.
func New(cfg *config.Config) (*Editor, error) {
	log := logger.Named("editor")
	e := &Editor{
		cfg:         cfg,
		log:         log,
		bus:         event.NewBus(),
		packs:       texture.NewPackRequest(logger.Named("picker")),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "skyedit"),
	}

	var err error
	e.ui, err = ui.NewBackend("SkyView Editor", cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create ui backend: %w", err)
	}
	e.gl, err = gfx.NewGL(e.bus, logger.Named("gfx"))
	if err != nil {
		return nil, fmt.Errorf("failed to create graphics backend: %w", err)
	}
	e.target, err = gfx.NewTarget(cfg.Graphics.Width-panelWidth, cfg.Graphics.Height)
	if err != nil {
		e.gl.Close()
		return nil, fmt.Errorf("failed to create preview target: %w", err)
	}
	e.scene, err = scene.New(e.gl, e.bus, cfg, logger.Log)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	if err := e.scene.LoadPack(cfg.Textures.Pack); err != nil {
		log.Warn("texture pack not loaded", zap.String("pack", cfg.Textures.Pack), zap.Error(err))
	}
	e.scene.StartMap()
	e.updateTitle()
	return e, nil
}

// Run runs the editor until its window closes.
func (e *Editor) Run() {
	e.lastFrame = time.Now()
	e.ui.Run(e.frame)
}

func (e *Editor) frame() {
	now := time.Now()
	dt := now.Sub(e.lastFrame).Seconds()
	e.lastFrame = now

	e.openRequestedPack()
	e.scene.Poll()

	pos, size := ui.Viewport()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, size.Y))
	if imgui.BeginV("Sky", nil, flags) {
		e.renderPanel()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+panelWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X-panelWidth, size.Y))
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("Preview", nil, flags|imgui.WindowFlagsNoScrollbar|imgui.WindowFlagsNoScrollWithMouse) {
		e.renderPreview(dt)
	}
	imgui.End()
	imgui.PopStyleVar()
}

// renderPreview draws the scene into the offscreen target and shows it.
// Dragging on the preview looks around, the wheel zooms an orbit camera.
func (e *Editor) renderPreview(dt float64) {
	avail := imgui.ContentRegionAvail()
	width, height := int(avail.X), int(avail.Y)
	if width <= 0 || height <= 0 {
		return
	}
	e.target.Resize(width, height)

	end := e.target.Begin()
	e.gl.SetProjection(e.scene.Projection(width, height))
	e.gl.Clear(e.scene.Env().SkyCol())
	e.scene.Render(dt)
	end()

	w, h := e.target.Size()
	ui.Image(e.target.ColourTexture(), float32(w), float32(h))

	if imgui.IsItemHovered() {
		mouse := imgui.MousePos()
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			e.scene.Look(mouse.X-e.lastMouse.X, mouse.Y-e.lastMouse.Y)
		}
		e.lastMouse = mouse
		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
			e.scene.Zoom(wheel)
		}
	}
}

func (e *Editor) renderPanel() {
	e.renderPackSection()
	imgui.Spacing()
	imgui.Separator()
	e.renderEnvSection()
	imgui.Spacing()
	imgui.Separator()
	e.renderSkyboxSection()

	if e.status != "" && time.Since(e.statusAt) < statusTimeout {
		imgui.Spacing()
		imgui.Separator()
		imgui.TextWrapped(e.status)
	}
}

func (e *Editor) renderPackSection() {
	imgui.Text("Texture pack")
	if pack := e.scene.Pack(); pack != "" {
		imgui.TextWrapped(pack)
	} else {
		imgui.TextDisabled("(none)")
	}

	imgui.BeginDisabledV(e.packs.Picking())
	if imgui.ButtonV("Open pack...", imgui.NewVec2(-1, 0)) {
		e.pickPack(false)
	}
	if imgui.ButtonV("Open pack folder...", imgui.NewVec2(-1, 0)) {
		e.pickPack(true)
	}
	imgui.EndDisabled()
}

func (e *Editor) renderEnvSection() {
	env := e.scene.Env()

	imgui.Text(fmt.Sprintf("Environment: %s", e.scene.Preset()))
	if imgui.ButtonV("Next preset", imgui.NewVec2(-1, 0)) {
		if err := e.scene.NextPreset(); err != nil {
			e.setStatus(fmt.Sprintf("Preset failed: %v", err))
		}
	}

	if col, ok := editColour("Sky", env.SkyCol()); ok {
		env.SetSkyCol(col)
	}
	if col, ok := editColour("Clouds", env.CloudsCol()); ok {
		env.SetCloudsCol(col)
	}
	if col, ok := editColour("Fog", env.FogCol()); ok {
		env.SetFogCol(col)
	}

	minimal := e.scene.Sky().Minimal()
	if imgui.Checkbox("Minimal environment", &minimal) {
		e.scene.ToggleMinimal()
	}

	imgui.Text(fmt.Sprintf("Camera: %s", e.scene.ActiveCamera().Name()))
	if imgui.ButtonV("Switch camera", imgui.NewVec2(-1, 0)) {
		e.scene.CycleCamera()
	}
}

func (e *Editor) renderSkyboxSection() {
	sky := e.scene.Sky()

	imgui.Text("Skybox")
	imgui.Text(fmt.Sprintf("Texture: %d", sky.Texture()))
	imgui.Text(fmt.Sprintf("Vertex buffer: %d", sky.VertexBuffer()))
	if e.gl.ContextLost() {
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), "Context lost")
	}

	if imgui.ButtonV("Lose and recreate context", imgui.NewVec2(-1, 0)) {
		e.gl.LoseContext("editor")
		if err := e.gl.RecreateContext(); err != nil {
			e.setStatus(fmt.Sprintf("Context not recreated: %v", err))
		}
	}
	if imgui.ButtonV("Screenshot", imgui.NewVec2(-1, 0)) {
		e.screenshot()
	}
}

// editColour shows a colour editor for col and returns the edited colour.
func editColour(label string, col gfx.PackedCol) (gfx.PackedCol, bool) {
	r, g, b, a := col.Floats()
	rgb := [3]float32{r, g, b}
	if !imgui.ColorEdit3V(label, &rgb, 0) {
		return col, false
	}
	edited := gfx.FromFloats(rgb[0], rgb[1], rgb[2], a)
	return edited, edited != col
}

func (e *Editor) pickPack(folder bool) {
	pick := picker.ForPack(e.scene.Pack(), folder)
	e.packs.Pick(pick)
}

func (e *Editor) openRequestedPack() {
	path, ok := e.packs.Take()
	if !ok {
		return
	}
	if err := e.scene.OpenPack(path); err != nil {
		e.log.Warn("texture pack not loaded", zap.String("pack", path), zap.Error(err))
		e.setStatus(fmt.Sprintf("Pack not loaded: %v", err))
	} else {
		e.setStatus("Opened " + filepath.Base(path))
	}
	e.updateTitle()
}

func (e *Editor) updateTitle() {
	title := "SkyView Editor"
	if pack := e.scene.Pack(); pack != "" {
		title += " - " + filepath.Base(pack)
	}
	e.ui.SetWindowTitle(title)
}

func (e *Editor) screenshot() {
	w, h := e.target.Size()
	path, err := e.screenshots.CaptureFromPixels(e.target.ReadPixels(), w, h)
	if err != nil {
		e.log.Warn("screenshot failed", zap.Error(err))
		e.setStatus(fmt.Sprintf("Screenshot failed: %v", err))
		return
	}
	e.log.Info("screenshot saved", zap.String("path", path))
	e.setStatus("Saved " + path)
}

func (e *Editor) setStatus(msg string) {
	e.status = msg
	e.statusAt = time.Now()
}

// Close releases the scene, preview target and graphics backend.
func (e *Editor) Close() {
	e.log.Info("closing editor")
	if e.scene != nil {
		e.scene.Close()
	}
	if e.target != nil {
		e.target.Delete()
	}
	if e.gl != nil {
		e.gl.Close()
	}
}
