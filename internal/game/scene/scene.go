package scene

import (
	"bytes"
	"fmt"
	"image/png"
	gomath "math"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sky/internal/config"
	"github.com/Faultbox/midgard-sky/internal/engine/camera"
	"github.com/Faultbox/midgard-sky/internal/engine/event"
	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
	"github.com/Faultbox/midgard-sky/internal/engine/sky"
	"github.com/Faultbox/midgard-sky/internal/engine/texture"
	"github.com/Faultbox/midgard-sky/internal/world"
	"github.com/Faultbox/midgard-sky/pkg/math"
)

// Face size of generated skybox atlases.
const generatedFaceSize = 256

// Clip planes of the world projection.
const (
	nearPlane = 0.05
	farPlane  = 1000
)

// eyeHeight is the player's eye position above the map origin.
var eyeHeight = math.Vec3{X: 0, Y: 1.6, Z: 0}

// Scene owns the environment, cameras, texture pack state and rendering
// components. It only talks to the GPU through gfx.API.
type Scene struct {
	log *zap.Logger
	api gfx.API
	bus *event.Bus
	cfg config.TexturesConfig

	env       *world.Env
	extractor *texture.Extractor
	loader    *texture.Loader
	watcher   *texture.Watcher

	pack      string
	generated bool // the skybox texture came from generateSkybox

	sky        *sky.Renderer
	components Components

	cameras  []camera.Camera
	active   int
	position math.Vec3
	fov      float32 // degrees

	initial world.Preset
	presets []world.Preset
	preset  int // -1 while the initial environment is active
}

// New creates the scene and initializes its components.
// No GPU resources are built until LoadPack and StartMap.
func New(api gfx.API, bus *event.Bus, cfg *config.Config, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scene{
		log:       log,
		api:       api,
		bus:       bus,
		cfg:       cfg.Textures,
		env:       world.NewEnv(bus),
		extractor: texture.NewExtractor(bus, log.Named("texpack")),
		loader:    texture.NewLoader(api, log.Named("texture")),
		position:  eyeHeight,
		fov:       cfg.Graphics.FOV,
		initial:   cfg.InitialPreset(),
		presets:   cfg.Environment.Presets,
		preset:    -1,
	}
	if err := s.env.ApplyPreset(s.initial); err != nil {
		return nil, fmt.Errorf("initial environment: %w", err)
	}

	fp := camera.NewFirstPersonCamera()
	orbit := camera.NewOrbitCamera()
	if cfg.Camera.Sensitivity > 0 {
		fp.Sensitivity = cfg.Camera.Sensitivity
		orbit.Sensitivity = cfg.Camera.Sensitivity
	}
	s.cameras = []camera.Camera{fp, orbit}
	for i, c := range s.cameras {
		if c.Name() == cfg.Camera.Mode {
			s.active = i
		}
	}

	s.sky = sky.New(sky.Deps{
		Gfx:      api,
		Bus:      bus,
		Textures: s.loader,
		Env:      s.env,
		Game:     s,
		Log:      log.Named("sky"),
	})
	s.sky.SetMinimal(cfg.Graphics.MinimalEnv)

	s.components = Components{s.sky}
	s.components.Init()
	return s, nil
}

// Env returns the world environment.
func (s *Scene) Env() *world.Env { return s.env }

// Sky returns the skybox renderer.
func (s *Scene) Sky() *sky.Renderer { return s.sky }

// Pack returns the path of the loaded texture pack, or "" if none.
func (s *Scene) Pack() string { return s.pack }

// ActiveCamera implements sky.Game.
func (s *Scene) ActiveCamera() camera.Camera {
	return s.cameras[s.active]
}

// View implements sky.Game.
func (s *Scene) View() math.Mat4 {
	return s.ActiveCamera().ViewMatrix(s.position)
}

// CycleCamera switches to the next camera and returns it.
func (s *Scene) CycleCamera() camera.Camera {
	s.active = (s.active + 1) % len(s.cameras)
	cam := s.ActiveCamera()
	s.log.Info("camera switched", zap.String("camera", cam.Name()))
	return cam
}

// Look rotates the active camera by a mouse delta.
func (s *Scene) Look(dx, dy float32) {
	s.ActiveCamera().HandleLook(dx, dy)
}

// Zoom moves an orbiting camera closer or further away.
func (s *Scene) Zoom(delta float32) {
	if orbit, ok := s.ActiveCamera().(*camera.OrbitCamera); ok {
		orbit.HandleZoom(delta)
	}
}

// ToggleMinimal flips minimal environment rendering and returns the new mode.
func (s *Scene) ToggleMinimal() bool {
	minimal := !s.sky.Minimal()
	s.sky.SetMinimal(minimal)
	s.log.Info("minimal environment", zap.Bool("enabled", minimal))
	return minimal
}

// Projection returns the world projection for a drawable of the given size.
func (s *Scene) Projection(width, height int) math.Mat4 {
	fov := float32(float64(s.fov) * gomath.Pi / 180)
	return math.Perspective(fov, float32(width)/float32(height), nearPlane, farPlane)
}

// LoadPack loads the texture pack at path, then generates a skybox texture
// if enabled and the pack did not provide one. An empty path loads nothing.
// Directory packs are watched for changes when enabled.
func (s *Scene) LoadPack(path string) error {
	if path != s.pack || s.watcher == nil {
		s.watch(path)
	}
	s.pack = path
	s.generated = false

	var err error
	if path != "" {
		if err = s.extractor.Extract(path); err != nil {
			err = fmt.Errorf("loading texture pack: %w", err)
		}
	}
	if s.cfg.GenerateSkybox && !s.sky.Texture().Valid() {
		if genErr := s.generateSkybox(); genErr != nil {
			s.log.Warn("failed to generate skybox", zap.Error(genErr))
		} else {
			s.generated = true
		}
	}
	return err
}

// OpenPack switches to another texture pack at runtime. Components are
// reset first so nothing from the previous pack survives.
func (s *Scene) OpenPack(path string) error {
	s.log.Info("opening texture pack", zap.String("pack", path))
	s.components.Reset()
	return s.LoadPack(path)
}

// Poll announces texture pack files changed on disk since the last call.
func (s *Scene) Poll() int {
	if s.watcher == nil {
		return 0
	}
	return s.watcher.Poll()
}

func (s *Scene) watch(path string) {
	s.closeWatcher()
	if !s.cfg.Watch || path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	w, err := texture.NewWatcher(path, s.extractor, s.log.Named("watcher"))
	if err != nil {
		s.log.Warn("texture pack watcher disabled", zap.Error(err))
		return
	}
	s.watcher = w
}

func (s *Scene) closeWatcher() {
	if s.watcher == nil {
		return
	}
	if err := s.watcher.Close(); err != nil {
		s.log.Warn("closing texture pack watcher", zap.Error(err))
	}
	s.watcher = nil
}

func (s *Scene) generateSkybox() error {
	size := generatedFaceSize
	for size > 1 && 4*size > s.api.MaxTextureSize() {
		size /= 2
	}
	img, err := texture.GenerateSkybox(size, s.cfg.Seed, s.env.SkyCol(), gfx.White)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding skybox: %w", err)
	}
	s.log.Info("generated skybox", zap.Int("face_size", size), zap.Int64("seed", s.cfg.Seed))
	s.extractor.Announce(sky.TextureFile, buf.Bytes())
	return nil
}

// StartMap notifies components that the current map is ready.
func (s *Scene) StartMap() {
	s.components.OnNewMap()
}

// NextPreset applies the next environment preset and starts a new map with it.
// A generated skybox is generated again from the new sky colour.
func (s *Scene) NextPreset() error {
	if len(s.presets) > 0 {
		s.preset = (s.preset + 1) % len(s.presets)
		p := s.presets[s.preset]
		if err := s.env.ApplyPreset(p); err != nil {
			return err
		}
		s.log.Info("environment preset applied", zap.String("preset", p.Name))
	}
	if s.generated {
		if err := s.OpenPack(s.pack); err != nil {
			s.log.Warn("texture pack reload failed", zap.Error(err))
		}
	}
	s.StartMap()
	return nil
}

// Preset returns the name of the active environment preset.
func (s *Scene) Preset() string {
	if s.preset < 0 {
		return s.initial.Name
	}
	return s.presets[s.preset].Name
}

// Render draws one frame of the scene with the world view loaded.
func (s *Scene) Render(dt float64) {
	s.api.LoadMatrix(s.View())
	if s.sky.ShouldRender() {
		s.sky.Render(dt)
	}
}

// Close stops the watcher and frees all components.
func (s *Scene) Close() {
	s.closeWatcher()
	s.components.Free()
}
