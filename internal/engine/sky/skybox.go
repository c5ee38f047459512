// Package sky renders the skybox: a textured cube drawn around the camera
// behind all world geometry.
package sky

import (
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sky/internal/engine/camera"
	"github.com/Faultbox/midgard-sky/internal/engine/event"
	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
	"github.com/Faultbox/midgard-sky/internal/engine/texture"
	"github.com/Faultbox/midgard-sky/internal/world"
	"github.com/Faultbox/midgard-sky/pkg/math"
)

// TextureFile is the texture pack entry the skybox is loaded from.
const TextureFile = "skybox.png"

// Game exposes the per-frame state the skybox reads.
type Game interface {
	ActiveCamera() camera.Camera
	View() math.Mat4
}

// Environment provides the tint applied to every skybox vertex.
type Environment interface {
	CloudsCol() gfx.PackedCol
}

// TextureLoader replaces a texture with the image decoded from src.
type TextureLoader interface {
	UpdateTexture(tex *gfx.Texture, name string, src io.Reader, mipmaps bool) error
}

// Deps are the collaborators of a Renderer.
type Deps struct {
	Gfx      gfx.API
	Bus      *event.Bus
	Textures TextureLoader
	Env      Environment
	Game     Game
	Log      *zap.Logger
}

// subscriptions are the events the skybox reacts to.
var subscriptions = []event.Kind{
	event.TextureFileChanged,
	event.TexturePackChanged,
	event.EnvVarChanged,
	event.ContextLost,
	event.ContextRecreated,
}

// Renderer draws the skybox. It owns its texture and vertex buffer.
type Renderer struct {
	gfx      gfx.API
	bus      *event.Bus
	textures TextureLoader
	env      Environment
	game     Game
	log      *zap.Logger

	tex     gfx.Texture
	vb      gfx.VertexBuffer
	minimal bool
}

// New creates a renderer. No GPU resources are created until OnNewMap or a
// matching event.
func New(deps Deps) *Renderer {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		gfx:      deps.Gfx,
		bus:      deps.Bus,
		textures: deps.Textures,
		env:      deps.Env,
		game:     deps.Game,
		log:      log,
		tex:      gfx.NoTexture,
		vb:       gfx.NoVertexBuffer,
	}
}

// Init subscribes to texture, environment and context events.
func (r *Renderer) Init() {
	r.bus.Subscribe(r, subscriptions...)
}

// Free releases the texture and vertex buffer and unsubscribes.
func (r *Renderer) Free() {
	r.gfx.DeleteTexture(&r.tex)
	r.contextLost()
	r.bus.Unsubscribe(r, subscriptions...)
}

// Reset releases the texture only.
func (r *Renderer) Reset() {
	r.gfx.DeleteTexture(&r.tex)
}

// OnNewMap rebuilds the vertex buffer, whose colours depend on the new map's environment.
func (r *Renderer) OnNewMap() {
	r.rebuild()
}

// ShouldRender reports whether a texture is loaded and the environment is not minimal.
func (r *Renderer) ShouldRender() bool {
	return r.tex > 0 && !r.minimal
}

// SetMinimal toggles minimal environment rendering.
func (r *Renderer) SetMinimal(minimal bool) {
	r.minimal = minimal
}

// Minimal reports whether minimal environment rendering is on.
func (r *Renderer) Minimal() bool {
	return r.minimal
}

// Texture returns the skybox texture handle.
func (r *Renderer) Texture() gfx.Texture {
	return r.tex
}

// VertexBuffer returns the skybox vertex buffer handle.
func (r *Renderer) VertexBuffer() gfx.VertexBuffer {
	return r.vb
}

// HandleEvent implements event.Listener.
func (r *Renderer) HandleEvent(e event.Event) {
	switch ev := e.(type) {
	case world.EnvVarChanged:
		if ev.Var != world.EnvCloudsCol {
			return
		}
		r.rebuild()
	case texture.PackChanged:
		r.gfx.DeleteTexture(&r.tex)
	case texture.FileChanged:
		if ev.Name != TextureFile {
			return
		}
		if err := r.textures.UpdateTexture(&r.tex, ev.Name, ev.Data, false); err != nil {
			r.log.Warn("failed to load skybox texture", zap.Error(err))
		}
	case gfx.ContextLostEvent:
		r.contextLost()
	case gfx.ContextRecreatedEvent:
		r.rebuild()
	}
}

// Render draws the skybox with the active camera's rotation and restores
// the view matrix and depth writes afterwards. deltaTime is unused.
func (r *Renderer) Render(deltaTime float64) {
	if r.vb == gfx.NoVertexBuffer {
		return
	}
	r.gfx.SetDepthWrite(false)
	r.gfx.SetTexturing(false)
	r.gfx.BindTexture(r.tex)
	r.gfx.SetVertexFormat(gfx.FormatP3fT2fC4b)

	r.gfx.LoadMatrix(Matrix(r.game.ActiveCamera()))
	r.gfx.BindVb(r.vb)
	r.gfx.DrawIndexedVb(gfx.Triangles, gfx.QuadIndexCount(VertexCount), 0)

	r.gfx.SetTexturing(false)
	r.gfx.LoadMatrix(r.game.View())
	r.gfx.SetDepthWrite(true)
}

// Matrix returns the skybox transform for cam: yaw, then pitch, then the camera tilt.
func Matrix(cam camera.Camera) math.Mat4 {
	yaw, pitch := cam.Orientation()

	m := math.Identity()
	m = math.RotateY(yaw).Mul(m)
	m = math.RotateX(pitch).Mul(m)
	m = cam.TiltMatrix().Mul(m)
	return m
}

func (r *Renderer) contextLost() {
	r.gfx.DeleteVb(&r.vb)
}

func (r *Renderer) rebuild() {
	if r.gfx.ContextLost() {
		return
	}
	r.gfx.DeleteVb(&r.vb)
	col := r.env.CloudsCol()
	r.vb = r.gfx.CreateVb(BuildVertices(col))
	r.log.Debug("skybox vertex buffer built", zap.String("color", col.Hex()))
}
