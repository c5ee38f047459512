package gfx

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sky/internal/engine/event"
	"github.com/Faultbox/midgard-sky/internal/engine/gfx/shaders"
	"github.com/Faultbox/midgard-sky/internal/engine/shader"
	"github.com/Faultbox/midgard-sky/pkg/math"
)

// Vertex attribute locations shared by all programs.
const (
	attribPosition = 0
	attribColour   = 1
	attribTexCoord = 2
)

type glVb struct {
	vbo    uint32
	format VertexFormat
}

// GL implements API on OpenGL 4.1 core.
//
// The fixed-function state the API exposes (loaded matrix, texturing flag,
// vertex format) is emulated with a shader program. Sampling follows the
// vertex format: FormatP3fT2fC4b always samples the bound texture, and the
// texturing flag is tracked for callers only.
// IMPORTANT: Must be created AFTER the OpenGL context exists.
type GL struct {
	*Context
	log *zap.Logger

	program  *shader.Program
	quadIBO  uint32

	vbs map[VertexBuffer]glVb

	proj       math.Mat4
	matrix     math.Mat4
	format     VertexFormat
	texturing  bool
	depthWrite bool
	maxTexSize int
}

// NewGL initializes OpenGL and creates the backend state.
func NewGL(bus *event.Bus, log *zap.Logger) (*GL, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	log.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	g := &GL{
		Context: NewContext(bus, log),
		log:     log,
		vbs:     make(map[VertexBuffer]glVb),
		proj:    math.Identity(),
		matrix:  math.Identity(),
	}
	if err := g.initState(); err != nil {
		return nil, err
	}
	return g, nil
}

// initState creates everything the backend owns and sets default GL state.
func (g *GL) initState() error {
	var maxSize int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxSize)
	g.maxTexSize = int(maxSize)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	g.SetDepthWrite(true)

	p, err := shader.Compile(shaders.TexturedVertexShader, shaders.TexturedFragmentShader)
	if err != nil {
		g.freeState()
		return fmt.Errorf("textured shader: %w", err)
	}
	g.program = p

	indices := QuadIndices(MaxQuads)
	gl.GenBuffers(1, &g.quadIBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.quadIBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return nil
}

// freeState releases everything the backend owns.
func (g *GL) freeState() {
	g.program.Delete()
	g.program = nil
	if g.quadIBO != 0 {
		gl.DeleteBuffers(1, &g.quadIBO)
		g.quadIBO = 0
	}
	for vb := range g.vbs {
		leaked := vb
		g.log.Warn("vertex buffer leaked across context loss", zap.Int32("vb", int32(leaked)))
		g.DeleteVb(&leaked)
	}
}

// LoseContext simulates a device reset: listeners drop their GPU resources,
// then backend state is released.
func (g *GL) LoseContext(reason string) {
	g.Lose(reason, g.freeState)
}

// RecreateContext restores backend state and lets listeners rebuild.
func (g *GL) RecreateContext() error {
	_, err := g.Recreate(g.initState)
	return err
}

// Close releases backend state.
func (g *GL) Close() {
	g.log.Info("closing graphics backend")
	g.freeState()
}

// MaxTextureSize returns the largest supported texture dimension.
func (g *GL) MaxTextureSize() int {
	return g.maxTexSize
}

// CreateTexture uploads img as a 2D texture.
func (g *GL) CreateTexture(img *image.RGBA, mipmaps bool) Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	if mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return Texture(id)
}

// DeleteTexture deletes tex and resets it to NoTexture.
func (g *GL) DeleteTexture(tex *Texture) {
	if !tex.Valid() {
		return
	}
	id := uint32(*tex)
	gl.DeleteTextures(1, &id)
	*tex = NoTexture
}

// BindTexture binds tex to texture unit 0.
func (g *GL) BindTexture(tex Texture) {
	gl.ActiveTexture(gl.TEXTURE0)
	if !tex.Valid() {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
}

// CreateVb uploads vertices into a static buffer. The handle is the VAO name.
func (g *GL) CreateVb(vertices Vertices) VertexBuffer {
	data := vertices.Bytes()
	if len(data) == 0 {
		return NoVertexBuffer
	}
	format := vertices.Format()
	stride := int32(format.Stride())

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.quadIBO)

	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribTexCoord, 2, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(attribTexCoord)
	gl.VertexAttribPointerWithOffset(attribColour, 4, gl.UNSIGNED_BYTE, true, stride, 20)
	gl.EnableVertexAttribArray(attribColour)

	gl.BindVertexArray(0)

	vb := VertexBuffer(vao)
	g.vbs[vb] = glVb{vbo: vbo, format: format}
	return vb
}

// DeleteVb deletes vb and resets it to NoVertexBuffer.
func (g *GL) DeleteVb(vb *VertexBuffer) {
	if !vb.Valid() {
		return
	}
	if buf, ok := g.vbs[*vb]; ok {
		gl.DeleteBuffers(1, &buf.vbo)
		delete(g.vbs, *vb)
	}
	vao := uint32(*vb)
	gl.DeleteVertexArrays(1, &vao)
	*vb = NoVertexBuffer
}

// BindVb binds vb for the next draw call.
func (g *GL) BindVb(vb VertexBuffer) {
	if !vb.Valid() {
		gl.BindVertexArray(0)
		return
	}
	gl.BindVertexArray(uint32(vb))
}

// SetDepthWrite toggles writes to the depth buffer.
func (g *GL) SetDepthWrite(enabled bool) {
	g.depthWrite = enabled
	gl.DepthMask(enabled)
}

// SetTexturing records the texturing flag.
func (g *GL) SetTexturing(enabled bool) {
	g.texturing = enabled
}

// Texturing returns the last texturing flag set.
func (g *GL) Texturing() bool {
	return g.texturing
}

// SetVertexFormat records the vertex format of subsequent draws.
func (g *GL) SetVertexFormat(format VertexFormat) {
	g.format = format
}

// LoadMatrix sets the model-view matrix for subsequent draws.
func (g *GL) LoadMatrix(m math.Mat4) {
	g.matrix = m
}

// SetProjection sets the projection matrix.
func (g *GL) SetProjection(m math.Mat4) {
	g.proj = m
}

// DrawIndexedVb draws indices from the bound buffer using the shared quad index buffer.
func (g *GL) DrawIndexedVb(mode DrawMode, indices, startVertex int) {
	p := g.program
	if p == nil || g.format != FormatP3fT2fC4b {
		return
	}
	p.Use()
	mvp := g.proj.Mul(g.matrix)
	gl.UniformMatrix4fv(p.Uniform("uMVP"), 1, false, mvp.Ptr())
	if loc := p.Uniform("uTex"); loc >= 0 {
		gl.Uniform1i(loc, 0)
	}

	gl.DrawElementsBaseVertex(gl.TRIANGLES, int32(indices), gl.UNSIGNED_SHORT, gl.PtrOffset(0), int32(startVertex))
}

// Viewport resizes the drawable area.
func (g *GL) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears colour and depth with col.
func (g *GL) Clear(col PackedCol) {
	r, gr, b, a := col.Floats()
	gl.ClearColor(r, gr, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (g *GL) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}
