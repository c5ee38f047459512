// Package gfxtest provides a recording gfx.API for tests.
package gfxtest

import (
	"fmt"
	"image"

	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
	"github.com/Faultbox/midgard-sky/pkg/math"
)

// Call is one recorded API call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Recorder implements gfx.API in memory and records every call.
type Recorder struct {
	Lost    bool
	MaxSize int

	Calls    []Call
	Textures map[gfx.Texture]*image.RGBA
	Buffers  map[gfx.VertexBuffer]gfx.TexturedVertices

	Matrix     math.Mat4
	DepthWrite bool
	Texturing  bool
	Format     gfx.VertexFormat

	nextTex gfx.Texture
	nextVb  gfx.VertexBuffer
}

// New creates a recorder with a live context.
func New() *Recorder {
	return &Recorder{
		MaxSize:    2048,
		Textures:   make(map[gfx.Texture]*image.RGBA),
		Buffers:    make(map[gfx.VertexBuffer]gfx.TexturedVertices),
		Matrix:     math.Identity(),
		DepthWrite: true,
		nextTex:    1,
		nextVb:     0,
	}
}

// Reset clears recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Names returns the names of the recorded calls in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times name was called.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) ContextLost() bool  { return r.Lost }
func (r *Recorder) MaxTextureSize() int { return r.MaxSize }

func (r *Recorder) CreateTexture(img *image.RGBA, mipmaps bool) gfx.Texture {
	tex := r.nextTex
	r.nextTex++
	r.Textures[tex] = img
	r.record("CreateTexture", tex, mipmaps)
	return tex
}

func (r *Recorder) DeleteTexture(tex *gfx.Texture) {
	r.record("DeleteTexture", *tex)
	if !tex.Valid() {
		return
	}
	delete(r.Textures, *tex)
	*tex = gfx.NoTexture
}

func (r *Recorder) BindTexture(tex gfx.Texture) {
	r.record("BindTexture", tex)
}

func (r *Recorder) CreateVb(vertices gfx.Vertices) gfx.VertexBuffer {
	vb := r.nextVb
	r.nextVb++
	if tv, ok := vertices.(gfx.TexturedVertices); ok {
		r.Buffers[vb] = append(gfx.TexturedVertices(nil), tv...)
	} else {
		r.Buffers[vb] = nil
	}
	r.record("CreateVb", vb, vertices.Count())
	return vb
}

func (r *Recorder) DeleteVb(vb *gfx.VertexBuffer) {
	r.record("DeleteVb", *vb)
	if !vb.Valid() {
		return
	}
	delete(r.Buffers, *vb)
	*vb = gfx.NoVertexBuffer
}

func (r *Recorder) BindVb(vb gfx.VertexBuffer) {
	r.record("BindVb", vb)
}

func (r *Recorder) SetDepthWrite(enabled bool) {
	r.DepthWrite = enabled
	r.record("SetDepthWrite", enabled)
}

func (r *Recorder) SetTexturing(enabled bool) {
	r.Texturing = enabled
	r.record("SetTexturing", enabled)
}

func (r *Recorder) SetVertexFormat(format gfx.VertexFormat) {
	r.Format = format
	r.record("SetVertexFormat", format)
}

func (r *Recorder) LoadMatrix(m math.Mat4) {
	r.Matrix = m
	r.record("LoadMatrix", m)
}

func (r *Recorder) DrawIndexedVb(mode gfx.DrawMode, indices, startVertex int) {
	r.record("DrawIndexedVb", mode, indices, startVertex)
}

var _ gfx.API = (*Recorder)(nil)
