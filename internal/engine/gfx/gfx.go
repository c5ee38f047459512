// Package gfx defines the graphics API used by engine components and its
// OpenGL implementation.
//
// Components talk to the GPU through the API interface only. Handles are plain
// integers with sentinel values so that a zero or deleted handle can be
// checked without asking the backend.
package gfx

import (
	"image"

	"github.com/Faultbox/midgard-sky/pkg/math"
)

// Texture is a handle to a GPU texture. Values <= 0 mean "not loaded".
type Texture int32

// NoTexture is the texture sentinel.
const NoTexture Texture = 0

// Valid reports whether the handle refers to a texture.
func (t Texture) Valid() bool { return t > 0 }

// VertexBuffer is a handle to a GPU vertex buffer.
type VertexBuffer int32

// NoVertexBuffer is the vertex buffer sentinel.
const NoVertexBuffer VertexBuffer = -1

// Valid reports whether the handle refers to a vertex buffer.
func (vb VertexBuffer) Valid() bool { return vb != NoVertexBuffer }

// VertexFormat describes the layout of vertices in a buffer.
type VertexFormat int

// FormatP3fT2fC4b is position, texcoord, colour.
const FormatP3fT2fC4b VertexFormat = iota

// Stride returns the size of one vertex in bytes.
func (f VertexFormat) Stride() int {
	return 24
}

// DrawMode is the primitive type of a draw call.
type DrawMode int

// Triangles draws each index triple as a triangle.
const Triangles DrawMode = iota

// API is the set of graphics operations available to components.
//
// Delete calls are safe on invalid handles and reset the handle to its
// sentinel. Create calls must not be made while ContextLost is true.
type API interface {
	ContextLost() bool
	MaxTextureSize() int

	CreateTexture(img *image.RGBA, mipmaps bool) Texture
	DeleteTexture(tex *Texture)
	BindTexture(tex Texture)

	CreateVb(vertices Vertices) VertexBuffer
	DeleteVb(vb *VertexBuffer)
	BindVb(vb VertexBuffer)

	SetDepthWrite(enabled bool)
	SetTexturing(enabled bool)
	SetVertexFormat(format VertexFormat)
	LoadMatrix(m math.Mat4)
	DrawIndexedVb(mode DrawMode, indices, startVertex int)
}
