package gfx

import "unsafe"

// VertexP3fT2fC4b is a textured, coloured vertex.
type VertexP3fT2fC4b struct {
	X, Y, Z float32
	U, V    float32
	Col     PackedCol
}

// Vertices is vertex data ready for upload.
type Vertices interface {
	Format() VertexFormat
	Count() int
	Bytes() []byte
}

// TexturedVertices holds vertices in FormatP3fT2fC4b.
type TexturedVertices []VertexP3fT2fC4b

func (v TexturedVertices) Format() VertexFormat { return FormatP3fT2fC4b }
func (v TexturedVertices) Count() int           { return len(v) }

// Bytes returns the vertex memory without copying.
func (v TexturedVertices) Bytes() []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*FormatP3fT2fC4b.Stride())
}
