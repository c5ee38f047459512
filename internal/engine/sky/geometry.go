package sky

import "github.com/Faultbox/midgard-sky/internal/engine/gfx"

// Extent is the half-size of the skybox cube.
const Extent = 0.5

// VertexCount is the number of vertices in the skybox buffer.
const VertexCount = 6 * 4

// UVRect is a region of the skybox texture in normalized coordinates.
type UVRect struct {
	U1, V1, U2, V2 float32
}

// Region returns the rect starting at (u, v) with size (w, h).
func Region(u, v, w, h float32) UVRect {
	return UVRect{U1: u, V1: v, U2: u + w, V2: v + h}
}

// Each atlas cell is a quarter of the width and half the height.
const (
	cellW = 0.25
	cellH = 0.5
)

// uvCorner picks one corner of a UVRect.
type uvCorner uint8

const (
	u1v1 uvCorner = iota
	u2v1
	u1v2
	u2v2
)

func (c uvCorner) pick(r UVRect) (u, v float32) {
	u, v = r.U1, r.V1
	if c == u2v1 || c == u2v2 {
		u = r.U2
	}
	if c == u1v2 || c == u2v2 {
		v = r.V2
	}
	return u, v
}

// UV corner order per quad for the four sides and for the top/bottom caps.
var (
	sideUVs = [4]uvCorner{u1v2, u2v2, u2v1, u1v1}
	capUVs  = [4]uvCorner{u2v2, u2v1, u1v1, u1v2}
)

// face describes one quad of the cube: the plane it lies in, its corner
// positions as signs of Extent, and the atlas cell it shows.
type face struct {
	name    string
	normal  [3]int8
	uv      UVRect
	corners [4][3]int8
	uvs     [4]uvCorner
}

// faces is in buffer order: front, left, back, right, top, bottom.
var faces = [6]face{
	{
		name:    "front",
		normal:  [3]int8{0, 0, -1},
		uv:      Region(0.25, 0.5, cellW, cellH),
		corners: [4][3]int8{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
		uvs:     sideUVs,
	},
	{
		name:    "left",
		normal:  [3]int8{1, 0, 0},
		uv:      Region(0.00, 0.5, cellW, cellH),
		corners: [4][3]int8{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
		uvs:     sideUVs,
	},
	{
		name:    "back",
		normal:  [3]int8{0, 0, 1},
		uv:      Region(0.75, 0.5, cellW, cellH),
		corners: [4][3]int8{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
		uvs:     sideUVs,
	},
	{
		name:    "right",
		normal:  [3]int8{-1, 0, 0},
		uv:      Region(0.50, 0.5, cellW, cellH),
		corners: [4][3]int8{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
		uvs:     sideUVs,
	},
	{
		name:    "top",
		normal:  [3]int8{0, 1, 0},
		uv:      Region(0.25, 0.0, cellW, cellH),
		corners: [4][3]int8{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}},
		uvs:     capUVs,
	},
	{
		name:    "bottom",
		normal:  [3]int8{0, -1, 0},
		uv:      Region(0.50, 0.0, cellW, cellH),
		corners: [4][3]int8{{-1, -1, -1}, {-1, -1, 1}, {1, -1, 1}, {1, -1, -1}},
		uvs:     capUVs,
	},
}

// BuildVertices returns the 24 skybox vertices, all tinted with col.
func BuildVertices(col gfx.PackedCol) gfx.TexturedVertices {
	vertices := make(gfx.TexturedVertices, 0, VertexCount)
	for _, f := range faces {
		for i, c := range f.corners {
			u, v := f.uvs[i].pick(f.uv)
			vertices = append(vertices, gfx.VertexP3fT2fC4b{
				X:   float32(c[0]) * Extent,
				Y:   float32(c[1]) * Extent,
				Z:   float32(c[2]) * Extent,
				U:   u,
				V:   v,
				Col: col,
			})
		}
	}
	return vertices
}
