package gfx

// MaxQuads is the number of quads addressable with 16-bit indices.
const MaxQuads = 65536 / 4

// QuadIndices returns triangle indices for quads consecutive quads.
// Each quad (v0 v1 v2 v3) becomes the triangles (v0 v1 v2) and (v2 v3 v0).
func QuadIndices(quads int) []uint16 {
	if quads > MaxQuads {
		quads = MaxQuads
	}
	indices := make([]uint16, 0, quads*6)
	for q := 0; q < quads; q++ {
		base := uint16(q * 4)
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+3, base,
		)
	}
	return indices
}

// QuadIndexCount returns the number of indices needed to draw vertices
// laid out as quads.
func QuadIndexCount(vertices int) int {
	return vertices / 4 * 6
}
