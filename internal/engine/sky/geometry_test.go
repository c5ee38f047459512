package sky

import (
	"testing"

	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
)

func TestBuildVerticesCountAndColour(t *testing.T) {
	cols := []gfx.PackedCol{gfx.White, gfx.Black, gfx.RGB(0x12, 0x34, 0x56), {1, 2, 3, 4}}
	for _, col := range cols {
		t.Run(col.Hex(), func(t *testing.T) {
			v := BuildVertices(col)
			if len(v) != VertexCount {
				t.Fatalf("expected %d vertices, got %d", VertexCount, len(v))
			}
			for i, vert := range v {
				if vert.Col != col {
					t.Errorf("vertex %d colour = %v, want %v", i, vert.Col, col)
				}
			}
		})
	}
}

func TestBuildVerticesDeterministic(t *testing.T) {
	a := BuildVertices(gfx.White)
	b := BuildVertices(gfx.White)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vertex %d differs between builds: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFaceOrder(t *testing.T) {
	want := []string{"front", "left", "back", "right", "top", "bottom"}
	for i, f := range faces {
		if f.name != want[i] {
			t.Errorf("face %d = %s, want %s", i, f.name, want[i])
		}
	}
}

func TestFacesLieOnTheirPlane(t *testing.T) {
	v := BuildVertices(gfx.White)
	for fi, f := range faces {
		axis := -1
		for a, n := range f.normal {
			if n != 0 {
				axis = a
			}
		}
		want := float32(f.normal[axis]) * Extent
		for c := 0; c < 4; c++ {
			vert := v[fi*4+c]
			pos := [3]float32{vert.X, vert.Y, vert.Z}
			if pos[axis] != want {
				t.Errorf("%s corner %d: axis %d = %f, want %f", f.name, c, axis, pos[axis], want)
			}
			for a := range pos {
				if pos[a] != Extent && pos[a] != -Extent {
					t.Errorf("%s corner %d not on the cube: %v", f.name, c, pos)
				}
			}
		}
	}
}

func TestUVRectsPartitionAtlas(t *testing.T) {
	type cell struct{ col, row int }
	used := map[cell]string{}

	for _, f := range faces {
		r := f.uv
		if w := r.U2 - r.U1; w != 0.25 {
			t.Errorf("%s width = %f, want 0.25", f.name, w)
		}
		if h := r.V2 - r.V1; h != 0.5 {
			t.Errorf("%s height = %f, want 0.5", f.name, h)
		}
		c := cell{col: int(r.U1 * 4), row: int(r.V1 * 2)}
		if float32(c.col)/4 != r.U1 || float32(c.row)/2 != r.V1 {
			t.Errorf("%s rect %v is not aligned to the 4x2 grid", f.name, r)
		}
		if other, ok := used[c]; ok {
			t.Errorf("%s overlaps %s at %v", f.name, other, c)
		}
		used[c] = f.name
	}

	// Sides fill the lower strip, caps sit above front and right
	for col := 0; col < 4; col++ {
		if _, ok := used[cell{col, 1}]; !ok {
			t.Errorf("side strip column %d unused", col)
		}
	}
	if used[cell{1, 0}] != "top" || used[cell{2, 0}] != "bottom" {
		t.Errorf("caps misplaced: %v", used)
	}
}

func TestVertexUVs(t *testing.T) {
	v := BuildVertices(gfx.White)
	tests := []struct {
		index int
		want  gfx.VertexP3fT2fC4b
	}{
		{0, gfx.VertexP3fT2fC4b{X: 0.5, Y: -0.5, Z: -0.5, U: 0.25, V: 1.0}},
		{2, gfx.VertexP3fT2fC4b{X: -0.5, Y: 0.5, Z: -0.5, U: 0.5, V: 0.5}},
		{5, gfx.VertexP3fT2fC4b{X: 0.5, Y: -0.5, Z: -0.5, U: 0.25, V: 1.0}},
		{11, gfx.VertexP3fT2fC4b{X: -0.5, Y: 0.5, Z: 0.5, U: 0.75, V: 0.5}},
		{16, gfx.VertexP3fT2fC4b{X: -0.5, Y: 0.5, Z: -0.5, U: 0.5, V: 0.5}},
		{18, gfx.VertexP3fT2fC4b{X: 0.5, Y: 0.5, Z: 0.5, U: 0.25, V: 0}},
		{23, gfx.VertexP3fT2fC4b{X: 0.5, Y: -0.5, Z: -0.5, U: 0.5, V: 0.5}},
	}
	for _, tt := range tests {
		got := v[tt.index]
		got.Col = gfx.PackedCol{}
		if got != tt.want {
			t.Errorf("vertex %d = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestRegion(t *testing.T) {
	r := Region(0.5, 0, 0.25, 0.5)
	if r != (UVRect{U1: 0.5, V1: 0, U2: 0.75, V2: 0.5}) {
		t.Errorf("Region = %+v", r)
	}
}
