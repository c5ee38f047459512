package gfx

import (
	"testing"
	"unsafe"
)

func TestVertexStrides(t *testing.T) {
	if s := int(unsafe.Sizeof(VertexP3fT2fC4b{})); s != FormatP3fT2fC4b.Stride() {
		t.Errorf("VertexP3fT2fC4b size %d, stride %d", s, FormatP3fT2fC4b.Stride())
	}
}

func TestTexturedVerticesBytes(t *testing.T) {
	v := TexturedVertices{
		{X: 1, Col: PackedCol{1, 2, 3, 4}},
		{X: 2, Col: PackedCol{5, 6, 7, 8}},
	}
	b := v.Bytes()
	if len(b) != 48 {
		t.Fatalf("expected 48 bytes, got %d", len(b))
	}
	// Colour sits after 5 floats
	if b[20] != 1 || b[23] != 4 || b[44] != 5 {
		t.Errorf("colour bytes misplaced: %v", b[20:24])
	}
	if v.Format() != FormatP3fT2fC4b || v.Count() != 2 {
		t.Errorf("unexpected format/count: %v/%d", v.Format(), v.Count())
	}
}

func TestEmptyVerticesBytes(t *testing.T) {
	if b := (TexturedVertices{}).Bytes(); b != nil {
		t.Errorf("expected nil bytes, got %v", b)
	}
}

func TestHandleSentinels(t *testing.T) {
	tests := []struct {
		tex  Texture
		want bool
	}{
		{-1, false}, {0, false}, {1, true},
	}
	for _, tt := range tests {
		if got := tt.tex.Valid(); got != tt.want {
			t.Errorf("Texture(%d).Valid() = %v, want %v", tt.tex, got, tt.want)
		}
	}
	if NoVertexBuffer.Valid() {
		t.Error("NoVertexBuffer should be invalid")
	}
	if !VertexBuffer(0).Valid() {
		t.Error("VertexBuffer(0) should be valid")
	}
}
