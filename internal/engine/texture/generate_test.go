package texture

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
)

func TestGenerateSkyboxLayout(t *testing.T) {
	sky := gfx.RGB(0x99, 0xCC, 0xFF)
	img, err := GenerateSkybox(16, 42, sky, gfx.White)
	if err != nil {
		t.Fatalf("GenerateSkybox: %v", err)
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 64 || h != 32 {
		t.Fatalf("atlas is %dx%d, want 64x32", w, h)
	}
	if err := ValidateSize(img.Bounds().Dx(), img.Bounds().Dy(), 0); err != nil {
		t.Errorf("generated atlas is not a valid texture: %v", err)
	}

	// Unused top-row corners are plain sky
	if c := img.RGBAAt(0, 0); c.R != sky.R || c.G != sky.G || c.B != sky.B {
		t.Errorf("unused region = %v, want sky colour", c)
	}
	// Bottom face is darker than the sky
	if c := img.RGBAAt(40, 8); int(c.R)+int(c.G)+int(c.B) >= int(sky.R)+int(sky.G)+int(sky.B) {
		t.Errorf("bottom face %v should be darker than sky", c)
	}
}

func TestGenerateSkyboxDeterministic(t *testing.T) {
	a, err := GenerateSkybox(8, 7, gfx.RGB(10, 20, 30), gfx.White)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateSkybox(8, 7, gfx.RGB(10, 20, 30), gfx.White)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same seed should produce the same atlas")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, a); err != nil {
		t.Fatalf("atlas should encode as PNG: %v", err)
	}
}

func TestGenerateSkyboxInvalidSize(t *testing.T) {
	if _, err := GenerateSkybox(12, 1, gfx.White, gfx.White); err == nil {
		t.Error("expected error for non power-of-two face size")
	}
}

func TestCloudCover(t *testing.T) {
	if cloudCover(-1) != 0 {
		t.Error("negative noise should be clear sky")
	}
	if cloudCover(1) != 1 {
		t.Error("strong noise should be full cloud")
	}
}
