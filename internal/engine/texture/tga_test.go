package texture

import (
	"image"
	"image/color"
	"testing"
)

func tgaHeader(imageType byte, w, h int, bpp byte, descriptor byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = imageType
	hdr[12] = byte(w)
	hdr[13] = byte(w >> 8)
	hdr[14] = byte(h)
	hdr[15] = byte(h >> 8)
	hdr[16] = bpp
	hdr[17] = descriptor
	return hdr
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x1, bottom-up, 24-bit BGR
	data := tgaHeader(TGATypeUncompressed, 2, 1, 24, 0)
	data = append(data, 0, 0, 255, 255, 0, 0) // red, blue

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	rgba := img.(*image.RGBA)
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel 0 = %v, want red", got)
	}
	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel 1 = %v, want blue", got)
	}
}

func TestDecodeTGABottomUp(t *testing.T) {
	// 1x2, bottom-up: first row in file is the bottom row
	data := tgaHeader(TGATypeUncompressed, 1, 2, 32, 0)
	data = append(data,
		0, 255, 0, 255, // green (bottom)
		255, 0, 0, 128, // blue, half alpha (top)
	)
	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	rgba := img.(*image.RGBA)
	if got := rgba.RGBAAt(0, 1); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("bottom pixel = %v, want green", got)
	}
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 128}) {
		t.Errorf("top pixel = %v, want blue/128", got)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 3x1 top-down: run of 2 white, then one raw black
	data := tgaHeader(TGATypeRLE, 3, 1, 24, 0x20)
	data = append(data,
		0x81, 255, 255, 255,
		0x00, 0, 0, 0,
	)
	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	rgba := img.(*image.RGBA)
	white := color.RGBA{255, 255, 255, 255}
	if rgba.RGBAAt(0, 0) != white || rgba.RGBAAt(1, 0) != white {
		t.Error("RLE run not expanded")
	}
	if got := rgba.RGBAAt(2, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("raw pixel = %v, want black", got)
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", []byte{1, 2, 3}},
		{"color mapped", func() []byte { h := tgaHeader(1, 1, 1, 24, 0); h[1] = 1; return h }()},
		{"bad type", tgaHeader(3, 1, 1, 24, 0)},
		{"bad depth", tgaHeader(TGATypeUncompressed, 1, 1, 16, 0)},
		{"truncated", tgaHeader(TGATypeUncompressed, 4, 4, 24, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}
