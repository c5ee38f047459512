package texture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"

	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
)

// Noise parameters for generated clouds.
const (
	cloudAlpha  = 2.0
	cloudBeta   = 2.0
	cloudOctave = 4
	cloudScale  = 4.0
)

// GenerateSkybox builds a 4x2 skybox atlas of faceSize pixel faces.
//
// The bottom row holds the four side faces (sky fading to horizon), the top
// row holds the top face at column 1 and the bottom face at column 2.
// Clouds are perlin noise tinted with cloudCol.
func GenerateSkybox(faceSize int, seed int64, skyCol, cloudCol gfx.PackedCol) (*image.RGBA, error) {
	if !isPow2(faceSize) {
		return nil, fmt.Errorf("face size %d is not a power of two", faceSize)
	}
	noise := perlin.NewPerlin(cloudAlpha, cloudBeta, cloudOctave, seed)
	img := image.NewRGBA(image.Rect(0, 0, 4*faceSize, 2*faceSize))

	horizon := lerp(skyCol, gfx.White, 0.6)
	ground := lerp(skyCol, gfx.Black, 0.7)

	for y := 0; y < 2*faceSize; y++ {
		for x := 0; x < 4*faceSize; x++ {
			col, row := x/faceSize, y/faceSize
			fx := float64(x%faceSize) / float64(faceSize)
			fy := float64(y%faceSize) / float64(faceSize)

			var c gfx.PackedCol
			switch {
			case row == 1:
				// Side faces: zenith at the top edge, horizon at the bottom
				c = lerp(skyCol, horizon, float32(fy))
				n := noise.Noise2D(float64(col)+fx*cloudScale, fy*cloudScale)
				c = lerp(c, cloudCol, cloudCover(n)*float32(1-fy))
			case col == 1:
				c = skyCol
				n := noise.Noise2D(10+fx*cloudScale, 10+fy*cloudScale)
				c = lerp(c, cloudCol, cloudCover(n))
			case col == 2:
				c = ground
			default:
				c = skyCol
			}
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img, nil
}

// cloudCover maps noise in [-1, 1] to a cloud opacity.
func cloudCover(n float64) float32 {
	v := (n - 0.1) * 2.5
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return float32(v)
}

func lerp(a, b gfx.PackedCol, t float32) gfx.PackedCol {
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return gfx.PackedCol{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
