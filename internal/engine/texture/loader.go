// Package texture loads textures and texture packs into the graphics API.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strings"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
)

// Loader decodes images and uploads them as textures.
type Loader struct {
	api gfx.API
	log *zap.Logger
}

// NewLoader creates a loader uploading through api.
func NewLoader(api gfx.API, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{api: api, log: log}
}

// UpdateTexture decodes src and replaces *tex with the new texture.
// On failure *tex is left untouched.
func (l *Loader) UpdateTexture(tex *gfx.Texture, name string, src io.Reader, mipmaps bool) error {
	img, err := Decode(name, src)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	if err := ValidateSize(img.Bounds().Dx(), img.Bounds().Dy(), l.api.MaxTextureSize()); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if l.api.ContextLost() {
		return fmt.Errorf("%s: graphics context lost", name)
	}

	l.api.DeleteTexture(tex)
	*tex = l.api.CreateTexture(img, mipmaps)
	l.log.Debug("texture updated",
		zap.String("name", name),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Int32("handle", int32(*tex)),
	)
	return nil
}

// Decode decodes an image, choosing the TGA decoder by file extension.
func Decode(name string, src io.Reader) (*image.RGBA, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	var img image.Image
	if strings.EqualFold(path.Ext(name), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	return ImageToRGBA(img), nil
}

// ValidateSize checks that a texture is non-empty, power-of-two sized and
// within maxSize (ignored when <= 0).
func ValidateSize(width, height, maxSize int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("empty image %dx%d", width, height)
	}
	if !isPow2(width) || !isPow2(height) {
		return fmt.Errorf("dimensions %dx%d are not powers of two", width, height)
	}
	if maxSize > 0 && (width > maxSize || height > maxSize) {
		return fmt.Errorf("dimensions %dx%d exceed max texture size %d", width, height, maxSize)
	}
	return nil
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
