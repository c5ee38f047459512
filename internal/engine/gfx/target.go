package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Target is an offscreen colour and depth buffer that scenes can be drawn
// into and shown as a texture, e.g. inside an editor panel.
type Target struct {
	fbo    uint32
	colour uint32
	depth  uint32
	width  int32
	height int32
}

// NewTarget creates a render target of at least 1x1 pixels.
func NewTarget(width, height int) (*Target, error) {
	t := &Target{}
	t.width, t.height = clampSize(width, height)

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	gl.GenTextures(1, &t.colour)
	gl.BindTexture(gl.TEXTURE_2D, t.colour)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.GenRenderbuffers(1, &t.depth)
	t.allocate()

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.colour, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, t.depth)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Delete()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return t, nil
}

func clampSize(width, height int) (int32, int32) {
	return int32(max(width, 1)), int32(max(height, 1))
}

func (t *Target) allocate() {
	gl.BindTexture(gl.TEXTURE_2D, t.colour)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.width, t.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindRenderbuffer(gl.RENDERBUFFER, t.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, t.width, t.height)
}

// Size returns the target dimensions in pixels.
func (t *Target) Size() (width, height int) {
	return int(t.width), int(t.height)
}

// Resize reallocates the buffers when the size changed.
func (t *Target) Resize(width, height int) {
	w, h := clampSize(width, height)
	if w == t.width && h == t.height {
		return
	}
	t.width, t.height = w, h
	t.allocate()
}

// Begin redirects drawing into the target. The returned function restores
// the previous framebuffer and viewport.
func (t *Target) Begin() (end func()) {
	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, t.width, t.height)

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	}
}

// ColourTexture returns the GL name of the colour attachment.
func (t *Target) ColourTexture() uint32 {
	return t.colour
}

// ReadPixels reads the colour attachment as bottom-up RGBA rows.
func (t *Target) ReadPixels() []byte {
	end := t.Begin()
	defer end()
	pixels := make([]byte, int(t.width)*int(t.height)*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, t.width, t.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Delete releases the target. It is safe to call more than once.
func (t *Target) Delete() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.colour != 0 {
		gl.DeleteTextures(1, &t.colour)
		t.colour = 0
	}
	if t.depth != 0 {
		gl.DeleteRenderbuffers(1, &t.depth)
		t.depth = 0
	}
}
