// Package ui hosts Dear ImGui windows on the cimgui-go SDL backend.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Backend owns the ImGui window and its OpenGL context.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window. OpenGL can be initialized once this returns.
func NewBackend(title string, width, height int) (*Backend, error) {
	b, err := backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}
	b.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.CreateWindow(title, width, height)
	return &Backend{backend: b}, nil
}

// Run calls frame once per frame until the window closes.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Viewport returns the work area of the main viewport.
func Viewport() (pos, size imgui.Vec2) {
	vp := imgui.MainViewport()
	return vp.WorkPos(), vp.WorkSize()
}

// Image shows a GL texture rendered bottom-up, such as a gfx.Target.
func Image(tex uint32, width, height float32) {
	ref := imgui.NewTextureRefTextureID(imgui.TextureID(tex))
	imgui.ImageV(*ref, imgui.NewVec2(width, height), imgui.NewVec2(0, 1), imgui.NewVec2(1, 0))
}

// Fit scales a width x height image to fit inside avail, keeping its aspect.
func Fit(width, height, availW, availH float32) (float32, float32) {
	if width <= 0 || height <= 0 || availW <= 0 || availH <= 0 {
		return 0, 0
	}
	scale := min(availW/width, availH/height)
	return width * scale, height * scale
}
