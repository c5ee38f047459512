// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/midgard-sky/pkg/math"
)

// Camera is the view the world is rendered from.
type Camera interface {
	// Orientation returns the horizontal (yaw) and vertical (pitch) look angles in radians.
	Orientation() (yaw, pitch float32)
	// TiltMatrix returns extra rotation applied after orientation (view bobbing, roll).
	TiltMatrix() math.Mat4
	// ViewMatrix returns the view matrix for a player standing at pos.
	ViewMatrix(pos math.Vec3) math.Mat4
	// HandleLook applies a mouse movement delta in pixels.
	HandleLook(deltaX, deltaY float32)
	// Name identifies the camera in logs and UI.
	Name() string
}

const maxPitch = 89 * gomath.Pi / 180

// FirstPersonCamera looks out from the player's eyes.
type FirstPersonCamera struct {
	Yaw   float32 // Horizontal angle (radians)
	Pitch float32 // Vertical angle (radians), clamped to +-89 degrees

	// Tilt
	Roll    float32 // Rotation around the view axis (radians)
	BobTilt float32 // Extra pitch from view bobbing (radians)

	Sensitivity float32
}

// NewFirstPersonCamera creates a first-person camera with default settings.
func NewFirstPersonCamera() *FirstPersonCamera {
	return &FirstPersonCamera{
		Sensitivity: 0.003,
	}
}

// Name implements Camera.
func (c *FirstPersonCamera) Name() string { return "first_person" }

// Orientation implements Camera.
func (c *FirstPersonCamera) Orientation() (yaw, pitch float32) {
	return c.Yaw, c.Pitch
}

// TiltMatrix implements Camera.
func (c *FirstPersonCamera) TiltMatrix() math.Mat4 {
	return math.RotateZ(c.Roll).Mul(math.RotateX(c.BobTilt))
}

// ViewMatrix implements Camera.
func (c *FirstPersonCamera) ViewMatrix(pos math.Vec3) math.Mat4 {
	rot := c.TiltMatrix().Mul(math.RotateX(c.Pitch)).Mul(math.RotateY(c.Yaw))
	return rot.Mul(math.Translate(-pos.X, -pos.Y, -pos.Z))
}

// HandleLook implements Camera.
func (c *FirstPersonCamera) HandleLook(deltaX, deltaY float32) {
	c.Yaw = wrapAngle(c.Yaw + deltaX*c.Sensitivity)
	c.Pitch = clampPitch(c.Pitch + deltaY*c.Sensitivity)
}

// OrbitCamera orbits behind the player at a fixed distance.
type OrbitCamera struct {
	Distance float32
	Yaw      float32 // Horizontal angle of the look direction (radians)
	Pitch    float32 // Vertical angle of the look direction (radians)

	MinDistance float32
	MaxDistance float32

	Sensitivity     float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        3,
		Pitch:           0.35,
		MinDistance:     1,
		MaxDistance:     20,
		Sensitivity:     0.003,
		ZoomSensitivity: 0.1,
	}
}

// Name implements Camera.
func (c *OrbitCamera) Name() string { return "third_person" }

// Orientation implements Camera.
func (c *OrbitCamera) Orientation() (yaw, pitch float32) {
	return c.Yaw, c.Pitch
}

// TiltMatrix implements Camera. Orbit cameras are never tilted.
func (c *OrbitCamera) TiltMatrix() math.Mat4 {
	return math.Identity()
}

// Position returns the camera position for a player at target.
func (c *OrbitCamera) Position(target math.Vec3) math.Vec3 {
	horiz := c.Distance * float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: target.X - horiz*float32(gomath.Sin(float64(c.Yaw))),
		Y: target.Y + c.Distance*float32(gomath.Sin(float64(c.Pitch))),
		Z: target.Z + horiz*float32(gomath.Cos(float64(c.Yaw))),
	}
}

// ViewMatrix implements Camera.
func (c *OrbitCamera) ViewMatrix(target math.Vec3) math.Mat4 {
	rot := math.RotateX(c.Pitch).Mul(math.RotateY(c.Yaw))
	pos := c.Position(target)
	return rot.Mul(math.Translate(-pos.X, -pos.Y, -pos.Z))
}

// HandleLook implements Camera.
func (c *OrbitCamera) HandleLook(deltaX, deltaY float32) {
	c.Yaw = wrapAngle(c.Yaw + deltaX*c.Sensitivity)
	c.Pitch = clampPitch(c.Pitch + deltaY*c.Sensitivity)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

func clampPitch(p float32) float32 {
	if p < -maxPitch {
		return -maxPitch
	}
	if p > maxPitch {
		return maxPitch
	}
	return p
}

func wrapAngle(a float32) float32 {
	const twoPi = 2 * gomath.Pi
	for a >= twoPi {
		a -= twoPi
	}
	for a < 0 {
		a += twoPi
	}
	return a
}
