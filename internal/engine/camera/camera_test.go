package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/midgard-sky/pkg/math"
)

func near(a, b float32) bool {
	d := a - b
	return d < 0.001 && d > -0.001
}

func TestFirstPersonPitchClamp(t *testing.T) {
	c := NewFirstPersonCamera()
	c.HandleLook(0, 100000)
	if !near(c.Pitch, maxPitch) {
		t.Errorf("pitch = %f, want %f", c.Pitch, maxPitch)
	}
	c.HandleLook(0, -200000)
	if !near(c.Pitch, -maxPitch) {
		t.Errorf("pitch = %f, want %f", c.Pitch, -maxPitch)
	}
}

func TestYawWraps(t *testing.T) {
	c := NewFirstPersonCamera()
	c.Sensitivity = 1
	c.HandleLook(float32(3*gomath.Pi), 0)
	if c.Yaw < 0 || c.Yaw >= 2*gomath.Pi {
		t.Errorf("yaw %f not wrapped to [0, 2pi)", c.Yaw)
	}
	if !near(c.Yaw, float32(gomath.Pi)) {
		t.Errorf("yaw = %f, want pi", c.Yaw)
	}
}

func TestFirstPersonTilt(t *testing.T) {
	c := NewFirstPersonCamera()
	if c.TiltMatrix() != math.Identity() {
		t.Error("untilted camera should have identity tilt")
	}
	c.Roll = float32(gomath.Pi / 2)
	p := c.TiltMatrix().TransformPoint([3]float32{1, 0, 0})
	if !near(p[0], 0) || !near(p[1], 1) {
		t.Errorf("rolled tilt: got %v, want (0, 1, 0)", p)
	}
}

func TestFirstPersonViewMatrix(t *testing.T) {
	c := NewFirstPersonCamera()
	pos := math.Vec3{X: 10, Y: 64, Z: -3}
	v := c.ViewMatrix(pos)

	p := v.TransformPoint([3]float32{pos.X, pos.Y, pos.Z})
	if !near(p[0], 0) || !near(p[1], 0) || !near(p[2], 0) {
		t.Errorf("eye should map to origin, got %v", p)
	}
}

func TestOrbitCamera(t *testing.T) {
	c := NewOrbitCamera()
	if c.TiltMatrix() != math.Identity() {
		t.Error("orbit camera should not tilt")
	}

	c.Pitch = 0
	c.Yaw = 0
	target := math.Vec3{X: 0, Y: 0, Z: 0}
	pos := c.Position(target)
	if !near(pos.Z, c.Distance) || !near(pos.X, 0) || !near(pos.Y, 0) {
		t.Errorf("position = %v, want (0, 0, %f)", pos, c.Distance)
	}

	v := c.ViewMatrix(target)
	p := v.TransformPoint([3]float32{0, 0, 0})
	if !near(p[2], -c.Distance) {
		t.Errorf("target should be %f in front of the camera, got %v", c.Distance, p)
	}
}

func TestOrbitZoomClamp(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.HandleZoom(5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %f, want min %f", c.Distance, c.MinDistance)
	}
	for i := 0; i < 100; i++ {
		c.HandleZoom(-5)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %f, want max %f", c.Distance, c.MaxDistance)
	}
}

func TestCamerasImplementInterface(t *testing.T) {
	cams := []Camera{NewFirstPersonCamera(), NewOrbitCamera()}
	names := map[string]bool{}
	for _, c := range cams {
		names[c.Name()] = true
	}
	if len(names) != 2 {
		t.Errorf("camera names should be distinct: %v", names)
	}
}
