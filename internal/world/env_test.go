package world

import (
	"testing"

	"github.com/Faultbox/midgard-sky/internal/engine/event"
	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
)

type varRecorder struct {
	vars []EnvVar
}

func (r *varRecorder) HandleEvent(e event.Event) {
	if ev, ok := e.(EnvVarChanged); ok {
		r.vars = append(r.vars, ev.Var)
	}
}

func newTestEnv() (*Env, *varRecorder) {
	bus := event.NewBus()
	r := &varRecorder{}
	bus.Subscribe(r, event.EnvVarChanged)
	return NewEnv(bus), r
}

func TestDefaults(t *testing.T) {
	env := NewEnv(nil)
	if env.SkyCol() != DefaultSkyCol {
		t.Errorf("sky colour = %v, want %v", env.SkyCol(), DefaultSkyCol)
	}
	if env.CloudsCol() != gfx.White {
		t.Errorf("clouds colour = %v, want white", env.CloudsCol())
	}
	if env.CloudsHeight() != DefaultCloudsHeight {
		t.Errorf("clouds height = %d", env.CloudsHeight())
	}
	if env.Weather() != WeatherSunny {
		t.Errorf("weather = %v", env.Weather())
	}
}

func TestSetRaisesOnChange(t *testing.T) {
	env, r := newTestEnv()

	env.SetCloudsCol(gfx.RGB(1, 2, 3))
	env.SetCloudsCol(gfx.RGB(1, 2, 3)) // unchanged
	env.SetFogCol(gfx.RGB(9, 9, 9))
	env.SetWeather(WeatherRainy)
	env.SetCloudsHeight(DefaultCloudsHeight) // unchanged

	want := []EnvVar{EnvCloudsCol, EnvFogCol, EnvWeather}
	if len(r.vars) != len(want) {
		t.Fatalf("expected %v, got %v", want, r.vars)
	}
	for i := range want {
		if r.vars[i] != want[i] {
			t.Errorf("event %d: got %v, want %v", i, r.vars[i], want[i])
		}
	}
}

func TestReset(t *testing.T) {
	env, r := newTestEnv()
	env.SetSkyCol(gfx.Black)
	env.SetShadowCol(gfx.Black)
	r.vars = nil

	env.Reset()

	if env.SkyCol() != DefaultSkyCol || env.ShadowCol() != DefaultShadowCol {
		t.Error("Reset should restore defaults")
	}
	if len(r.vars) != 2 {
		t.Errorf("Reset should raise only for changed vars, got %v", r.vars)
	}
}

func TestApplyPreset(t *testing.T) {
	env, r := newTestEnv()

	err := env.ApplyPreset(Preset{Name: "dusk", SkyCol: "#FF8040", CloudsCol: "#402010"})
	if err != nil {
		t.Fatalf("ApplyPreset: %v", err)
	}
	if env.SkyCol() != gfx.RGB(0xFF, 0x80, 0x40) {
		t.Errorf("sky colour = %v", env.SkyCol())
	}
	if env.CloudsCol() != gfx.RGB(0x40, 0x20, 0x10) {
		t.Errorf("clouds colour = %v", env.CloudsCol())
	}
	if env.FogCol() != DefaultFogCol {
		t.Errorf("fog colour should stay default, got %v", env.FogCol())
	}
	if len(r.vars) != 2 {
		t.Errorf("expected sky and clouds events, got %v", r.vars)
	}
}

func TestApplyPresetInvalid(t *testing.T) {
	env, r := newTestEnv()
	if err := env.ApplyPreset(Preset{Name: "bad", CloudsCol: "nope"}); err == nil {
		t.Fatal("expected error for invalid colour")
	}
	if len(r.vars) != 0 {
		t.Errorf("invalid preset should not change the environment, got %v", r.vars)
	}
}

func TestEnvVarString(t *testing.T) {
	if s := EnvCloudsCol.String(); s != "clouds_color" {
		t.Errorf("EnvCloudsCol.String() = %q", s)
	}
	if s := EnvVar(42).String(); s != "unknown" {
		t.Errorf("EnvVar(42).String() = %q", s)
	}
}
