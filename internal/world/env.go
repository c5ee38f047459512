// Package world holds per-map world state shared by renderers.
package world

import (
	"github.com/Faultbox/midgard-sky/internal/engine/event"
	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
)

// EnvVar identifies an environment variable.
type EnvVar int

// Environment variables.
const (
	EnvSkyCol EnvVar = iota
	EnvCloudsCol
	EnvFogCol
	EnvSunCol
	EnvShadowCol
	EnvCloudsHeight
	EnvWeather
)

var envVarNames = [...]string{
	EnvSkyCol:       "sky_color",
	EnvCloudsCol:    "clouds_color",
	EnvFogCol:       "fog_color",
	EnvSunCol:       "sun_color",
	EnvShadowCol:    "shadow_color",
	EnvCloudsHeight: "clouds_height",
	EnvWeather:      "weather",
}

func (v EnvVar) String() string {
	if v < 0 || int(v) >= len(envVarNames) {
		return "unknown"
	}
	return envVarNames[v]
}

// Weather is the current precipitation.
type Weather int

// Weather kinds.
const (
	WeatherSunny Weather = iota
	WeatherRainy
	WeatherSnowy
)

// Default environment values.
var (
	DefaultSkyCol    = gfx.RGB(0x99, 0xCC, 0xFF)
	DefaultCloudsCol = gfx.RGB(0xFF, 0xFF, 0xFF)
	DefaultFogCol    = gfx.RGB(0xFF, 0xFF, 0xFF)
	DefaultSunCol    = gfx.RGB(0xFF, 0xFF, 0xFF)
	DefaultShadowCol = gfx.RGB(0x9B, 0x9B, 0x9B)
)

// DefaultCloudsHeight is the clouds height offset used when a map does not set one.
const DefaultCloudsHeight = 2

// EnvVarChanged is raised when an environment variable changes value.
type EnvVarChanged struct {
	Var EnvVar
}

// Kind implements event.Event.
func (EnvVarChanged) Kind() event.Kind { return event.EnvVarChanged }

// Env is the environment of the current map.
type Env struct {
	bus *event.Bus

	skyCol    gfx.PackedCol
	cloudsCol gfx.PackedCol
	fogCol    gfx.PackedCol
	sunCol    gfx.PackedCol
	shadowCol gfx.PackedCol

	cloudsHeight int
	weather      Weather
}

// NewEnv creates an environment with default values. Changes are raised on bus.
func NewEnv(bus *event.Bus) *Env {
	return &Env{
		bus:          bus,
		skyCol:       DefaultSkyCol,
		cloudsCol:    DefaultCloudsCol,
		fogCol:       DefaultFogCol,
		sunCol:       DefaultSunCol,
		shadowCol:    DefaultShadowCol,
		cloudsHeight: DefaultCloudsHeight,
	}
}

func (e *Env) SkyCol() gfx.PackedCol    { return e.skyCol }
func (e *Env) CloudsCol() gfx.PackedCol { return e.cloudsCol }
func (e *Env) FogCol() gfx.PackedCol    { return e.fogCol }
func (e *Env) SunCol() gfx.PackedCol    { return e.sunCol }
func (e *Env) ShadowCol() gfx.PackedCol { return e.shadowCol }
func (e *Env) CloudsHeight() int        { return e.cloudsHeight }
func (e *Env) Weather() Weather         { return e.weather }

func (e *Env) SetSkyCol(c gfx.PackedCol)    { e.setCol(&e.skyCol, c, EnvSkyCol) }
func (e *Env) SetCloudsCol(c gfx.PackedCol) { e.setCol(&e.cloudsCol, c, EnvCloudsCol) }
func (e *Env) SetFogCol(c gfx.PackedCol)    { e.setCol(&e.fogCol, c, EnvFogCol) }
func (e *Env) SetSunCol(c gfx.PackedCol)    { e.setCol(&e.sunCol, c, EnvSunCol) }
func (e *Env) SetShadowCol(c gfx.PackedCol) { e.setCol(&e.shadowCol, c, EnvShadowCol) }

// SetCloudsHeight sets the clouds height offset.
func (e *Env) SetCloudsHeight(h int) {
	if e.cloudsHeight == h {
		return
	}
	e.cloudsHeight = h
	e.raise(EnvCloudsHeight)
}

// SetWeather sets the current weather.
func (e *Env) SetWeather(w Weather) {
	if e.weather == w {
		return
	}
	e.weather = w
	e.raise(EnvWeather)
}

// Reset restores every variable to its default, raising for each one that changed.
func (e *Env) Reset() {
	e.SetSkyCol(DefaultSkyCol)
	e.SetCloudsCol(DefaultCloudsCol)
	e.SetFogCol(DefaultFogCol)
	e.SetSunCol(DefaultSunCol)
	e.SetShadowCol(DefaultShadowCol)
	e.SetCloudsHeight(DefaultCloudsHeight)
	e.SetWeather(WeatherSunny)
}

func (e *Env) setCol(dst *gfx.PackedCol, c gfx.PackedCol, v EnvVar) {
	if *dst == c {
		return
	}
	*dst = c
	e.raise(v)
}

func (e *Env) raise(v EnvVar) {
	if e.bus != nil {
		e.bus.Raise(EnvVarChanged{Var: v})
	}
}
