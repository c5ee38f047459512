package world

import (
	"fmt"

	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
)

// Preset is a named set of environment colours, given as hex strings.
// Empty fields keep the default.
type Preset struct {
	Name      string `yaml:"name"`
	SkyCol    string `yaml:"sky_color"`
	CloudsCol string `yaml:"clouds_color"`
	FogCol    string `yaml:"fog_color"`
}

type presetCols struct {
	sky, clouds, fog gfx.PackedCol
}

func (p Preset) parse() (presetCols, error) {
	var c presetCols
	var err error
	if c.sky, err = parseOr(p.SkyCol, DefaultSkyCol); err != nil {
		return c, fmt.Errorf("preset %s sky: %w", p.Name, err)
	}
	if c.clouds, err = parseOr(p.CloudsCol, DefaultCloudsCol); err != nil {
		return c, fmt.Errorf("preset %s clouds: %w", p.Name, err)
	}
	if c.fog, err = parseOr(p.FogCol, DefaultFogCol); err != nil {
		return c, fmt.Errorf("preset %s fog: %w", p.Name, err)
	}
	return c, nil
}

// Validate checks that every colour in p parses.
func (p Preset) Validate() error {
	_, err := p.parse()
	return err
}

// ApplyPreset resets env and applies the colours in p.
// env is left untouched when p is invalid.
func (e *Env) ApplyPreset(p Preset) error {
	c, err := p.parse()
	if err != nil {
		return err
	}
	e.Reset()
	e.SetSkyCol(c.sky)
	e.SetCloudsCol(c.clouds)
	e.SetFogCol(c.fog)
	return nil
}

func parseOr(s string, def gfx.PackedCol) (gfx.PackedCol, error) {
	if s == "" {
		return def, nil
	}
	return gfx.ParseHex(s)
}
