package config

import "flag"

// Flags are the command-line overrides. Zero values leave the config unchanged.
type Flags struct {
	Config     string
	Debug      bool
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Pack       string
	Minimal    bool
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.StringVar(&f.Pack, "pack", "", "Texture pack directory or .zip")
	fs.BoolVar(&f.Minimal, "minimal", false, "Start with minimal environment rendering")
}

// ParseFlags parses the process command line. Call this early in main().
func ParseFlags() *Flags {
	f := &Flags{}
	f.Register(flag.CommandLine)
	flag.Parse()
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.Pack != "" {
		cfg.Textures.Pack = f.Pack
	}
	if f.Minimal {
		cfg.Graphics.MinimalEnv = true
	}
}
