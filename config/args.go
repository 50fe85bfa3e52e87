package config

// Args are the viewer's command line flags. Unset flags leave the
// configuration file and defaults alone.
type Args struct {
	Config   string   `arg:"-c,--config" help:"TOML configuration file"`
	Backend  *string  `arg:"-b,--backend" help:"window backend: gtk or glfw"`
	Gradient *string  `arg:"-g,--gradient" help:"gradient image"`
	Program  *string  `arg:"-p,--program" help:"fractal program"`
	Width    *int     `arg:"--width"`
	Height   *int     `arg:"--height"`
	Workers  *int     `arg:"-w,--workers" help:"render goroutines per frame"`
	Re       *float64 `arg:"--re" help:"real part of the julia parameter"`
	Im       *float64 `arg:"--im" help:"imaginary part of the julia parameter"`
	Clock    *string  `arg:"--clock" help:"animation clock: wall, frame or fixed"`
	LogLevel *string  `arg:"--log-level" help:"debug, info, warn or error"`
}

func (Args) Description() string {
	return "juliaview renders escape-time fractals on the CPU.\n" +
		"Drag to pan, scroll to zoom, S to select a rectangle, D to drag, R to reset, P to save a snapshot."
}

func (a Args) overrides() map[string]interface{} {
	m := map[string]interface{}{}
	set := func(key string, v interface{}) {
		switch v := v.(type) {
		case *string:
			if v != nil {
				m[key] = *v
			}
		case *int:
			if v != nil {
				m[key] = *v
			}
		case *float64:
			if v != nil {
				m[key] = *v
			}
		}
	}

	set("backend", a.Backend)
	set("gradient", a.Gradient)
	set("program", a.Program)
	set("width", a.Width)
	set("height", a.Height)
	set("workers", a.Workers)
	set("julia.re", a.Re)
	set("julia.im", a.Im)
	set("clock", a.Clock)
	set("log-level", a.LogLevel)
	return m
}
