// Package config loads the viewer's settings from defaults, an optional TOML
// file and command line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/stewi1014/juliaview/programs"
)

var (
	Backends = []string{"gtk", "glfw"}
	Clocks   = []string{"wall", "frame", "fixed"}
)

// Complex is a partially configured complex number. A nil part keeps the
// program's default.
type Complex struct {
	Re *float64 `koanf:"re"`
	Im *float64 `koanf:"im"`
}

type Config struct {
	Backend string `koanf:"backend"`
	Width   int    `koanf:"width"`
	Height  int    `koanf:"height"`
	Workers int    `koanf:"workers"`

	Program string `koanf:"program"`
	// Julia overrides the program's own parameter when present.
	Julia    *Complex `koanf:"julia"`
	Gradient string   `koanf:"gradient"`

	Scale         float64 `koanf:"scale"`
	ZoomFactor    float64 `koanf:"zoom-factor"`
	Repeat        float64 `koanf:"repeat"`
	MaxIterations int     `koanf:"max-iterations"`
	EscapeRadius  float64 `koanf:"escape-radius"`
	MinSelect     float64 `koanf:"min-select"`

	Clock     string  `koanf:"clock"`
	ClockStep float64 `koanf:"clock-step"`

	SnapshotDir string `koanf:"snapshot-dir"`
	LogLevel    string `koanf:"log-level"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"backend":        "gtk",
		"width":          1920,
		"height":         1080,
		"workers":        6,
		"program":        "julia",
		"gradient":       "./gradient.png",
		"scale":          300.0,
		"zoom-factor":    1.15,
		"repeat":         15.0,
		"max-iterations": 100,
		"escape-radius":  7.0,
		"min-select":     4.0,
		"clock":          "wall",
		"clock-step":     1.0 / 60,
		"snapshot-dir":   ".",
		"log-level":      "info",
	}
}

// Load merges the defaults, the file named by args.Config and the flags set in args.
func Load(args Args) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if args.Config != "" {
		if err := k.Load(file.Provider(args.Config), toml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config %v: %w", args.Config, err)
		}
	}

	if err := k.Load(confmap.Provider(args.overrides(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(slices.Contains(Backends, c.Backend), "unknown backend %q", c.Backend)
	check(slices.Contains(Clocks, c.Clock), "unknown clock %q", c.Clock)
	check(c.Width > 0 && c.Height > 0, "invalid size %dx%d", c.Width, c.Height)
	check(c.Workers > 0, "workers must be positive, got %d", c.Workers)
	check(c.Scale > 0, "scale must be positive, got %v", c.Scale)
	check(c.ZoomFactor > 1, "zoom-factor must be greater than 1, got %v", c.ZoomFactor)
	check(c.MaxIterations > 0, "max-iterations must be positive, got %d", c.MaxIterations)
	check(c.EscapeRadius > 1, "escape-radius must be greater than 1, got %v", c.EscapeRadius)
	check(c.Gradient != "", "no gradient image given")

	if _, err := programs.Lookup(c.Program); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log-level: %w", err)
	}
	return l, nil
}

// Parameter returns the configured julia parameter. Parts that are not
// configured come from the program's default.
func (c Config) Parameter(p programs.Program) complex128 {
	re, im := real(p.C), imag(p.C)
	if c.Julia != nil {
		if c.Julia.Re != nil {
			re = *c.Julia.Re
		}
		if c.Julia.Im != nil {
			im = *c.Julia.Im
		}
	}
	return complex(re, im)
}
