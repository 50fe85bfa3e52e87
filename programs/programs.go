// Package programs holds the escape-time recurrences the engine can render.
package programs

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownProgram   = errors.New("unknown program")
	ErrDuplicateProgram = errors.New("program already registered")
)

// SeedFunc returns the starting value and the additive constant of the
// recurrence for the plane point pos and the parameter c.
type SeedFunc func(pos, c complex128) (z, k complex128)

// StepFunc advances the recurrence by one iteration.
type StepFunc func(z, k complex128) complex128

type Program struct {
	Name string
	// Degree is the leading power of Step. It sets the base of the outer
	// logarithm when smoothing the iteration count.
	Degree int
	// C is the parameter used when none is configured.
	C    complex128
	Seed SeedFunc
	Step StepFunc
}

// Escape iterates the program from pos until |z|^2 exceeds radius2 or
// maxIterations steps have been taken. It returns the number of completed
// iterations and the final value.
func (p Program) Escape(pos, c complex128, maxIterations int, radius2 float64) (int, complex128) {
	z, k := p.Seed(pos, c)

	it := 0
	for ; it < maxIterations && Abs2(z) <= radius2; it++ {
		z = p.Step(z, k)
	}
	return it, z
}

// LogDegree returns the natural logarithm of the program's degree.
func (p Program) LogDegree() float64 {
	if p.Degree < 2 {
		return math.Ln2
	}
	return math.Log(float64(p.Degree))
}

// Julia seeds the recurrence with the plane point and adds the parameter.
func Julia(pos, c complex128) (complex128, complex128) { return pos, c }

// Mandelbrot starts every point at zero and adds the plane point on each
// step. The parameter is unused.
func Mandelbrot(pos, _ complex128) (complex128, complex128) { return 0, pos }

// Lookup returns the registered program called name.
func Lookup(name string) (Program, error) {
	for _, p := range programs {
		if p.Name == name {
			return p, nil
		}
	}
	return Program{}, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
}

// Names lists the registered programs in registration order.
func Names() []string {
	names := make([]string, len(programs))
	for i, p := range programs {
		names[i] = p.Name
	}
	return names
}

func NewProgram(p Program) error {
	if p.Seed == nil || p.Step == nil {
		return fmt.Errorf("program %q: missing seed or step function", p.Name)
	}
	if _, err := Lookup(p.Name); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicateProgram, p.Name)
	}
	programs = append(programs, p)
	return nil
}

func mustRegister(p Program) {
	if err := NewProgram(p); err != nil {
		panic(err)
	}
}

var programs []Program
