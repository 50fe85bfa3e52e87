package programs

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

const radius2 = 49

func near(a, b complex128) bool {
	return cmplx.Abs(a-b) < 1e-12
}

func TestPow(t *testing.T) {
	zs := []complex128{0, 1, -1, 1i, complex(0.3, -1.7), complex(-2.5, 0.25)}
	for _, z := range zs {
		want := complex128(1)
		for p := 0; p <= 9; p++ {
			if got := Pow(z, p); cmplx.Abs(got-want) > 1e-9*math.Max(1, cmplx.Abs(want)) {
				t.Errorf("Pow(%v, %d) = %v, want %v", z, p, got, want)
			}
			want *= z
		}
	}

	if got := Pow(2i, -2); !near(got, -0.25) {
		t.Errorf("Pow(2i, -2) = %v, want -0.25", got)
	}
}

func TestAbs2(t *testing.T) {
	if got := Abs2(complex(3, -4)); got != 25 {
		t.Errorf("Abs2(3-4i) = %v, want 25", got)
	}
}

func TestJuliaHandIterated(t *testing.T) {
	julia, err := Lookup("julia")
	if err != nil {
		t.Fatal(err)
	}

	c := complex(-0.70176, -0.3842)
	z2 := complex(-0.3569025424, 0.155032384)

	steps := []struct {
		it int
		z  complex128
	}{
		{0, 0},
		{1, c},
		{2, z2},
		{3, z2*z2 + c},
	}
	for _, s := range steps {
		it, z := julia.Escape(0, c, s.it, radius2)
		if it != s.it {
			t.Errorf("Escape capped at %d ran %d iterations", s.it, it)
		}
		if !near(z, s.z) {
			t.Errorf("z%d = %v, want %v", s.it, z, s.z)
		}
	}
}

func TestEscapeStopsBeyondRadius(t *testing.T) {
	julia, _ := Lookup("julia")
	c := complex(-0.70176, -0.3842)

	if it, z := julia.Escape(10, c, 100, radius2); it != 0 || z != 10 {
		t.Errorf("Escape(10) = %d, %v; want 0, 10", it, z)
	}

	// |z| == R is still inside the bound.
	if it, _ := julia.Escape(7, 0, 1, radius2); it != 1 {
		t.Errorf("Escape(7) stopped before iterating")
	}

	for x := -2.0; x <= 2; x += 0.125 {
		for y := -1.5; y <= 1.5; y += 0.125 {
			it, z := julia.Escape(complex(x, y), c, 100, radius2)
			if it < 100 && !(cmplx.Abs(z) > 7) {
				t.Fatalf("Escape(%v) = %d with |z| = %v, want |z| > 7", complex(x, y), it, cmplx.Abs(z))
			}
		}
	}
}

func TestMandelbrotInterior(t *testing.T) {
	m, err := Lookup("mandelbrot")
	if err != nil {
		t.Fatal(err)
	}

	if it, _ := m.Escape(-0.5, 0, 100, radius2); it != 100 {
		t.Errorf("-0.5 escaped after %d iterations", it)
	}
	if it, _ := m.Escape(complex(2, 2), 0, 100, radius2); it >= 100 {
		t.Errorf("2+2i did not escape")
	}
}

func TestMandelbrotStartsAtZero(t *testing.T) {
	m, err := Lookup("mandelbrot")
	if err != nil {
		t.Fatal(err)
	}

	pos := complex(2, 2)
	if z, k := m.Seed(pos, complex(-0.70176, -0.3842)); z != 0 || k != pos {
		t.Fatalf("Seed(%v) = %v, %v, want 0, %v", pos, z, k, pos)
	}

	// 0 -> 2+2i -> (2+2i)^2 + 2+2i = 2+10i, which is past the radius.
	it, z := m.Escape(pos, 0, 100, radius2)
	if it != 2 || z != complex(2, 10) {
		t.Errorf("Escape(%v) = %d, %v, want 2, (2+10i)", pos, it, z)
	}
}

func TestProgramsStepMatchesDegree(t *testing.T) {
	z := complex(1.1, 0.4)
	for _, name := range Names() {
		p, _ := Lookup(name)
		if p.Name == "julia4_8" {
			continue
		}
		_, k := p.Seed(0, 0)
		if got, want := p.Step(z, k), Pow(z, p.Degree)+k; !near(got, want) {
			t.Errorf("%s: Step(%v) = %v, want %v", p.Name, z, got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil || p.Name != name {
			t.Errorf("Lookup(%q) = %q, %v", name, p.Name, err)
		}
	}

	if _, err := Lookup("nope"); !errors.Is(err, ErrUnknownProgram) {
		t.Errorf("Lookup(nope) error = %v, want ErrUnknownProgram", err)
	}
}

func TestNewProgramRejectsDuplicate(t *testing.T) {
	err := NewProgram(Program{Name: "julia", Degree: 2, Seed: Julia, Step: func(z, k complex128) complex128 { return k }})
	if !errors.Is(err, ErrDuplicateProgram) {
		t.Errorf("NewProgram(julia) error = %v, want ErrDuplicateProgram", err)
	}

	if err := NewProgram(Program{Name: "broken"}); err == nil {
		t.Error("NewProgram accepted a program without functions")
	}
}
