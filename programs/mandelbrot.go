package programs

func init() {
	mustRegister(Program{
		Name:   "mandelbrot",
		Degree: 2,
		Seed:   Mandelbrot,
		Step: func(z, k complex128) complex128 {
			return z*z + k
		},
	})
}
