package programs

func init() {
	mustRegister(Program{
		Name:   "julia",
		Degree: 2,
		C:      complex(-0.70176, -0.3842),
		Seed:   Julia,
		Step: func(z, k complex128) complex128 {
			return z*z + k
		},
	})
}
