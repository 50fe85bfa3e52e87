package programs

func init() {
	mustRegister(Program{
		Name:   "julia6",
		Degree: 6,
		C:      complex(-0.50517, -0.35667),
		Seed:   Julia,
		Step: func(z, k complex128) complex128 {
			return Pow(z, 6) + k
		},
	})
}
