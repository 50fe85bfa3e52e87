package programs

func init() {
	mustRegister(Program{
		Name:   "julia4_8",
		Degree: 8,
		C:      complex(-0.98487460613250732421875, 0),
		Seed:   Julia,
		Step: func(z, k complex128) complex128 {
			z4 := Pow(z, 4)
			return z4 + z4*z4 + k
		},
	})
}
