package programs

func init() {
	mustRegister(Program{
		Name:   "julia3",
		Degree: 3,
		C:      complex(0.08394, 0.77007),
		Seed:   Julia,
		Step: func(z, k complex128) complex128 {
			return Pow(z, 3) + k
		},
	})
}
