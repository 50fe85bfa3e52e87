package programs

func init() {
	mustRegister(Program{
		Name:   "julia8",
		Degree: 8,
		C:      complex(0.37, 0.52),
		Seed:   Julia,
		Step: func(z, k complex128) complex128 {
			return Pow(z, 8) + k
		},
	})
}
