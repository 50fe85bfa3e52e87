package programs

// Abs2 returns the squared magnitude of z.
func Abs2(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Pow raises z to the integer power p by repeated squaring.
// Negative powers return the reciprocal of the positive power.
func Pow(z complex128, p int) complex128 {
	if p < 0 {
		return 1 / Pow(z, -p)
	}

	res := complex128(1)
	for p > 0 {
		if p&1 == 1 {
			res *= z
		}
		z *= z
		p >>= 1
	}
	return res
}
