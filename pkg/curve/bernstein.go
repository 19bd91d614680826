package curve

import "golang.org/x/exp/constraints"

// Bernstein returns the Bernstein polynomial B(i, n) at u.
// It returns 0 when i is outside [0, n].
func Bernstein[T constraints.Float](i, n int, u T) T {
	if i < 0 || i > n {
		return 0
	}

	temp := make([]T, n+1)
	temp[n-i] = 1
	uInv := 1 - u
	for k := 1; k <= n; k++ {
		for j := n; j >= k; j-- {
			temp[j] = uInv*temp[j] + u*temp[j-1]
		}
	}
	return temp[n]
}

// AllBernstein returns the n+1 Bernstein polynomials of degree n at u
func AllBernstein[T constraints.Float](n int, u T) []T {
	if n < 0 {
		return nil
	}

	b := make([]T, n+1)
	b[0] = 1
	uInv := 1 - u
	for j := 1; j <= n; j++ {
		var saved T
		for k := 0; k < j; k++ {
			temp := b[k]
			b[k] = saved + uInv*temp
			saved = u * temp
		}
		b[j] = saved
	}
	return b
}
