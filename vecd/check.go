package vecd

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultTolerance is the absolute difference below which two computed
// values are considered equal for checking purposes. Different summation
// orders can produce slightly different floating-point results, so exact
// comparison is too strict.
const DefaultTolerance = 1e-5

// AbsDiff computes the absolute difference between two scalars.
func AbsDiff[F constraints.Float](x, y F) F {
	return F(math.Abs(float64(x - y)))
}

// AbsDiff computes the sum of the absolute coordinate differences between v
// and v1.
func (v Vector[F]) AbsDiff(v1 Vector[F]) F {
	v.checkDim(v1)
	var sum F
	for i, x := range v {
		sum += AbsDiff(x, v1[i])
	}
	return sum
}

// AbsDiff computes the sum of the absolute coordinate differences between v
// and v1.
func (v Vec3[F]) AbsDiff(v1 Vec3[F]) F {
	return AbsDiff(v.X, v1.X) + AbsDiff(v.Y, v1.Y) + AbsDiff(v.Z, v1.Z)
}

// Close reports whether x and y differ by less than tol.
func Close[F constraints.Float](x, y, tol F) bool {
	return AbsDiff(x, y) < tol
}
