package vecd

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// A Vector is a vector in R^n, stored as an ordered list of coordinates.
//
// The dimension is fixed at construction and every binary operation requires
// both operands to have the same dimension. Operations never modify their
// receiver; the only mutation a Vector supports is coordinate assignment via
// SetAt.
type Vector[F constraints.Float] []F

// NewVector creates a vector whose dimension is the number of arguments and
// whose i-th coordinate is the i-th argument.
func NewVector[F constraints.Float](coords ...F) Vector[F] {
	if len(coords) == 0 {
		panic("vector dimension must be positive")
	}
	res := make(Vector[F], len(coords))
	copy(res, coords)
	return res
}

// Zero creates the zero vector of dimension n.
func Zero[F constraints.Float](n int) Vector[F] {
	if n <= 0 {
		panic("vector dimension must be positive")
	}
	return make(Vector[F], n)
}

// FromSlice creates a vector with the given coordinates. The slice is copied,
// so later changes to it do not affect the result.
func FromSlice[F constraints.Float](coords []F) Vector[F] {
	return NewVector(coords...)
}

// Dim returns the number of coordinates in v.
func (v Vector[F]) Dim() int {
	return len(v)
}

// At returns the i-th coordinate, using 0-based indexing.
//
// Panics if i is outside [0, Dim).
func (v Vector[F]) At(i int) F {
	v.checkIndex(i)
	return v[i]
}

// SetAt assigns the i-th coordinate, using 0-based indexing.
//
// Panics if i is outside [0, Dim).
func (v Vector[F]) SetAt(i int, x F) {
	v.checkIndex(i)
	v[i] = x
}

func (v Vector[F]) checkIndex(i int) {
	if i < 0 || i >= len(v) {
		panic(fmt.Sprintf("index %d out of range for dimension %d", i, len(v)))
	}
}

func (v Vector[F]) checkDim(v1 Vector[F]) {
	if len(v) != len(v1) {
		panic("dimension mismatch")
	}
}

// Add computes the elementwise sum of v and v1.
func (v Vector[F]) Add(v1 Vector[F]) Vector[F] {
	v.checkDim(v1)
	res := make(Vector[F], len(v))
	for i, x := range v {
		res[i] = x + v1[i]
	}
	return res
}

// Sub computes the elementwise difference of v and v1.
func (v Vector[F]) Sub(v1 Vector[F]) Vector[F] {
	v.checkDim(v1)
	res := make(Vector[F], len(v))
	for i, x := range v {
		res[i] = x - v1[i]
	}
	return res
}

// Scale multiplies every coordinate of v by a.
func (v Vector[F]) Scale(a F) Vector[F] {
	res := make(Vector[F], len(v))
	for i, x := range v {
		res[i] = a * x
	}
	return res
}

// Dot computes the Euclidean inner product of v and v1.
func (v Vector[F]) Dot(v1 Vector[F]) F {
	v.checkDim(v1)
	var sum F
	for i, x := range v {
		sum += x * v1[i]
	}
	return sum
}

// Norm computes the Euclidean norm of v.
func (v Vector[F]) Norm() F {
	var sum F
	for _, x := range v {
		sum += x * x
	}
	return F(math.Sqrt(float64(sum)))
}

// String formats v as a bracketed list of coordinates, e.g. "[ 1 2 3 ]".
func (v Vector[F]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, x := range v {
		sb.WriteString(formatCoord(x))
		sb.WriteString(" ")
	}
	sb.WriteString("]")
	return sb.String()
}

// formatCoord renders x at the precision of F, so float32 coordinates do not
// pick up conversion noise from widening to float64.
func formatCoord[F constraints.Float](x F) string {
	return fmt.Sprintf("%v", x)
}
