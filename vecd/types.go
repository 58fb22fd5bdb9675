package vecd

import "golang.org/x/exp/constraints"

// A Coord is a fixed-dimension vector of floating-point coordinates which
// supports the standard vector-space operations.
//
// Both Vector and Vec3 implement this interface, so generic helpers can be
// written against either representation.
type Coord[F constraints.Float, Self any] interface {
	Add(Self) Self
	Sub(Self) Self
	Scale(F) Self
	Dot(Self) F
	Norm() F
}

// Scale multiplies every coordinate of v by a.
//
// Scalar multiplication commutes, so Scale(a, v) is always identical to
// v.Scale(a); both forms exist because a*v and v*a are both standard
// notation.
func Scale[F constraints.Float, C Coord[F, C]](a F, v C) C {
	return v.Scale(a)
}

// NormOf computes the Euclidean norm of v.
//
// This is the free-function form of the Norm method, for callers which pass
// norms around as function values.
func NormOf[F constraints.Float, C Coord[F, C]](v C) F {
	return v.Norm()
}

// Component computes the (signed) length of the projection of v onto the
// direction of axis. The axis need not be normalized, but must be non-zero.
func Component[F constraints.Float, C Coord[F, C]](axis, v C) F {
	return axis.Dot(v) / axis.Norm()
}

// Project computes the projection of v onto the direction of axis.
//
// The axis need not be normalized, but must be non-zero.
func Project[F constraints.Float, C Coord[F, C]](axis, v C) C {
	return axis.Scale(axis.Dot(v) / axis.Dot(axis))
}
