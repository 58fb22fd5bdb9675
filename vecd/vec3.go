package vecd

import (
	"fmt"
	"math"

	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
)

// A Vec3 is a vector in R^3.
//
// Cross products and determinants are only defined in three dimensions, so
// they live on this concrete type rather than on Vector.
type Vec3[F constraints.Float] struct {
	X F
	Y F
	Z F
}

// XYZ creates a Vec3 with the given coordinates.
func XYZ[F constraints.Float](x, y, z F) Vec3[F] {
	return Vec3[F]{X: x, Y: y, Z: z}
}

// Vec3FromVector converts a 3-dimensional Vector to a Vec3.
//
// Panics if v does not have exactly three coordinates.
func Vec3FromVector[F constraints.Float](v Vector[F]) Vec3[F] {
	if len(v) != 3 {
		panic("dimension mismatch")
	}
	return Vec3[F]{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3FromCoord3D converts a model3d coordinate to a Vec3.
func Vec3FromCoord3D[F constraints.Float](c model3d.Coord3D) Vec3[F] {
	return Vec3[F]{X: F(c.X), Y: F(c.Y), Z: F(c.Z)}
}

// Vector converts v to the general N-dimensional representation.
func (v Vec3[F]) Vector() Vector[F] {
	return Vector[F]{v.X, v.Y, v.Z}
}

// Coord3D converts v to a model3d coordinate.
func (v Vec3[F]) Coord3D() model3d.Coord3D {
	return model3d.XYZ(float64(v.X), float64(v.Y), float64(v.Z))
}

// At returns the i-th coordinate, using 0-based indexing.
//
// Panics if i is outside [0, 3).
func (v Vec3[F]) At(i int) F {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("index %d out of range for dimension 3", i))
	}
}

// Add computes the elementwise sum of v and v1.
func (v Vec3[F]) Add(v1 Vec3[F]) Vec3[F] {
	return Vec3[F]{X: v.X + v1.X, Y: v.Y + v1.Y, Z: v.Z + v1.Z}
}

// Sub computes the elementwise difference of v and v1.
func (v Vec3[F]) Sub(v1 Vec3[F]) Vec3[F] {
	return Vec3[F]{X: v.X - v1.X, Y: v.Y - v1.Y, Z: v.Z - v1.Z}
}

// Scale multiplies every coordinate of v by a.
func (v Vec3[F]) Scale(a F) Vec3[F] {
	return Vec3[F]{X: a * v.X, Y: a * v.Y, Z: a * v.Z}
}

// Dot computes the Euclidean inner product of v and v1.
func (v Vec3[F]) Dot(v1 Vec3[F]) F {
	return v.X*v1.X + v.Y*v1.Y + v.Z*v1.Z
}

// Cross computes the right-hand-rule cross product of v and v1.
func (v Vec3[F]) Cross(v1 Vec3[F]) Vec3[F] {
	return Vec3[F]{
		X: v.Y*v1.Z - v.Z*v1.Y,
		Y: v.Z*v1.X - v.X*v1.Z,
		Z: v.X*v1.Y - v.Y*v1.X,
	}
}

// Norm computes the Euclidean norm of v.
func (v Vec3[F]) Norm() F {
	return F(math.Sqrt(float64(v.Dot(v))))
}

// Det computes the determinant of the matrix with rows u, v, and w.
//
// This is the scalar triple product u . (v x w): the signed volume of the
// parallelepiped spanned by the three vectors.
func Det[F constraints.Float](u, v, w Vec3[F]) F {
	return u.Dot(v.Cross(w))
}

// String formats v as a bracketed list of coordinates, e.g. "[ 1 2 3 ]".
func (v Vec3[F]) String() string {
	return "[ " + formatCoord(v.X) + " " + formatCoord(v.Y) + " " + formatCoord(v.Z) + " ]"
}
