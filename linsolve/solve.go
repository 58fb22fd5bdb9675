// Package linsolve solves small dense linear systems.
//
// The factorization itself is delegated to gonum; this package only adapts
// between the vector types in vecd and gonum's matrix types.
package linsolve

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"vec-d/vecd"
)

// Dense builds a gonum matrix from a row-major slice of rows.
//
// Returns an error if the rows are empty or do not all have the same length.
func Dense(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("matrix must have at least one row and column")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Errorf(
				"row %d has %d columns but row 0 has %d", i, len(row), cols,
			)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// Solve finds x such that a*x = b, using a QR decomposition.
//
// If the system is overdetermined, the least-squares solution is returned.
// Returns an error if the shapes are inconsistent, if a has more columns
// than rows, or if a is singular or badly conditioned.
func Solve(a *mat.Dense, b vecd.Vector[float64]) (vecd.Vector[float64], error) {
	rows, cols := a.Dims()
	if rows < cols {
		return nil, errors.Errorf(
			"underdetermined system: %d equations for %d unknowns", rows, cols,
		)
	}
	if b.Dim() != rows {
		return nil, errors.Errorf(
			"%d equations but %d right-hand values", rows, b.Dim(),
		)
	}
	var qr mat.QR
	qr.Factorize(a)
	var x mat.VecDense
	if err := qr.SolveVecTo(&x, false, mat.NewVecDense(rows, b)); err != nil {
		return nil, errors.Wrap(err, "solve system")
	}
	res := make(vecd.Vector[float64], cols)
	for i := range res {
		res[i] = x.AtVec(i)
	}
	return res, nil
}

// Residual computes the Euclidean norm of a*x - b, a measure of how well x
// solves the system.
func Residual(a *mat.Dense, x, b vecd.Vector[float64]) float64 {
	rows, cols := a.Dims()
	var ax mat.VecDense
	ax.MulVec(a, mat.NewVecDense(cols, x))
	res := make(vecd.Vector[float64], rows)
	for i := range res {
		res[i] = ax.AtVec(i)
	}
	return res.Sub(b).Norm()
}
