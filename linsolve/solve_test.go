package linsolve

import (
	"testing"

	"vec-d/vecd"
)

func TestSolveDiagonal(t *testing.T) {
	a, err := Dense([][]float64{
		{2, 0, 0},
		{0, 4, 0},
		{0, 0, 0.5},
	})
	if err != nil {
		t.Fatal(err)
	}
	b := vecd.NewVector(2.0, 8.0, 1.0)
	x, err := Solve(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if d := x.AbsDiff(vecd.NewVector(1.0, 2.0, 2.0)); d >= 1e-9 {
		t.Errorf("solution is off by %e", d)
	}
}

func TestSolveResidual(t *testing.T) {
	// 1.2x + 3.4y + 5.6z = 36.4
	// 7.8x + 9.0y + 1.2z = 87.6
	// 3.4x + 5.6y + 7.8z = 62.8
	a, err := Dense([][]float64{
		{1.2, 3.4, 5.6},
		{7.8, 9.0, 1.2},
		{3.4, 5.6, 7.8},
	})
	if err != nil {
		t.Fatal(err)
	}
	b := vecd.NewVector(36.4, 87.6, 62.8)
	x, err := Solve(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if r := Residual(a, x, b); r >= 1e-8 {
		t.Errorf("residual norm should be near zero but got %e", r)
	}
}

func TestSolveLeastSquares(t *testing.T) {
	// Overdetermined but consistent: y = 2x sampled at three points.
	a, err := Dense([][]float64{{1}, {2}, {3}})
	if err != nil {
		t.Fatal(err)
	}
	b := vecd.NewVector(2.0, 4.0, 6.0)
	x, err := Solve(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if d := x.AbsDiff(vecd.NewVector(2.0)); d >= 1e-9 {
		t.Errorf("solution is off by %e", d)
	}
}

func TestSolveErrors(t *testing.T) {
	if _, err := Dense(nil); err == nil {
		t.Error("expected error for empty matrix")
	}
	if _, err := Dense([][]float64{{1, 2}, {3}}); err == nil {
		t.Error("expected error for ragged rows")
	}

	a, err := Dense([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Solve(a, vecd.NewVector(1.0, 2.0, 3.0)); err == nil {
		t.Error("expected error for mismatched right-hand side")
	}

	wide, err := Dense([][]float64{{1, 2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Solve(wide, vecd.NewVector(1.0)); err == nil {
		t.Error("expected error for underdetermined system")
	}

	singular, err := Dense([][]float64{{1, 2}, {2, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Solve(singular, vecd.NewVector(1.0, 2.0)); err == nil {
		t.Error("expected error for singular matrix")
	}
}
