// Command vector_check runs every vector operation against known reference
// values and reports how many match within a small tolerance.
package main

import (
	"flag"
	"fmt"
	"os"

	"vec-d/vecd"
)

type checker struct {
	Tolerance float64
	Passed    int
	Total     int
}

func (c *checker) check(name string, diff float64, got, want any) {
	c.Total++
	fmt.Println(name)
	fmt.Println("YOUR CODE:", got)
	fmt.Println("REFERENCE:", want)
	if diff < c.Tolerance {
		fmt.Println("  CORRECT? YES")
		c.Passed++
	} else {
		fmt.Println("  CORRECT? NO")
	}
	fmt.Println()
}

func (c *checker) checkScalar(name string, got, want float64) {
	c.check(name, vecd.AbsDiff(got, want), got, want)
}

func (c *checker) checkVec(name string, got, want vecd.Vec3[float64]) {
	c.check(name, got.AbsDiff(want), got, want)
}

func main() {
	var tolerance float64
	flag.Float64Var(&tolerance, "tolerance", vecd.DefaultTolerance,
		"maximum absolute difference accepted as a match")
	flag.Parse()

	u := vecd.XYZ(1.0, 2.0, 3.0)
	v := vecd.XYZ(3.0, 1.0, 2.0)
	w := vecd.XYZ(5.0, 3.0, 7.0)
	a := 4.0

	fmt.Println("u:", u)
	fmt.Println("v:", v)
	fmt.Println("w:", w)
	fmt.Println("a:", a)
	fmt.Println()

	c := &checker{Tolerance: tolerance}
	c.checkVec("u+v (addition)", u.Add(v), vecd.XYZ(4.0, 3.0, 5.0))
	c.checkVec("u-v (subtraction)", u.Sub(v), vecd.XYZ(-2.0, 1.0, 1.0))
	c.checkVec("u*a (right scalar multiplication)", u.Scale(a), vecd.XYZ(4.0, 8.0, 12.0))
	c.checkScalar("norm(u) (Euclidean norm)", u.Norm(), 3.74166)
	c.checkScalar("inner(u,v) (inner product)", u.Dot(v), 11)
	c.checkVec("cross(u,v) (cross product)", u.Cross(v), vecd.XYZ(1.0, 7.0, -5.0))
	c.checkScalar("det(u,v,w) (determinant)", vecd.Det(u, v, w), -9)
	c.checkVec("a*u (left scalar multiplication)", vecd.Scale(a, u), vecd.XYZ(4.0, 8.0, 12.0))

	fmt.Printf("PASSED %d OF %d TESTS\n", c.Passed, c.Total)
	if c.Passed != c.Total {
		os.Exit(1)
	}
}
