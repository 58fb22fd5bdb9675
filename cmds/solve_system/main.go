// Command solve_system solves a dense linear system A*x = b.
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/unixpickle/essentials"
	"gonum.org/v1/gonum/mat"

	"vec-d/linsolve"
	"vec-d/vecd"
)

func main() {
	var matrixStr string
	var rhsStr string
	flag.StringVar(&matrixStr, "matrix", "1.2,3.4,5.6;7.8,9.0,1.2;3.4,5.6,7.8",
		"matrix rows, semicolon-separated, each a comma-separated list")
	flag.StringVar(&rhsStr, "rhs", "36.4,87.6,62.8", "right-hand side vector")
	flag.Parse()

	rows := [][]float64{}
	for _, rowStr := range strings.Split(matrixStr, ";") {
		row, err := vecd.ParseVector(rowStr)
		essentials.Must(err)
		rows = append(rows, row)
	}
	a, err := linsolve.Dense(rows)
	essentials.Must(err)
	b, err := vecd.ParseVector(rhsStr)
	essentials.Must(err)

	fmt.Println("Here is the matrix A:")
	fmt.Println(mat.Formatted(a))
	fmt.Println("Here is the vector b:")
	fmt.Println(b)

	x, err := linsolve.Solve(a, b)
	essentials.Must(err)

	fmt.Println("The solution is:")
	fmt.Println(x)
	fmt.Println("Residual norm:", linsolve.Residual(a, x, b))
}
