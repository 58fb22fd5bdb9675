package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/unixpickle/essentials"

	"vec-d/vecd"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: vec_info [flags] <input.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	vs, err := vecd.Load(inputPath, vecd.ReadVectors)
	essentials.Must(err)

	fmt.Println("Number of vectors:", len(vs))
	if len(vs) == 0 {
		return
	}
	fmt.Println("Dimension:", vs[0].Dim())

	minNorm := math.Inf(1)
	maxNorm := math.Inf(-1)
	sum := 0.0
	for _, v := range vs {
		n := v.Norm()
		minNorm = math.Min(minNorm, n)
		maxNorm = math.Max(maxNorm, n)
		sum += n
	}
	fmt.Println("Min norm:", minNorm)
	fmt.Println("Mean norm:", sum/float64(len(vs)))
	fmt.Println("Max norm:", maxNorm)
}
