// Command gen_vectors writes a file of random vectors, mainly useful for
// exercising vec_info and the binary vector format.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/unixpickle/essentials"

	"vec-d/vecd"
)

func main() {
	var count int
	var dim int
	var seed int64
	flag.IntVar(&count, "count", 100, "number of vectors to generate")
	flag.IntVar(&dim, "dim", 3, "dimension of each vector")
	flag.Int64Var(&seed, "seed", 0, "random seed")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: gen_vectors [flags] <output.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	outputPath := args[0]
	if count < 1 || dim < 1 {
		essentials.Die("-count and -dim must be positive")
	}

	r := rand.New(rand.NewSource(seed))
	vs := make([]vecd.Vector[float64], count)
	for i := range vs {
		v := vecd.Zero[float64](dim)
		for j := 0; j < dim; j++ {
			v.SetAt(j, r.NormFloat64())
		}
		vs[i] = v
	}

	log.Printf("Saving %d vectors of dimension %d...", count, dim)
	essentials.Must(vecd.Save(outputPath, vs, vecd.WriteVectors))
}
