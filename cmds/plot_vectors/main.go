// Command plot_vectors draws 2D vectors from the origin into an image file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"vec-d/vecd"
)

func main() {
	var size float64
	flag.Float64Var(&size, "size", 4.0, "width and height of the plot, in inches")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: plot_vectors [flags] <vec1> <vec2> ... <output.png>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Each vector is a comma-separated pair, e.g. '1,2'.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(1)
	}
	outputPath := args[len(args)-1]

	p := plot.New()
	p.Title.Text = "Vectors"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for i, arg := range args[:len(args)-1] {
		v, err := vecd.ParseVector(arg)
		essentials.Must(err)
		if v.Dim() != 2 {
			essentials.Die("vector must have 2 coordinates:", arg)
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: 0},
			{X: v.At(0), Y: v.At(1)},
		})
		essentials.Must(err)
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(v.String(), line)
	}

	log.Println("Saving plot...")
	essentials.Must(p.Save(vg.Length(size)*vg.Inch, vg.Length(size)*vg.Inch, outputPath))
}
