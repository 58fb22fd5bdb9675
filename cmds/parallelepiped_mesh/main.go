// Command parallelepiped_mesh writes the parallelepiped spanned by three
// vectors as an STL mesh and reports its signed volume.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"

	"vec-d/vecd"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: parallelepiped_mesh [flags] <u> <v> <w> <output.stl>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Each vector is a comma-separated triple, e.g. '1,2,3'.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 4 {
		flag.Usage()
		os.Exit(1)
	}
	u, err := vecd.ParseVec3(args[0])
	essentials.Must(err)
	v, err := vecd.ParseVec3(args[1])
	essentials.Must(err)
	w, err := vecd.ParseVec3(args[2])
	essentials.Must(err)
	outputPath := args[3]

	det := vecd.Det(u, v, w)
	log.Println("Signed volume:", det)
	if det == 0 {
		essentials.Die("vectors are coplanar; the parallelepiped is degenerate")
	}
	if det < 0 {
		// Swap two edges so that the faces below wind outward.
		v, w = w, v
	}

	origin := vecd.XYZ(0.0, 0.0, 0.0)
	mesh := model3d.NewMesh()
	addQuad := func(a, b, c, d vecd.Vec3[float64]) {
		p1, p2, p3, p4 := a.Coord3D(), b.Coord3D(), c.Coord3D(), d.Coord3D()
		mesh.Add(&model3d.Triangle{p1, p2, p3})
		mesh.Add(&model3d.Triangle{p1, p3, p4})
	}
	addQuad(origin, v, u.Add(v), u)
	addQuad(w, u.Add(w), u.Add(v).Add(w), v.Add(w))
	addQuad(origin, u, u.Add(w), w)
	addQuad(v, v.Add(w), u.Add(v).Add(w), u.Add(v))
	addQuad(origin, w, v.Add(w), v)
	addQuad(u, u.Add(v), u.Add(v).Add(w), u.Add(w))

	log.Println("Saving mesh...")
	essentials.Must(mesh.SaveGroupedSTL(outputPath))
}
