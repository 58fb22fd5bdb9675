package vecd

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteVectors serializes a list of same-dimension vectors in a 32-bit
// precision binary format.
//
// Panics if the vectors do not all have the same dimension.
func WriteVectors(w io.Writer, vs []Vector[float64]) error {
	var dim int
	if len(vs) > 0 {
		dim = vs[0].Dim()
		for _, v := range vs {
			if v.Dim() != dim {
				panic("dimension mismatch")
			}
		}
	}
	header := [2]uint32{uint32(len(vs)), uint32(dim)}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return errors.Wrap(err, "write vectors")
	}
	values := make([]float32, 0, len(vs)*dim)
	for _, v := range vs {
		for _, x := range v {
			values = append(values, float32(x))
		}
	}
	if err := binary.Write(w, binary.LittleEndian, values); err != nil {
		return errors.Wrap(err, "write vectors")
	}
	return nil
}

// ReadVectors reads the output written by WriteVectors.
func ReadVectors(r io.Reader) ([]Vector[float64], error) {
	var header [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "read vectors")
	}
	count, dim := int(header[0]), int(header[1])
	if count > 0 && dim == 0 {
		return nil, errors.New("read vectors: zero dimension")
	}
	values := make([]float32, count*dim)
	if err := binary.Read(r, binary.LittleEndian, values); err != nil {
		return nil, errors.Wrap(err, "read vectors")
	}
	res := make([]Vector[float64], count)
	for i := range res {
		v := make(Vector[float64], dim)
		for j := range v {
			v[j] = float64(values[i*dim+j])
		}
		res[i] = v
	}
	return res, nil
}

// Save writes a value to a file using the given serializer.
func Save[T any](path string, value T, f func(io.Writer, T) error) error {
	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save "+path)
	}
	if err := f(w, value); err != nil {
		w.Close()
		return errors.Wrap(err, "save "+path)
	}
	return errors.Wrap(w.Close(), "save "+path)
}

// Load reads a value from a file using the given deserializer.
func Load[T any](path string, f func(io.Reader) (T, error)) (T, error) {
	r, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "load "+path)
	}
	defer r.Close()
	value, err := f(r)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "load "+path)
	}
	return value, nil
}
