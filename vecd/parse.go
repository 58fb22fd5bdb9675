package vecd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseVector parses a comma-separated list of coordinates, e.g. "1,2.5,-3".
//
// Whitespace around each coordinate is ignored.
func ParseVector(s string) (Vector[float64], error) {
	parts := strings.Split(s, ",")
	res := make(Vector[float64], len(parts))
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse vector %q", s)
		}
		res[i] = x
	}
	return res, nil
}

// ParseVec3 parses a comma-separated list of exactly three coordinates.
func ParseVec3(s string) (Vec3[float64], error) {
	v, err := ParseVector(s)
	if err != nil {
		return Vec3[float64]{}, err
	}
	if v.Dim() != 3 {
		return Vec3[float64]{}, errors.Errorf(
			"parse vector %q: expected 3 coordinates but got %d", s, v.Dim(),
		)
	}
	return Vec3FromVector(v), nil
}
