package vecd

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseVector(t *testing.T) {
	v, err := ParseVector("1,2.5,-3")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v, NewVector(1.0, 2.5, -3.0)) {
		t.Errorf("unexpected vector %v", v)
	}

	v, err = ParseVector(" 4, 3 ")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v, NewVector(4.0, 3.0)) {
		t.Errorf("unexpected vector %v", v)
	}

	for _, bad := range []string{"", "1,x,3", "1,,3"} {
		if _, err := ParseVector(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseVec3(t *testing.T) {
	v, err := ParseVec3("1,2,3")
	if err != nil {
		t.Fatal(err)
	}
	if v != XYZ(1.0, 2.0, 3.0) {
		t.Errorf("unexpected vector %v", v)
	}

	_, err = ParseVec3("1,2")
	if err == nil {
		t.Fatal("expected error for 2 coordinates")
	}
	if !strings.Contains(err.Error(), "expected 3 coordinates") {
		t.Errorf("unexpected error message: %s", err)
	}
}
