package mesh_test

import (
	"testing"

	"github.com/vecscan/vecscan/fixed"
	"github.com/vecscan/vecscan/mesh"
)

func TestBounds(t *testing.T) {
	m := mesh.Mesh{{
		fixed.Pt3(fixed.Int16_16U(0), fixed.Int16_16U(0), fixed.Int16_16U(0)),
		fixed.Pt3(fixed.Int16_16U(10), fixed.Int16_16U(0), fixed.Int16_16U(-2)),
		fixed.Pt3(fixed.Int16_16U(0), fixed.Int16_16U(10), fixed.Int16_16U(5)),
	}}
	min, max, ok := m.Bounds()
	if !ok {
		t.Fatal("Bounds not ok")
	}
	wantMin := fixed.Pt3(fixed.Int16_16U(0), fixed.Int16_16U(0), fixed.Int16_16U(-2))
	wantMax := fixed.Pt3(fixed.Int16_16U(10), fixed.Int16_16U(10), fixed.Int16_16U(5))
	if min != wantMin || max != wantMax {
		t.Errorf("Bounds = %+v, %+v", min, max)
	}
}

func TestBoundsEmpty(t *testing.T) {
	var m mesh.Mesh
	if _, _, ok := m.Bounds(); ok {
		t.Error("empty mesh reported bounds")
	}
}

func TestBoundsModels(t *testing.T) {
	one := fixed.Int16_16U(1)
	for _, tc := range []struct {
		name string
		m    mesh.Mesh
	}{
		{"cube", mesh.Cube()},
		{"tetra", mesh.Tetra()},
		{"octa", mesh.Octa()},
	} {
		min, max, ok := tc.m.Bounds()
		if !ok {
			t.Fatalf("%s: no bounds", tc.name)
		}
		if min != fixed.Pt3(-one, -one, -one) || max != fixed.Pt3(one, one, one) {
			t.Errorf("%s: bounds = %+v, %+v", tc.name, min, max)
		}
	}
}

func TestCentroid(t *testing.T) {
	tri := mesh.Triangle{
		fixed.Pt3(fixed.Int16_16U(0), fixed.Int16_16U(0), fixed.Int16_16U(3)),
		fixed.Pt3(fixed.Int16_16U(3), fixed.Int16_16U(0), fixed.Int16_16U(3)),
		fixed.Pt3(fixed.Int16_16U(0), fixed.Int16_16U(3), fixed.Int16_16U(3)),
	}
	want := fixed.Pt3(fixed.Int16_16U(1), fixed.Int16_16U(1), fixed.Int16_16U(3))
	if got := tri.Centroid(); got != want {
		t.Errorf("Centroid = %+v, want %+v", got, want)
	}
}

func TestCopyIndependent(t *testing.T) {
	src := mesh.Cube()
	cp := src.Copy()
	cp[0][0].X = 0
	if src[0][0].X == 0 {
		t.Error("Copy aliases source")
	}
}

func TestCopyInto(t *testing.T) {
	src := mesh.Tetra()
	scratch := make(mesh.Mesh, 0, len(src))
	got := src.CopyInto(scratch)
	if len(got) != len(src) {
		t.Fatalf("len = %d", len(got))
	}
	if &got[0] != &scratch[:1][0] {
		t.Error("CopyInto did not reuse backing array")
	}

	allocs := testing.AllocsPerRun(10, func() {
		got = src.CopyInto(got)
	})
	if allocs != 0 {
		t.Errorf("CopyInto allocated %v times", allocs)
	}
}
