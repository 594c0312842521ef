/*
Copyright © 2018 the crsgeom authors.
This file is part of crsgeom.

crsgeom is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

crsgeom is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with crsgeom.  If not, see <http://www.gnu.org/licenses/>.
*/

package randgeom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spatialmodel/crsgeom"
)

var testExtent = Extent{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10}

func TestDeterminism(t *testing.T) {
	a := Point(New(42), crsgeom.Planar{}, testExtent)
	b := Point(New(42), crsgeom.Planar{}, testExtent)
	if !a.Equals(b) {
		t.Errorf("equal seeds should generate equal points: %v != %v", a, b)
	}
	c := Point(New(43), crsgeom.Planar{}, testExtent)
	if a.Equals(c) {
		t.Error("different seeds should generate different points")
	}
}

func TestPointInExtent(t *testing.T) {
	g := New(1)
	for i := 0; i < 100; i++ {
		p := Point(g, crsgeom.Planar{}, testExtent)
		if p.X() < testExtent.MinX || p.X() > testExtent.MaxX ||
			p.Y() < testExtent.MinY || p.Y() > testExtent.MaxY {
			t.Fatalf("point %v outside the extent", p)
		}
	}
}

func TestRing(t *testing.T) {
	g := New(7)
	for i := 0; i < 20; i++ {
		r, err := Ring(g, crsgeom.Planar{}, testExtent, 8)
		if err != nil {
			t.Fatal(err)
		}
		if !r.Closed() {
			t.Fatal("rings should be closed")
		}
		if r.Len() != 8 {
			t.Fatalf("want 8 points but have %d", r.Len())
		}
		w, err := crsgeom.RingWinding(r)
		if err != nil {
			t.Fatal(err)
		}
		if w != crsgeom.CounterClockwise {
			t.Fatal("rings should be counter-clockwise")
		}
	}
}

func TestPolygon(t *testing.T) {
	p, err := Polygon(New(9), crsgeom.Planar{}, testExtent, 6, 2)
	if err != nil {
		t.Fatal(err)
	}
	if p.NumHoles() != 2 {
		t.Fatalf("want 2 holes but have %d", p.NumHoles())
	}
	for i := 0; i < p.NumHoles(); i++ {
		w, err := crsgeom.RingWinding(p.Hole(i))
		if err != nil {
			t.Fatal(err)
		}
		if w != crsgeom.Clockwise {
			t.Errorf("hole %d should be clockwise", i)
		}
	}
}

func TestGeometryVariants(t *testing.T) {
	g := New(3)
	for _, variant := range []string{
		"point", "multipoint", "linestring", "multilinestring",
		"polygon", "multipolygon", "collection",
	} {
		if _, err := Geometry(g, crsgeom.Planar{}, testExtent, variant, 5, 1); err != nil {
			t.Errorf("%s: %v", variant, err)
		}
	}
	if _, err := Geometry(g, crsgeom.Planar{}, testExtent, "blob", 5, 1); err == nil {
		t.Error("unknown variants should fail")
	}
}

func TestScenario(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scenario.toml")
	content := `
variant = "polygon"
count = 3
seed = 42
ringPoints = 5
holes = 1

[extent]
minX = -5.0
minY = -5.0
maxX = 5.0
maxY = 5.0
`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScenario(file)
	if err != nil {
		t.Fatal(err)
	}
	if s.Variant != "polygon" || s.Count != 3 || s.Seed != 42 {
		t.Errorf("scenario not parsed: %+v", s)
	}
	if s.Extent.MaxX != 5 {
		t.Errorf("extent not parsed: %+v", s.Extent)
	}

	geoms, err := Run(s, crsgeom.Geodetic{})
	if err != nil {
		t.Fatal(err)
	}
	if len(geoms) != 3 {
		t.Fatalf("want 3 geometries but have %d", len(geoms))
	}

	// The same scenario generates the same geometry.
	again, err := Run(s, crsgeom.Geodetic{})
	if err != nil {
		t.Fatal(err)
	}
	for i := range geoms {
		if !crsgeom.Similar[crsgeom.Geodetic](geoms[i], again[i], 0) {
			t.Errorf("geometry %d differs between runs", i)
		}
	}
}
