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

package crsgeom

import (
	"math"
	"testing"
)

func TestContourLength(t *testing.T) {
	// An open polyline does not include a closing edge; a ring does.
	open, err := NewContour(planarPoints(0, 0, 2, 0, 2, 2, 0, 2))
	if err != nil {
		t.Fatal(err)
	}
	d, err := ContourLength(open)
	if err != nil {
		t.Fatal(err)
	}
	if d != 6 {
		t.Errorf("open: want 6 but have %g", d)
	}

	ring := squareRing(t)
	d, err = ContourLength(ring)
	if err != nil {
		t.Fatal(err)
	}
	if d != 8 {
		t.Errorf("ring: want 8 but have %g", d)
	}
}

func TestLength(t *testing.T) {
	l, err := NewLineString(planarPoints(0, 0, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	d, err := Length[Planar](l)
	if err != nil {
		t.Fatal(err)
	}
	if d != 5 {
		t.Errorf("line: want 5 but have %g", d)
	}

	// The length of a polygon is its perimeter.
	poly := mustPolygon(t, 0, 0, 2, 0, 2, 2, 0, 2)
	d, err = Length[Planar](poly)
	if err != nil {
		t.Fatal(err)
	}
	if d != 8 {
		t.Errorf("polygon: want 8 but have %g", d)
	}

	// A point has no length.
	d, err = Length[Planar](MustPoint(Planar{}, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("point: want 0 but have %g", d)
	}
}

func TestPerimeterWithHole(t *testing.T) {
	poly, err := NewPolygon(
		planarPoints(0, 0, 4, 0, 4, 4, 0, 4),
		planarPoints(1, 1, 1, 2, 2, 2, 2, 1))
	if err != nil {
		t.Fatal(err)
	}
	d, err := Perimeter(poly)
	if err != nil {
		t.Fatal(err)
	}
	if d != 20 {
		t.Errorf("want 20 but have %g", d)
	}
}

func TestContourLengthGeodetic(t *testing.T) {
	// A path up a meridian from the equator to the pole.
	pts := []Point[Geodetic]{
		MustPoint(Geodetic{}, 0, 0),
		MustPoint(Geodetic{}, 0, 45),
		MustPoint(Geodetic{}, 0, 90),
	}
	c, err := NewContour(pts)
	if err != nil {
		t.Fatal(err)
	}
	d, err := ContourLength(c)
	if err != nil {
		t.Fatal(err)
	}
	want := 2 * math.Pi * 6371008.8 / 4
	if math.Abs(d-want)/want > 1e-9 {
		t.Errorf("want %g but have %g", want, d)
	}
}
