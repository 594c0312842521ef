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

import "testing"

func TestSimilar(t *testing.T) {
	a := mustPolygon(t, 0, 0, 2, 0, 2, 2, 0, 2)
	b := mustPolygon(t, 1e-10, 0, 2, 0, 2, 2, 0, 2)

	if !Similar[Planar](a, b, 1e-9) {
		t.Error("polygons within tolerance should be similar")
	}
	if Similar[Planar](a, b, 1e-11) {
		t.Error("polygons beyond tolerance should not be similar")
	}
	if !Similar[Planar](a, a, 0) {
		t.Error("a geometry is similar to itself at zero tolerance")
	}

	// Different variants are never similar.
	l, err := NewLineString(planarPoints(0, 0, 2, 0))
	if err != nil {
		t.Fatal(err)
	}
	if Similar[Planar](a, l, 1) {
		t.Error("a polygon is not similar to a line")
	}

	// Different point counts are never similar.
	c := mustPolygon(t, 0, 0, 2, 0, 2, 2, 1, 3, 0, 2)
	if Similar[Planar](a, c, 1000) {
		t.Error("polygons with different point counts are not similar")
	}
}

func TestSimilarPoints(t *testing.T) {
	p := MustPoint(Geodetic{}, 10, 20)
	q := MustPoint(Geodetic{}, 10.0000001, 20)
	if !Similar[Geodetic](p, q, 1e-6) {
		t.Error("nearby points should be similar")
	}
	if Similar[Geodetic](p, q, 1e-9) {
		t.Error("tolerance should bound the difference")
	}
}
