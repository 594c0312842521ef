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
	"errors"
	"fmt"
	"testing"
)

func scalePlanar(factor float64) func(Point[Planar]) (Point[Planar], error) {
	return func(p Point[Planar]) (Point[Planar], error) {
		return NewPoint(Planar{}, p.X()*factor, p.Y()*factor)
	}
}

func TestMapContour(t *testing.T) {
	r := squareRing(t)
	out, err := MapContour(r, scalePlanar(2))
	if err != nil {
		t.Fatal(err)
	}
	if !out.Closed() {
		t.Error("mapping should preserve closedness")
	}
	if out.Len() != r.Len() {
		t.Errorf("want %d points but have %d", r.Len(), out.Len())
	}
	if out.At(1).X() != 4 {
		t.Errorf("want 4 but have %g", out.At(1).X())
	}
}

func TestMapContourCollapse(t *testing.T) {
	// A transform that collapses distinct points onto each other must
	// not change the point count: structure is preserved verbatim,
	// with no re-validation of ring distinctness.
	r := squareRing(t)
	collapse := func(p Point[Planar]) (Point[Planar], error) {
		return NewPoint(Planar{}, 0, 0)
	}
	out, err := MapContour(r, collapse)
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != r.Len() {
		t.Errorf("want %d points but have %d", r.Len(), out.Len())
	}
}

func TestMapGeometry(t *testing.T) {
	poly, err := NewPolygon(
		planarPoints(0, 0, 4, 0, 4, 4, 0, 4),
		planarPoints(1, 1, 1, 2, 2, 2, 2, 1))
	if err != nil {
		t.Fatal(err)
	}
	out, err := MapGeometry[Planar, Planar](poly, scalePlanar(0.5))
	if err != nil {
		t.Fatal(err)
	}
	q, ok := out.(Polygon[Point[Planar]])
	if !ok {
		t.Fatalf("want a polygon but have %T", out)
	}
	if q.NumHoles() != 1 {
		t.Fatalf("want 1 hole but have %d", q.NumHoles())
	}
	if q.Hole(0).Len() != poly.Hole(0).Len() {
		t.Errorf("hole point count changed: %d != %d", poly.Hole(0).Len(), q.Hole(0).Len())
	}
	a, err := PolygonArea(q)
	if err != nil {
		t.Fatal(err)
	}
	if a != 15.0/4 {
		t.Errorf("want 3.75 but have %g", a)
	}
}

func TestMapGeometryAllOrNothing(t *testing.T) {
	// If any point fails to transform, the whole geometry fails.
	l, err := NewLineString(planarPoints(0, 0, 1, 1, 2, 2))
	if err != nil {
		t.Fatal(err)
	}
	failAt := func(p Point[Planar]) (Point[Planar], error) {
		if p.X() == 1 {
			return Point[Planar]{}, fmt.Errorf("unlucky point: %w", ErrOutOfDomain)
		}
		return p, nil
	}
	if _, err := MapGeometry[Planar, Planar](l, failAt); !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("want ErrOutOfDomain but have %v", err)
	}
}

func TestMapGeometryCollection(t *testing.T) {
	poly := mustPolygon(t, 0, 0, 2, 0, 2, 2, 0, 2)
	c := NewCollection([]Geometry[Point[Planar]]{
		MustPoint(Planar{}, 1, 1),
		poly,
	})
	out, err := MapGeometry[Planar, Planar](c, scalePlanar(3))
	if err != nil {
		t.Fatal(err)
	}
	q, ok := out.(Collection[Point[Planar]])
	if !ok {
		t.Fatalf("want a collection but have %T", out)
	}
	if q.Len() != 2 {
		t.Fatalf("want 2 geometries but have %d", q.Len())
	}
	p, ok := q.At(0).(Point[Planar])
	if !ok {
		t.Fatalf("want a point but have %T", q.At(0))
	}
	if p.X() != 3 || p.Y() != 3 {
		t.Errorf("want (3, 3) but have (%g, %g)", p.X(), p.Y())
	}
}
