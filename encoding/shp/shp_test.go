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

package shp

import (
	"errors"
	"testing"

	goshp "github.com/jonas-p/go-shp"

	"github.com/spatialmodel/crsgeom"
)

func projPoints(crs crsgeom.Projected, xy ...float64) []crsgeom.Point[crsgeom.Projected] {
	pts := make([]crsgeom.Point[crsgeom.Projected], len(xy)/2)
	for i := range pts {
		pts[i] = crsgeom.MustPoint(crs, xy[2*i], xy[2*i+1])
	}
	return pts
}

func TestFromShapePolygon(t *testing.T) {
	// Exterior followed by a hole, both explicitly closed, as a
	// two-part shapefile polygon.
	s := &goshp.Polygon{
		NumParts:  2,
		NumPoints: 10,
		Parts:     []int32{0, 5},
		Points: []goshp.Point{
			{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0},
			{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 1},
		},
	}
	crs := crsgeom.NewProjected("+proj=utm +zone=15")
	g, err := FromShape(s, crs)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := g.(crsgeom.Polygon[crsgeom.Point[crsgeom.Projected]])
	if !ok {
		t.Fatalf("want a polygon but have %T", g)
	}
	if p.Exterior().Len() != 4 {
		t.Errorf("want 4 exterior points but have %d", p.Exterior().Len())
	}
	if p.NumHoles() != 1 || p.Hole(0).Len() != 4 {
		t.Errorf("want 1 hole with 4 points")
	}
}

func TestToShapePolygon(t *testing.T) {
	crs := crsgeom.NewProjected("+proj=utm +zone=15")
	p, err := crsgeom.NewPolygon(
		projPoints(crs, 0, 0, 4, 0, 4, 4, 0, 4),
		projPoints(crs, 1, 1, 1, 2, 2, 2, 2, 1))
	if err != nil {
		t.Fatal(err)
	}
	s, err := ToShape[crsgeom.Projected](p)
	if err != nil {
		t.Fatal(err)
	}
	poly, ok := s.(*goshp.Polygon)
	if !ok {
		t.Fatalf("want *goshp.Polygon but have %T", s)
	}
	if poly.NumParts != 2 {
		t.Fatalf("want 2 parts but have %d", poly.NumParts)
	}
	// Each ring is written closed: 4 points plus the closing one.
	if poly.NumPoints != 10 {
		t.Errorf("want 10 points but have %d", poly.NumPoints)
	}
	if poly.Points[0] != poly.Points[4] {
		t.Error("exterior should end where it starts")
	}
	if poly.Box.MinX != 0 || poly.Box.MaxX != 4 {
		t.Errorf("want box x [0, 4] but have [%g, %g]", poly.Box.MinX, poly.Box.MaxX)
	}
}

func TestPolyLineRoundTrip(t *testing.T) {
	crs := crsgeom.NewProjected("+proj=utm +zone=15")
	a, err := crsgeom.NewLineString(projPoints(crs, 0, 0, 1, 1, 2, 0))
	if err != nil {
		t.Fatal(err)
	}
	b, err := crsgeom.NewLineString(projPoints(crs, 5, 5, 6, 6))
	if err != nil {
		t.Fatal(err)
	}
	m := crsgeom.NewMultiLineString([]crsgeom.LineString[crsgeom.Point[crsgeom.Projected]]{a, b})

	s, err := ToShape[crsgeom.Projected](m)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromShape(s, crs)
	if err != nil {
		t.Fatal(err)
	}
	m2, ok := back.(crsgeom.MultiLineString[crsgeom.Point[crsgeom.Projected]])
	if !ok {
		t.Fatalf("want a multiline but have %T", back)
	}
	if m2.Len() != 2 {
		t.Fatalf("want 2 lines but have %d", m2.Len())
	}
	if m2.At(0).Len() != 3 || m2.At(1).Len() != 2 {
		t.Errorf("part lengths changed: %d, %d", m2.At(0).Len(), m2.At(1).Len())
	}
	if !crsgeom.Similar[crsgeom.Projected](m, m2, 0) {
		t.Error("round trip changed the lines")
	}
}

func TestSinglePartPolyLineIsLineString(t *testing.T) {
	s := &goshp.PolyLine{
		NumParts:  1,
		NumPoints: 2,
		Parts:     []int32{0},
		Points:    []goshp.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
	}
	crs := crsgeom.NewProjected("+proj=utm +zone=15")
	g, err := FromShape(s, crs)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(crsgeom.LineString[crsgeom.Point[crsgeom.Projected]]); !ok {
		t.Errorf("want a line but have %T", g)
	}
}

func TestUnsupported(t *testing.T) {
	crs := crsgeom.NewProjected("+proj=utm +zone=15")
	p1, err := crsgeom.NewPolygon(projPoints(crs, 0, 0, 1, 0, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	m := crsgeom.NewMultiPolygon([]crsgeom.Polygon[crsgeom.Point[crsgeom.Projected]]{p1})
	if _, err := ToShape[crsgeom.Projected](m); !errors.Is(err, crsgeom.ErrUnsupportedVariant) {
		t.Errorf("want ErrUnsupportedVariant but have %v", err)
	}
}
