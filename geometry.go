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
	"fmt"
	"iter"
	"slices"
)

// Geometry is the closed set of geometry variants over a point type P:
// Point, MultiPoint, LineString, MultiLineString, Polygon, MultiPolygon
// and Collection. Geometries are immutable value trees; algorithms borrow
// them read-only and transforms return new trees.
type Geometry[P any] interface {
	// Points yields every point in the geometry in storage order. The
	// sequence is finite and restartable.
	Points() iter.Seq[P]

	isGeometry()
}

// NumPoints returns the total number of points stored in g.
func NumPoints[P any](g Geometry[P]) int {
	n := 0
	for range g.Points() {
		n++
	}
	return n
}

// MultiPoint is an ordered collection of points.
type MultiPoint[P any] struct {
	points []P
}

// NewMultiPoint returns a multipoint over points. The slice is copied.
// An empty multipoint is valid.
func NewMultiPoint[P any](points []P) MultiPoint[P] {
	return MultiPoint[P]{points: slices.Clone(points)}
}

// Len returns the number of points.
func (m MultiPoint[P]) Len() int { return len(m.points) }

// At returns the i'th point.
func (m MultiPoint[P]) At(i int) P { return m.points[i] }

// Points yields the points in order.
func (m MultiPoint[P]) Points() iter.Seq[P] {
	return func(yield func(P) bool) {
		for _, p := range m.points {
			if !yield(p) {
				return
			}
		}
	}
}

func (MultiPoint[P]) isGeometry() {}

// LineString is an open path of two or more points.
type LineString[P any] struct {
	contour Contour[P]
}

// NewLineString returns a line string over points. It returns
// ErrDegenerate if fewer than 2 points are given.
func NewLineString[P any](points []P) (LineString[P], error) {
	c, err := NewContour(points)
	if err != nil {
		return LineString[P]{}, err
	}
	return LineString[P]{contour: c}, nil
}

// Contour returns the line string's underlying open contour.
func (l LineString[P]) Contour() Contour[P] { return l.contour }

// Len returns the number of points.
func (l LineString[P]) Len() int { return l.contour.Len() }

// Points yields the points in order.
func (l LineString[P]) Points() iter.Seq[P] { return l.contour.Points() }

func (LineString[P]) isGeometry() {}

// MultiLineString is an ordered collection of line strings.
type MultiLineString[P any] struct {
	lines []LineString[P]
}

// NewMultiLineString returns a multi line string over lines. The slice is
// copied.
func NewMultiLineString[P any](lines []LineString[P]) MultiLineString[P] {
	return MultiLineString[P]{lines: slices.Clone(lines)}
}

// Len returns the number of line strings.
func (m MultiLineString[P]) Len() int { return len(m.lines) }

// At returns the i'th line string.
func (m MultiLineString[P]) At(i int) LineString[P] { return m.lines[i] }

// Lines yields the member line strings in order.
func (m MultiLineString[P]) Lines() iter.Seq[LineString[P]] {
	return func(yield func(LineString[P]) bool) {
		for _, l := range m.lines {
			if !yield(l) {
				return
			}
		}
	}
}

// Points yields the points of every member line string in order.
func (m MultiLineString[P]) Points() iter.Seq[P] {
	return func(yield func(P) bool) {
		for _, l := range m.lines {
			for p := range l.Points() {
				if !yield(p) {
					return
				}
			}
		}
	}
}

func (MultiLineString[P]) isGeometry() {}

// Polygon is an areal region bounded by one exterior ring, minus zero or
// more interior rings (holes). Holes are assumed to lie inside the
// exterior and not intersect each other; this is a convention, not a
// construction-time check, and algorithms that rely on it say so.
type Polygon[P any] struct {
	exterior Contour[P]
	holes    []Contour[P]
}

// NewPolygon returns a polygon with the given exterior ring and holes.
// Each ring goes through NewRing validation, so any ring with fewer than
// 3 distinct points fails with ErrDegenerate.
func NewPolygon[P comparable](exterior []P, holes ...[]P) (Polygon[P], error) {
	ext, err := NewRing(exterior)
	if err != nil {
		return Polygon[P]{}, fmt.Errorf("exterior: %w", err)
	}
	hs := make([]Contour[P], len(holes))
	for i, h := range holes {
		hs[i], err = NewRing(h)
		if err != nil {
			return Polygon[P]{}, fmt.Errorf("hole %d: %w", i, err)
		}
	}
	return Polygon[P]{exterior: ext, holes: hs}, nil
}

// PolygonFromRings assembles a polygon from already-validated closed
// contours. It returns ErrDegenerate if any contour is not closed.
func PolygonFromRings[P any](exterior Contour[P], holes ...Contour[P]) (Polygon[P], error) {
	if !exterior.Closed() {
		return Polygon[P]{}, fmt.Errorf("exterior is not a ring: %w", ErrDegenerate)
	}
	for i, h := range holes {
		if !h.Closed() {
			return Polygon[P]{}, fmt.Errorf("hole %d is not a ring: %w", i, ErrDegenerate)
		}
	}
	return Polygon[P]{exterior: exterior, holes: slices.Clone(holes)}, nil
}

// Exterior returns the exterior ring.
func (p Polygon[P]) Exterior() Contour[P] { return p.exterior }

// NumHoles returns the number of interior rings.
func (p Polygon[P]) NumHoles() int { return len(p.holes) }

// Hole returns the i'th interior ring.
func (p Polygon[P]) Hole(i int) Contour[P] { return p.holes[i] }

// Rings yields the exterior ring followed by the holes in order.
func (p Polygon[P]) Rings() iter.Seq[Contour[P]] {
	return func(yield func(Contour[P]) bool) {
		if !yield(p.exterior) {
			return
		}
		for _, h := range p.holes {
			if !yield(h) {
				return
			}
		}
	}
}

// Points yields the points of the exterior ring and then of each hole.
func (p Polygon[P]) Points() iter.Seq[P] {
	return func(yield func(P) bool) {
		for r := range p.Rings() {
			for pt := range r.Points() {
				if !yield(pt) {
					return
				}
			}
		}
	}
}

func (Polygon[P]) isGeometry() {}

// MultiPolygon is an ordered collection of polygons.
type MultiPolygon[P any] struct {
	polygons []Polygon[P]
}

// NewMultiPolygon returns a multipolygon over polygons. The slice is
// copied.
func NewMultiPolygon[P any](polygons []Polygon[P]) MultiPolygon[P] {
	return MultiPolygon[P]{polygons: slices.Clone(polygons)}
}

// Len returns the number of polygons.
func (m MultiPolygon[P]) Len() int { return len(m.polygons) }

// At returns the i'th polygon.
func (m MultiPolygon[P]) At(i int) Polygon[P] { return m.polygons[i] }

// Polygons yields the member polygons in order.
func (m MultiPolygon[P]) Polygons() iter.Seq[Polygon[P]] {
	return func(yield func(Polygon[P]) bool) {
		for _, p := range m.polygons {
			if !yield(p) {
				return
			}
		}
	}
}

// Points yields the points of every member polygon in order.
func (m MultiPolygon[P]) Points() iter.Seq[P] {
	return func(yield func(P) bool) {
		for _, poly := range m.polygons {
			for p := range poly.Points() {
				if !yield(p) {
					return
				}
			}
		}
	}
}

func (MultiPolygon[P]) isGeometry() {}

// Collection is a heterogeneous ordered collection of geometries,
// including nested collections.
type Collection[P any] struct {
	geoms []Geometry[P]
}

// NewCollection returns a collection over geoms. The slice is copied.
func NewCollection[P any](geoms []Geometry[P]) Collection[P] {
	return Collection[P]{geoms: slices.Clone(geoms)}
}

// Len returns the number of member geometries.
func (c Collection[P]) Len() int { return len(c.geoms) }

// At returns the i'th member geometry.
func (c Collection[P]) At(i int) Geometry[P] { return c.geoms[i] }

// Geometries yields the member geometries in order.
func (c Collection[P]) Geometries() iter.Seq[Geometry[P]] {
	return func(yield func(Geometry[P]) bool) {
		for _, g := range c.geoms {
			if !yield(g) {
				return
			}
		}
	}
}

// Points yields the points of every member geometry in order.
func (c Collection[P]) Points() iter.Seq[P] {
	return func(yield func(P) bool) {
		for _, g := range c.geoms {
			for p := range g.Points() {
				if !yield(p) {
					return
				}
			}
		}
	}
}

func (Collection[P]) isGeometry() {}
