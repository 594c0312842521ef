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

	"github.com/spatialmodel/crsgeom/planar"
)

// Intersects reports whether a and b share at least one point. Disjoint
// bounding rectangles reject immediately; otherwise contour edges are
// tested pairwise for exact segment intersection, and polygon containment
// covers the no-edge-crossing case. Empty geometries intersect nothing.
// The test runs on raw coordinates for every CRS family.
func Intersects[C CRS](a, b Geometry[Point[C]]) (bool, error) {
	ba, err := BoundsOf(a)
	if errors.Is(err, ErrEmptyGeometry) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	bb, err := BoundsOf(b)
	if errors.Is(err, ErrEmptyGeometry) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if err := sameRef(ba.Min, bb.Min); err != nil {
		return false, err
	}
	if !ba.Overlaps(bb) {
		return false, nil
	}

	da := decompose(a)
	db := decompose(b)

	// Edge-to-edge crossings.
	for _, ca := range da.contours {
		for _, cb := range db.contours {
			if contoursIntersect(ca, cb) {
				return true, nil
			}
		}
	}

	// Bare points against the other side's points, edges and areas.
	ok, err := pointsTouch(da.points, db)
	if ok || err != nil {
		return ok, err
	}
	ok, err = pointsTouch(db.points, da)
	if ok || err != nil {
		return ok, err
	}

	// Containment with no edge crossing: one side entirely inside an
	// areal part of the other. A single representative point decides.
	ok, err = containsAny(da.polygons, db)
	if ok || err != nil {
		return ok, err
	}
	return containsAny(db.polygons, da)
}

// decomposed is a geometry flattened into testable primitives. Polygon
// rings appear both as contours (for edge tests) and through polygons
// (for containment tests).
type decomposed[C CRS] struct {
	points   []Point[C]
	contours []Contour[Point[C]]
	polygons []Polygon[Point[C]]
}

func decompose[C CRS](g Geometry[Point[C]]) decomposed[C] {
	var d decomposed[C]
	d.add(g)
	return d
}

func (d *decomposed[C]) add(g Geometry[Point[C]]) {
	switch g := g.(type) {
	case Point[C]:
		d.points = append(d.points, g)
	case MultiPoint[Point[C]]:
		for p := range g.Points() {
			d.points = append(d.points, p)
		}
	case LineString[Point[C]]:
		d.contours = append(d.contours, g.Contour())
	case MultiLineString[Point[C]]:
		for l := range g.Lines() {
			d.contours = append(d.contours, l.Contour())
		}
	case Polygon[Point[C]]:
		d.polygons = append(d.polygons, g)
		for r := range g.Rings() {
			d.contours = append(d.contours, r)
		}
	case MultiPolygon[Point[C]]:
		for p := range g.Polygons() {
			d.add(p)
		}
	case Collection[Point[C]]:
		for m := range g.Geometries() {
			d.add(m)
		}
	}
}

func contoursIntersect[C CRS](a, b Contour[Point[C]]) bool {
	for sa := range a.Segments() {
		for sb := range b.Segments() {
			if planar.SegmentsIntersect[float64](sa.A, sa.B, sb.A, sb.B) {
				return true
			}
		}
	}
	return false
}

func pointsTouch[C CRS](pts []Point[C], d decomposed[C]) (bool, error) {
	for _, p := range pts {
		for _, q := range d.points {
			if p.x == q.x && p.y == q.y {
				return true, nil
			}
		}
		for _, c := range d.contours {
			for s := range c.Segments() {
				if planar.PointOnSegment[float64](p, s.A, s.B) {
					return true, nil
				}
			}
		}
		for _, poly := range d.polygons {
			w, err := Within(p, poly)
			if err != nil {
				return false, err
			}
			if w != Outside {
				return true, nil
			}
		}
	}
	return false, nil
}

// containsAny reports whether any polygon of polys contains a
// representative point of d. Edge crossings are already excluded when
// this runs, so one point per primitive is enough.
func containsAny[C CRS](polys []Polygon[Point[C]], d decomposed[C]) (bool, error) {
	for _, poly := range polys {
		for _, c := range d.contours {
			if c.Len() == 0 {
				continue
			}
			w, err := Within(c.At(0), poly)
			if err != nil {
				return false, err
			}
			if w != Outside {
				return true, nil
			}
		}
	}
	return false, nil
}
