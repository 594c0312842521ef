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

import "fmt"

// MapContour applies f to every point of c, preserving point count,
// order and the open/closed flag exactly. The first error aborts the
// whole mapping.
func MapContour[P, Q any](c Contour[P], f func(P) (Q, error)) (Contour[Q], error) {
	pts := make([]Q, len(c.points))
	for i, p := range c.points {
		q, err := f(p)
		if err != nil {
			return Contour[Q]{}, err
		}
		pts[i] = q
	}
	return Contour[Q]{points: pts, closed: c.closed}, nil
}

// MapPolygon applies f to every point of p, preserving ring structure
// and hole order exactly.
func MapPolygon[P, Q any](p Polygon[P], f func(P) (Q, error)) (Polygon[Q], error) {
	ext, err := MapContour(p.exterior, f)
	if err != nil {
		return Polygon[Q]{}, err
	}
	holes := make([]Contour[Q], len(p.holes))
	for i, h := range p.holes {
		holes[i], err = MapContour(h, f)
		if err != nil {
			return Polygon[Q]{}, err
		}
	}
	return Polygon[Q]{exterior: ext, holes: holes}, nil
}

// MapGeometry rewrites a geometry tree over CRS S into the same tree
// shape over CRS D by applying f to every point. Variant shape, point
// and contour counts, ordering, hole nesting and ring closure are
// preserved verbatim. The mapping is all-or-nothing: the first point
// error aborts it with no partial result.
func MapGeometry[S, D CRS](g Geometry[Point[S]], f func(Point[S]) (Point[D], error)) (Geometry[Point[D]], error) {
	switch g := g.(type) {
	case Point[S]:
		return mapApply(g, f)
	case MultiPoint[Point[S]]:
		pts := make([]Point[D], len(g.points))
		for i, p := range g.points {
			q, err := f(p)
			if err != nil {
				return nil, err
			}
			pts[i] = q
		}
		return MultiPoint[Point[D]]{points: pts}, nil
	case LineString[Point[S]]:
		c, err := MapContour(g.contour, f)
		if err != nil {
			return nil, err
		}
		return LineString[Point[D]]{contour: c}, nil
	case MultiLineString[Point[S]]:
		lines := make([]LineString[Point[D]], len(g.lines))
		for i, l := range g.lines {
			c, err := MapContour(l.contour, f)
			if err != nil {
				return nil, err
			}
			lines[i] = LineString[Point[D]]{contour: c}
		}
		return MultiLineString[Point[D]]{lines: lines}, nil
	case Polygon[Point[S]]:
		q, err := MapPolygon(g, f)
		if err != nil {
			return nil, err
		}
		return q, nil
	case MultiPolygon[Point[S]]:
		polys := make([]Polygon[Point[D]], len(g.polygons))
		for i, p := range g.polygons {
			q, err := MapPolygon(p, f)
			if err != nil {
				return nil, err
			}
			polys[i] = q
		}
		return MultiPolygon[Point[D]]{polygons: polys}, nil
	case Collection[Point[S]]:
		geoms := make([]Geometry[Point[D]], len(g.geoms))
		for i, m := range g.geoms {
			q, err := MapGeometry(m, f)
			if err != nil {
				return nil, err
			}
			geoms[i] = q
		}
		return Collection[Point[D]]{geoms: geoms}, nil
	default:
		return nil, fmt.Errorf("map %T: %w", g, ErrUnsupportedVariant)
	}
}

func mapApply[S, D CRS](p Point[S], f func(Point[S]) (Point[D], error)) (Geometry[Point[D]], error) {
	q, err := f(p)
	if err != nil {
		return nil, err
	}
	return q, nil
}
