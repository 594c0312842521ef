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

/*
Package geomconv converts between crsgeom geometries and the types of
github.com/ctessum/geom.

ctessum/geom carries no CRS metadata, so conversions from it take the
reference system the caller knows the coordinates to be in, and
conversions to it drop the marker. Ring closure is canonicalized: rings
are emitted with the first point repeated at the end, as most consumers
of ctessum/geom expect, and a repeated closing point is dropped on the
way in.
*/
package geomconv

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/spatialmodel/crsgeom"
)

// FromGeom converts g into a crsgeom geometry whose points are tagged
// with crs. It returns crsgeom.ErrUnsupportedVariant for geom types
// outside the seven geometry variants, and construction errors
// (crsgeom.ErrDegenerate, crsgeom.ErrNonFinite) for invalid shapes.
func FromGeom[C crsgeom.CRS](g geom.Geom, crs C) (crsgeom.Geometry[crsgeom.Point[C]], error) {
	switch g := g.(type) {
	case geom.Point:
		p, err := crsgeom.NewPoint(crs, g.X, g.Y)
		if err != nil {
			return nil, err
		}
		return p, nil
	case geom.MultiPoint:
		pts, err := fromPoints(g, crs)
		if err != nil {
			return nil, err
		}
		return crsgeom.NewMultiPoint(pts), nil
	case geom.LineString:
		pts, err := fromPoints(g, crs)
		if err != nil {
			return nil, err
		}
		l, err := crsgeom.NewLineString(pts)
		if err != nil {
			return nil, err
		}
		return l, nil
	case geom.MultiLineString:
		lines := make([]crsgeom.LineString[crsgeom.Point[C]], len(g))
		for i, l := range g {
			pts, err := fromPoints(l, crs)
			if err != nil {
				return nil, err
			}
			lines[i], err = crsgeom.NewLineString(pts)
			if err != nil {
				return nil, err
			}
		}
		return crsgeom.NewMultiLineString(lines), nil
	case geom.Polygon:
		p, err := fromPolygon(g, crs)
		if err != nil {
			return nil, err
		}
		return p, nil
	case geom.MultiPolygon:
		polys := make([]crsgeom.Polygon[crsgeom.Point[C]], len(g))
		for i, p := range g {
			q, err := fromPolygon(p, crs)
			if err != nil {
				return nil, err
			}
			polys[i] = q
		}
		return crsgeom.NewMultiPolygon(polys), nil
	case geom.GeometryCollection:
		geoms := make([]crsgeom.Geometry[crsgeom.Point[C]], len(g))
		for i, m := range g {
			q, err := FromGeom(m, crs)
			if err != nil {
				return nil, err
			}
			geoms[i] = q
		}
		return crsgeom.NewCollection(geoms), nil
	default:
		return nil, fmt.Errorf("geomconv: %T: %w", g, crsgeom.ErrUnsupportedVariant)
	}
}

// ToGeom converts g into the corresponding ctessum/geom type, dropping
// CRS metadata. Rings are emitted closed.
func ToGeom[C crsgeom.CRS](g crsgeom.Geometry[crsgeom.Point[C]]) (geom.Geom, error) {
	switch g := g.(type) {
	case crsgeom.Point[C]:
		return geom.Point{X: g.X(), Y: g.Y()}, nil
	case crsgeom.MultiPoint[crsgeom.Point[C]]:
		return geom.MultiPoint(toPoints(g.Points(), g.Len())), nil
	case crsgeom.LineString[crsgeom.Point[C]]:
		return geom.LineString(toPoints(g.Points(), g.Len())), nil
	case crsgeom.MultiLineString[crsgeom.Point[C]]:
		out := make(geom.MultiLineString, 0, g.Len())
		for l := range g.Lines() {
			out = append(out, geom.LineString(toPoints(l.Points(), l.Len())))
		}
		return out, nil
	case crsgeom.Polygon[crsgeom.Point[C]]:
		return toPolygon(g), nil
	case crsgeom.MultiPolygon[crsgeom.Point[C]]:
		out := make(geom.MultiPolygon, 0, g.Len())
		for p := range g.Polygons() {
			out = append(out, toPolygon(p))
		}
		return out, nil
	case crsgeom.Collection[crsgeom.Point[C]]:
		out := make(geom.GeometryCollection, 0, g.Len())
		for m := range g.Geometries() {
			q, err := ToGeom(m)
			if err != nil {
				return nil, err
			}
			out = append(out, q)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("geomconv: %T: %w", g, crsgeom.ErrUnsupportedVariant)
	}
}

func fromPoints[C crsgeom.CRS](pts []geom.Point, crs C) ([]crsgeom.Point[C], error) {
	out := make([]crsgeom.Point[C], len(pts))
	for i, p := range pts {
		q, err := crsgeom.NewPoint(crs, p.X, p.Y)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}

func fromPolygon[C crsgeom.CRS](p geom.Polygon, crs C) (crsgeom.Polygon[crsgeom.Point[C]], error) {
	var zero crsgeom.Polygon[crsgeom.Point[C]]
	if len(p) == 0 {
		return zero, fmt.Errorf("geomconv: polygon with no rings: %w", crsgeom.ErrDegenerate)
	}
	rings := make([]crsgeom.Contour[crsgeom.Point[C]], len(p))
	for i, r := range p {
		pts, err := fromPoints(r, crs)
		if err != nil {
			return zero, err
		}
		// NewRing drops a repeated closing point.
		rings[i], err = crsgeom.NewRing(pts)
		if err != nil {
			return zero, fmt.Errorf("geomconv: ring %d: %w", i, err)
		}
	}
	return crsgeom.PolygonFromRings(rings[0], rings[1:]...)
}

func toPoints[C crsgeom.CRS](pts func(yield func(crsgeom.Point[C]) bool), n int) []geom.Point {
	out := make([]geom.Point, 0, n)
	for p := range pts {
		out = append(out, geom.Point{X: p.X(), Y: p.Y()})
	}
	return out
}

func toRing[C crsgeom.CRS](r crsgeom.Contour[crsgeom.Point[C]]) []geom.Point {
	out := toPoints(r.PointsClosing(), r.Len()+1)
	return out
}

func toPolygon[C crsgeom.CRS](p crsgeom.Polygon[crsgeom.Point[C]]) geom.Polygon {
	out := make(geom.Polygon, 0, p.NumHoles()+1)
	for r := range p.Rings() {
		out = append(out, toRing(r))
	}
	return out
}
