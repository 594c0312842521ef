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

	"github.com/spatialmodel/crsgeom/geodetic"
	"github.com/spatialmodel/crsgeom/planar"
)

// Distance returns the distance between a and b: Euclidean for Planar and
// Projected coordinates, great-circle (haversine) in meters for Geodetic
// ones. It returns ErrCRSMismatch for projected points with different
// reference strings. Distance is exactly symmetric in its arguments.
func Distance[C CRS](a, b Point[C]) (float64, error) {
	if err := sameRef(a, b); err != nil {
		return 0, err
	}
	switch any(a.crs).(type) {
	case Geodetic:
		return geodetic.Distance[float64](geoPoint[C]{a}, geoPoint[C]{b}), nil
	default:
		return planar.Distance[float64](a, b), nil
	}
}

// ContourLength returns the length of c: the sum of its consecutive
// segment distances, including the wrap-around edge when c is closed.
func ContourLength[C CRS](c Contour[Point[C]]) (float64, error) {
	var sum float64
	for s := range c.Segments() {
		d, err := Distance(s.A, s.B)
		if err != nil {
			return 0, err
		}
		sum += d
	}
	return sum, nil
}

// Length returns the total length of the linear parts of g, dispatched by
// CRS as in Distance. Points contribute nothing; a polygon contributes
// its perimeter, holes included. An empty geometry has length 0.
func Length[C CRS](g Geometry[Point[C]]) (float64, error) {
	switch g := g.(type) {
	case Point[C], MultiPoint[Point[C]]:
		return 0, nil
	case LineString[Point[C]]:
		return ContourLength(g.Contour())
	case MultiLineString[Point[C]]:
		var sum float64
		for l := range g.Lines() {
			d, err := ContourLength(l.Contour())
			if err != nil {
				return 0, err
			}
			sum += d
		}
		return sum, nil
	case Polygon[Point[C]]:
		return Perimeter(g)
	case MultiPolygon[Point[C]]:
		var sum float64
		for p := range g.Polygons() {
			d, err := Perimeter(p)
			if err != nil {
				return 0, err
			}
			sum += d
		}
		return sum, nil
	case Collection[Point[C]]:
		var sum float64
		for m := range g.Geometries() {
			d, err := Length(m)
			if err != nil {
				return 0, err
			}
			sum += d
		}
		return sum, nil
	default:
		return 0, fmt.Errorf("length of %T: %w", g, ErrUnsupportedVariant)
	}
}

// Perimeter returns the total ring length of p, holes included.
func Perimeter[C CRS](p Polygon[Point[C]]) (float64, error) {
	var sum float64
	for r := range p.Rings() {
		d, err := ContourLength(r)
		if err != nil {
			return 0, err
		}
		sum += d
	}
	return sum, nil
}
