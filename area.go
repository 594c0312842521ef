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
	"math"

	"github.com/spatialmodel/crsgeom/geodetic"
	"github.com/spatialmodel/crsgeom/planar"
)

// Winding is the traversal direction of a ring.
type Winding int

const (
	// Clockwise winding encloses negative signed area.
	Clockwise Winding = iota
	// CounterClockwise winding encloses positive signed area.
	CounterClockwise
)

func (w Winding) String() string {
	if w == Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

// SignedArea returns the signed area enclosed by c, treated as implicitly
// closed whether or not it is a ring. Planar and Projected contours use
// the shoelace formula; Geodetic contours use a spherical-excess
// approximation in square meters. The sign is positive for
// counter-clockwise traversal, so reversing the contour flips it.
// It returns ErrCRSMismatch if c mixes projected points with different
// reference strings.
func SignedArea[C CRS](c Contour[Point[C]]) (float64, error) {
	pts := c.pointSlice()
	if err := refCheck(pts); err != nil {
		return 0, err
	}
	if len(pts) == 0 {
		return 0, nil
	}
	switch any(pts[0].crs).(type) {
	case Geodetic:
		geo := make([]geoPoint[C], len(pts))
		for i, p := range pts {
			geo[i] = geoPoint[C]{p}
		}
		return geodetic.SignedArea[float64](geo), nil
	default:
		return planar.SignedArea[float64](pts), nil
	}
}

// RingWinding returns the traversal direction of c. Zero-area contours
// report Clockwise, matching the sign convention of SignedArea.
func RingWinding[C CRS](c Contour[Point[C]]) (Winding, error) {
	a, err := SignedArea(c)
	if err != nil {
		return Clockwise, err
	}
	if a > 0 {
		return CounterClockwise, nil
	}
	return Clockwise, nil
}

// PolygonArea returns the area of p: the magnitude of its exterior ring's
// area minus the magnitudes of its holes' areas, carrying the sign of the
// exterior winding. Holes are assumed fully interior to the exterior; a
// polygon violating that gives a numerically wrong but non-fatal result.
func PolygonArea[C CRS](p Polygon[Point[C]]) (float64, error) {
	ext, err := SignedArea(p.Exterior())
	if err != nil {
		return 0, err
	}
	area := math.Abs(ext)
	for i := 0; i < p.NumHoles(); i++ {
		h, err := SignedArea(p.Hole(i))
		if err != nil {
			return 0, err
		}
		area -= math.Abs(h)
	}
	if ext < 0 {
		return -area, nil
	}
	return area, nil
}

// Area returns the total unsigned area of the areal parts of g,
// dispatched by CRS as in SignedArea. Points and lines contribute
// nothing. An empty geometry has area 0.
func Area[C CRS](g Geometry[Point[C]]) (float64, error) {
	switch g := g.(type) {
	case Point[C], MultiPoint[Point[C]], LineString[Point[C]], MultiLineString[Point[C]]:
		return 0, nil
	case Polygon[Point[C]]:
		a, err := PolygonArea(g)
		if err != nil {
			return 0, err
		}
		return math.Abs(a), nil
	case MultiPolygon[Point[C]]:
		var sum float64
		for p := range g.Polygons() {
			a, err := PolygonArea(p)
			if err != nil {
				return 0, err
			}
			sum += math.Abs(a)
		}
		return sum, nil
	case Collection[Point[C]]:
		var sum float64
		for m := range g.Geometries() {
			a, err := Area(m)
			if err != nil {
				return 0, err
			}
			sum += a
		}
		return sum, nil
	default:
		return 0, fmt.Errorf("area of %T: %w", g, ErrUnsupportedVariant)
	}
}

// refCheck verifies that all points agree on their CRS reference string.
func refCheck[C CRS](pts []Point[C]) error {
	for i := 1; i < len(pts); i++ {
		if err := sameRef(pts[0], pts[i]); err != nil {
			return err
		}
	}
	return nil
}
