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

import "github.com/spatialmodel/crsgeom/planar"

// ClosestPoint returns the point on c closest to p, found by projecting p
// onto every segment of c (wrap-around edge included for rings) and
// keeping the minimum. When two segments are at exactly the same
// distance, the one earlier in contour order wins. The projection is
// Euclidean in raw coordinates for every CRS family, so for Geodetic
// contours it is a longitude/latitude approximation.
//
// It returns ErrEmptyGeometry for a contour with no points and
// ErrCRSMismatch for projected inputs with different reference strings.
func ClosestPoint[C CRS](p Point[C], c Contour[Point[C]]) (Point[C], error) {
	if c.Len() == 0 {
		return Point[C]{}, ErrEmptyGeometry
	}
	if err := sameRef(p, c.At(0)); err != nil {
		return Point[C]{}, err
	}
	if err := refCheck(c.pointSlice()); err != nil {
		return Point[C]{}, err
	}

	// A single point has no segments; it is its own closest point.
	best := c.At(0)
	bestSq := planar.DistanceSq[float64](p, best)
	for s := range c.Segments() {
		x, y, dSq := planar.SegmentClosest[float64](p, s.A, s.B)
		if dSq < bestSq {
			bestSq = dSq
			best = Point[C]{x: x, y: y, crs: p.crs}
		}
	}
	return best, nil
}

// DistanceToContour returns the distance from p to the closest point of
// c, with the same approximation and errors as ClosestPoint. For
// Geodetic inputs the result is the great-circle distance to the
// projected point, in meters.
func DistanceToContour[C CRS](p Point[C], c Contour[Point[C]]) (float64, error) {
	q, err := ClosestPoint(p, c)
	if err != nil {
		return 0, err
	}
	return Distance(p, q)
}
