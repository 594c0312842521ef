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

// WithinStatus classifies a point relative to an areal geometry.
type WithinStatus int

const (
	// Outside means the point is not contained.
	Outside WithinStatus = iota
	// Inside means the point is strictly contained.
	Inside
	// OnBoundary means the point lies on a ring edge. It is a distinct
	// outcome so edge cases never get silently classified either way.
	OnBoundary
)

func (w WithinStatus) String() string {
	switch w {
	case Inside:
		return "inside"
	case OnBoundary:
		return "on boundary"
	default:
		return "outside"
	}
}

func (w WithinStatus) invert() WithinStatus {
	if w == Outside {
		return Inside
	}
	return Outside
}

// Within classifies p against poly with a ray-casting test: containment
// in the exterior ring is inverted by each hole that also contains p, and
// a point on any ring edge is OnBoundary. The test runs on raw
// coordinates, so for Geodetic polygons it is a longitude/latitude
// approximation and rings crossing the antimeridian are not unwrapped.
// It returns ErrCRSMismatch for projected inputs with different
// reference strings.
//
// The polygon is assumed simple with fully interior holes; violating
// input yields a best-effort classification, not an error.
func Within[C CRS](p Point[C], poly Polygon[Point[C]]) (WithinStatus, error) {
	in := Outside
	for r := range poly.Rings() {
		if r.Len() > 0 {
			if err := sameRef(p, r.At(0)); err != nil {
				return Outside, err
			}
			if err := refCheck(r.pointSlice()); err != nil {
				return Outside, err
			}
		}
		switch ringContains(p, r) {
		case OnBoundary:
			return OnBoundary, nil
		case Inside:
			in = in.invert()
		}
	}
	return in, nil
}

// WithinMulti classifies p against every polygon of m, inverting
// containment for each polygon that contains it, as in the single-polygon
// test. A boundary hit on any polygon wins.
func WithinMulti[C CRS](p Point[C], m MultiPolygon[Point[C]]) (WithinStatus, error) {
	in := Outside
	for poly := range m.Polygons() {
		w, err := Within(p, poly)
		if err != nil {
			return Outside, err
		}
		switch w {
		case OnBoundary:
			return OnBoundary, nil
		case Inside:
			in = in.invert()
		}
	}
	return in, nil
}

// ringContains runs the ray cast for a single ring, wrap-around edge
// included. Rings with fewer than 3 points contain nothing.
func ringContains[C CRS](p Point[C], ring Contour[Point[C]]) WithinStatus {
	if ring.Len() < 3 {
		return Outside
	}
	in := Outside
	for s := range ring.Segments() {
		if planar.PointOnSegment[float64](p, s.A, s.B) {
			return OnBoundary
		}
		if planar.RayIntersectsSegment[float64](p, s.A, s.B) {
			in = in.invert()
		}
	}
	return in
}
