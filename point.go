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
	"math"
)

// Point is a pair of coordinates tagged with the coordinate reference
// system they are expressed in. For Geodetic points X is longitude and Y
// latitude, in degrees. A Point is also the point variant of Geometry.
//
// Point satisfies the planar coordinate capability (planar.Point), so it
// can be used directly with the generic math in package planar.
type Point[C CRS] struct {
	x, y float64
	crs  C
}

// NewPoint returns a point with the given coordinates in crs. It returns
// ErrNonFinite if either coordinate is NaN or infinite.
func NewPoint[C CRS](crs C, x, y float64) (Point[C], error) {
	if !finite(x) || !finite(y) {
		return Point[C]{}, fmt.Errorf("point (%v, %v): %w", x, y, ErrNonFinite)
	}
	return Point[C]{x: x, y: y, crs: crs}, nil
}

// MustPoint is like NewPoint but panics on non-finite coordinates. It is
// intended for literals in tests and examples.
func MustPoint[C CRS](crs C, x, y float64) Point[C] {
	p, err := NewPoint(crs, x, y)
	if err != nil {
		panic(err)
	}
	return p
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// X returns the horizontal coordinate.
func (p Point[C]) X() float64 { return p.x }

// Y returns the vertical coordinate.
func (p Point[C]) Y() float64 { return p.y }

// CRS returns the point's coordinate reference system marker.
func (p Point[C]) CRS() C { return p.crs }

// Equals reports whether p and q have bit-identical coordinates and equal
// CRS markers. For tolerance-based comparison use Similar.
func (p Point[C]) Equals(q Point[C]) bool {
	return p == q
}

// Points yields p itself.
func (p Point[C]) Points() iter.Seq[Point[C]] {
	return func(yield func(Point[C]) bool) {
		yield(p)
	}
}

func (Point[C]) isGeometry() {}

func (p Point[C]) String() string {
	return fmt.Sprintf("POINT (%g %g)", p.x, p.y)
}

// geoPoint adapts a Point to the geodetic coordinate capability.
type geoPoint[C CRS] struct{ p Point[C] }

func (g geoPoint[C]) Lon() float64 { return g.p.x }
func (g geoPoint[C]) Lat() float64 { return g.p.y }

// sameRef verifies that two points of the same CRS family agree on their
// reference string. Only Projected markers can actually differ.
func sameRef[C CRS](a, b Point[C]) error {
	if a.crs != b.crs {
		return fmt.Errorf("%q vs %q: %w", a.crs.Ref(), b.crs.Ref(), ErrCRSMismatch)
	}
	return nil
}

// PointZ is a Point with an elevation. It satisfies both the planar
// coordinate capability and the elevation capability (planar.Elevated).
// Elevation rides along unchanged through planar algorithms, which only
// consider X and Y.
type PointZ[C CRS] struct {
	Point[C]
	z float64
}

// NewPointZ returns a three-coordinate point in crs. It returns
// ErrNonFinite if any coordinate is NaN or infinite.
func NewPointZ[C CRS](crs C, x, y, z float64) (PointZ[C], error) {
	p, err := NewPoint(crs, x, y)
	if err != nil {
		return PointZ[C]{}, err
	}
	if !finite(z) {
		return PointZ[C]{}, fmt.Errorf("elevation %v: %w", z, ErrNonFinite)
	}
	return PointZ[C]{Point: p, z: z}, nil
}

// Z returns the elevation.
func (p PointZ[C]) Z() float64 { return p.z }
