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

import "gonum.org/v1/gonum/floats/scalar"

// Similar reports whether a and b are the same variant with the same
// structure and coordinates that match within tolerance. Structure
// (point, contour and hole counts, ordering, ring closure) must match
// exactly; only coordinates are fuzzy. CRS markers must be equal.
func Similar[C CRS](a, b Geometry[Point[C]], tolerance float64) bool {
	switch a := a.(type) {
	case Point[C]:
		b, ok := b.(Point[C])
		return ok && pointSimilar(a, b, tolerance)
	case MultiPoint[Point[C]]:
		b, ok := b.(MultiPoint[Point[C]])
		if !ok || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !pointSimilar(a.At(i), b.At(i), tolerance) {
				return false
			}
		}
		return true
	case LineString[Point[C]]:
		b, ok := b.(LineString[Point[C]])
		return ok && contourSimilar(a.Contour(), b.Contour(), tolerance)
	case MultiLineString[Point[C]]:
		b, ok := b.(MultiLineString[Point[C]])
		if !ok || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !contourSimilar(a.At(i).Contour(), b.At(i).Contour(), tolerance) {
				return false
			}
		}
		return true
	case Polygon[Point[C]]:
		b, ok := b.(Polygon[Point[C]])
		return ok && polygonSimilar(a, b, tolerance)
	case MultiPolygon[Point[C]]:
		b, ok := b.(MultiPolygon[Point[C]])
		if !ok || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !polygonSimilar(a.At(i), b.At(i), tolerance) {
				return false
			}
		}
		return true
	case Collection[Point[C]]:
		b, ok := b.(Collection[Point[C]])
		if !ok || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !Similar(a.At(i), b.At(i), tolerance) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func pointSimilar[C CRS](a, b Point[C], tol float64) bool {
	return a.crs == b.crs &&
		scalar.EqualWithinAbs(a.x, b.x, tol) &&
		scalar.EqualWithinAbs(a.y, b.y, tol)
}

func contourSimilar[C CRS](a, b Contour[Point[C]], tol float64) bool {
	if a.Closed() != b.Closed() || a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !pointSimilar(a.At(i), b.At(i), tol) {
			return false
		}
	}
	return true
}

func polygonSimilar[C CRS](a, b Polygon[Point[C]], tol float64) bool {
	if a.NumHoles() != b.NumHoles() {
		return false
	}
	if !contourSimilar(a.Exterior(), b.Exterior(), tol) {
		return false
	}
	for i := 0; i < a.NumHoles(); i++ {
		if !contourSimilar(a.Hole(i), b.Hole(i), tol) {
			return false
		}
	}
	return true
}
