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

// Bounds is the axis-aligned bounding rectangle of a geometry, in the
// same CRS as its source. It is always derived from a geometry with
// BoundsOf, never constructed independently.
type Bounds[C CRS] struct {
	Min, Max Point[C]
}

// BoundsOf computes the bounding rectangle of g in a single pass over its
// points. Every point of g is contained in the result. It returns
// ErrEmptyGeometry if g has no points, and ErrCRSMismatch if g mixes
// projected points with different reference strings.
//
// Geodetic geometries spanning the antimeridian are treated numerically:
// the rectangle covers the raw longitude range rather than the shorter
// wrapped one.
func BoundsOf[C CRS](g Geometry[Point[C]]) (Bounds[C], error) {
	var b Bounds[C]
	first := true
	for p := range g.Points() {
		if first {
			b.Min, b.Max = p, p
			first = false
			continue
		}
		if err := sameRef(b.Min, p); err != nil {
			return Bounds[C]{}, err
		}
		if p.x < b.Min.x {
			b.Min.x = p.x
		}
		if p.y < b.Min.y {
			b.Min.y = p.y
		}
		if p.x > b.Max.x {
			b.Max.x = p.x
		}
		if p.y > b.Max.y {
			b.Max.y = p.y
		}
	}
	if first {
		return Bounds[C]{}, ErrEmptyGeometry
	}
	return b, nil
}

// Contains reports whether p lies inside b or on its edge.
func (b Bounds[C]) Contains(p Point[C]) bool {
	return p.x >= b.Min.x && p.x <= b.Max.x && p.y >= b.Min.y && p.y <= b.Max.y
}

// Overlaps reports whether b and b2 share any point, edges included.
func (b Bounds[C]) Overlaps(b2 Bounds[C]) bool {
	return b.Min.x <= b2.Max.x && b.Min.y <= b2.Max.y &&
		b.Max.x >= b2.Min.x && b.Max.y >= b2.Min.y
}

// Width returns the horizontal extent of b.
func (b Bounds[C]) Width() float64 { return b.Max.x - b.Min.x }

// Height returns the vertical extent of b.
func (b Bounds[C]) Height() float64 { return b.Max.y - b.Min.y }
