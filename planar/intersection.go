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

package planar

// SegmentsIntersect reports whether segments [a0, a1] and [b0, b1] share
// at least one point. Collinear overlapping segments intersect.
// Based on code by Martínez et al:
// http://wwwdi.ujaen.es/~fmartin/bool_op.html (public domain).
func SegmentsIntersect[T Real, P Point[T]](a0, a1, b0, b1 P) bool {
	d0x := a1.X() - a0.X()
	d0y := a1.Y() - a0.Y()
	d1x := b1.X() - b0.X()
	d1y := b1.Y() - b0.Y()
	ex := b0.X() - a0.X()
	ey := b0.Y() - a0.Y()

	kross := d0x*d1y - d0y*d1x
	if kross != 0 {
		// Segment lines are not parallel; intersect where both
		// parameters land in [0, 1].
		s := (ex*d1y - ey*d1x) / kross
		if s < 0 || s > 1 {
			return false
		}
		t := (ex*d0y - ey*d0x) / kross
		return t >= 0 && t <= 1
	}

	// Parallel lines: distinct unless collinear.
	if ex*d0y-ey*d0x != 0 {
		return false
	}

	// Collinear: project b onto a's parameter space and test for overlap.
	sqrLen0 := d0x*d0x + d0y*d0y
	if sqrLen0 == 0 {
		// a is a single point.
		return PointOnSegment[T](a0, b0, b1)
	}
	s0 := (d0x*ex + d0y*ey) / sqrLen0
	s1 := s0 + (d0x*d1x+d0y*d1y)/sqrLen0
	return max(s0, s1) >= 0 && min(s0, s1) <= 1
}
