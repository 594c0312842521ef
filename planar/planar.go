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
Package planar holds coordinate capability constraints and pure Euclidean
math on types satisfying them. Any type with X and Y accessors can be used
with the functions here without conversion to a concrete point struct.
*/
package planar

import "math"

// Real is the scalar capability: an ordered floating-point type that can
// be approximated by a float64 where transcendental math is required.
type Real interface {
	~float32 | ~float64
}

// Point is the planar coordinate capability. X is the horizontal
// coordinate and Y the vertical one.
type Point[T Real] interface {
	X() T
	Y() T
}

// Elevated is the optional third-coordinate capability. Planar algorithms
// ignore elevation.
type Elevated[T Real] interface {
	Z() T
}

// DistanceSq returns the squared Euclidean distance between a and b.
func DistanceSq[T Real, P Point[T]](a, b P) T {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between a and b.
func Distance[T Real, P Point[T]](a, b P) T {
	return T(math.Hypot(float64(a.X()-b.X()), float64(a.Y()-b.Y())))
}

// SegmentClosest returns the coordinates of the point on segment [a, b]
// closest to p, and the squared distance from p to it. A zero-length
// segment degrades to its single point.
func SegmentClosest[T Real, P Point[T]](p, a, b P) (x, y, distSq T) {
	dx := b.X() - a.X()
	dy := b.Y() - a.Y()
	segLenSq := dx*dx + dy*dy
	if segLenSq == 0 {
		px := p.X() - a.X()
		py := p.Y() - a.Y()
		return a.X(), a.Y(), px*px + py*py
	}
	t := ((p.X()-a.X())*dx + (p.Y()-a.Y())*dy) / segLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	x = a.X() + t*dx
	y = a.Y() + t*dy
	qx := p.X() - x
	qy := p.Y() - y
	return x, y, qx*qx + qy*qy
}

// SegmentDistanceSq returns the squared distance from p to the segment
// [a, b].
func SegmentDistanceSq[T Real, P Point[T]](p, a, b P) T {
	_, _, d := SegmentClosest[T](p, a, b)
	return d
}

// SignedArea returns the shoelace-formula signed area of the ring given by
// points, treating the ring as implicitly closed (the edge from the last
// point back to the first is included). The sign is positive when the ring
// is traversed counter-clockwise. Fewer than 3 points give zero area.
func SignedArea[T Real, P Point[T]](points []P) T {
	if len(points) < 3 {
		return 0
	}
	var sum T
	prev := points[len(points)-1]
	for _, p := range points {
		sum += prev.X()*p.Y() - p.X()*prev.Y()
		prev = p
	}
	return sum / 2
}

// PointOnSegment reports whether p lies on the segment [a, b].
func PointOnSegment[T Real, P Point[T]](p, a, b P) bool {
	cross := (b.X()-a.X())*(p.Y()-a.Y()) - (b.Y()-a.Y())*(p.X()-a.X())
	if cross != 0 {
		return false
	}
	if p.X() < min(a.X(), b.X()) || p.X() > max(a.X(), b.X()) {
		return false
	}
	if p.Y() < min(a.Y(), b.Y()) || p.Y() > max(a.Y(), b.Y()) {
		return false
	}
	return true
}

// RayIntersectsSegment reports whether a ray cast from p in the +X
// direction crosses the segment [a, b]. Adapted from
// https://rosettacode.org/wiki/Ray-casting_algorithm#Go. Coordinates on
// the ray's vertical level are nudged so that ring vertices are not
// counted twice.
func RayIntersectsSegment[T Real, P Point[T]](p, a, b P) bool {
	ax, ay := float64(a.X()), float64(a.Y())
	bx, by := float64(b.X()), float64(b.Y())
	px, py := float64(p.X()), float64(p.Y())
	if ay > by {
		ax, ay, bx, by = bx, by, ax, ay
	}
	for py == ay || py == by {
		py = math.Nextafter(py, math.Inf(1))
	}
	if py < ay || py > by {
		return false
	}
	if ax > bx {
		if px >= ax {
			return false
		}
		if px < bx {
			return true
		}
	} else {
		if px > bx {
			return false
		}
		if px < ax {
			return true
		}
	}
	return (py-ay)/(px-ax) >= (by-ay)/(bx-ax)
}
