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
	"slices"
)

// Contour is an ordered sequence of points forming a polyline (open) or a
// ring (closed). A closed contour is conceptually closed: the last point
// connects back to the first without the first being stored twice, and
// the closing iterators below include that wrap-around edge.
type Contour[P any] struct {
	points []P
	closed bool
}

// NewContour returns an open contour (a polyline) over points. It returns
// ErrDegenerate if fewer than 2 points are given. The slice is copied.
func NewContour[P any](points []P) (Contour[P], error) {
	if len(points) == 0 {
		return Contour[P]{}, fmt.Errorf("polyline: %w", ErrEmptyGeometry)
	}
	if len(points) < 2 {
		return Contour[P]{}, fmt.Errorf("polyline with %d points: %w", len(points), ErrDegenerate)
	}
	return Contour[P]{points: slices.Clone(points)}, nil
}

// NewRing returns a closed contour over points. If the last point
// duplicates the first it is dropped, since closure is implicit. It
// returns ErrDegenerate if fewer than 3 distinct points remain. The slice
// is copied.
func NewRing[P comparable](points []P) (Contour[P], error) {
	if len(points) > 1 && points[len(points)-1] == points[0] {
		points = points[:len(points)-1]
	}
	distinct := make(map[P]struct{}, len(points))
	for _, p := range points {
		distinct[p] = struct{}{}
	}
	if len(distinct) < 3 {
		return Contour[P]{}, fmt.Errorf("ring with %d distinct points: %w", len(distinct), ErrDegenerate)
	}
	return Contour[P]{points: slices.Clone(points), closed: true}, nil
}

// Closed reports whether the contour is a ring.
func (c Contour[P]) Closed() bool { return c.closed }

// Len returns the number of stored points. The implicit closing point of
// a ring is not counted.
func (c Contour[P]) Len() int { return len(c.points) }

// At returns the i'th point.
func (c Contour[P]) At(i int) P { return c.points[i] }

// Points yields the stored points in order. The sequence is restartable.
func (c Contour[P]) Points() iter.Seq[P] {
	return func(yield func(P) bool) {
		for _, p := range c.points {
			if !yield(p) {
				return
			}
		}
	}
}

// PointsClosing yields the stored points in order and, for a closed
// contour, the first point once more at the end.
func (c Contour[P]) PointsClosing() iter.Seq[P] {
	return func(yield func(P) bool) {
		for _, p := range c.points {
			if !yield(p) {
				return
			}
		}
		if c.closed && len(c.points) > 0 {
			yield(c.points[0])
		}
	}
}

// Segment is a directed edge between two consecutive contour points.
type Segment[P any] struct {
	A, B P
}

// Segments yields the contour's edges in order, including the wrap-around
// edge for a closed contour.
func (c Contour[P]) Segments() iter.Seq[Segment[P]] {
	return func(yield func(Segment[P]) bool) {
		for i := 1; i < len(c.points); i++ {
			if !yield(Segment[P]{A: c.points[i-1], B: c.points[i]}) {
				return
			}
		}
		if c.closed && len(c.points) > 1 {
			yield(Segment[P]{A: c.points[len(c.points)-1], B: c.points[0]})
		}
	}
}

// Reversed returns a contour with the same points in opposite traversal
// order.
func (c Contour[P]) Reversed() Contour[P] {
	rev := slices.Clone(c.points)
	slices.Reverse(rev)
	return Contour[P]{points: rev, closed: c.closed}
}

// pointSlice returns the backing points without copying. Callers must not
// modify the result.
func (c Contour[P]) pointSlice() []P { return c.points }
