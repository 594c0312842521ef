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

import "errors"

var (
	// ErrEmptyGeometry is returned by algorithms that require at least one
	// point or contour when given a geometry with none.
	ErrEmptyGeometry = errors.New("crsgeom: empty geometry")

	// ErrDegenerate is returned by constructors for geometries with too few
	// points: a line string with fewer than 2 points or a ring with fewer
	// than 3 distinct points.
	ErrDegenerate = errors.New("crsgeom: degenerate geometry")

	// ErrNonFinite is returned by constructors when a coordinate is NaN or
	// infinite.
	ErrNonFinite = errors.New("crsgeom: non-finite coordinate")

	// ErrCRSMismatch is returned when two projected coordinates with
	// different reference strings meet in one operation. Mixing different
	// CRS families is a compile error and never reaches this.
	ErrCRSMismatch = errors.New("crsgeom: coordinate reference system mismatch")

	// ErrOutOfDomain is returned when a coordinate falls outside the valid
	// input domain of a requested transform.
	ErrOutOfDomain = errors.New("crsgeom: coordinate out of transform domain")

	// ErrUnsupportedVariant is returned by interop conversions that cannot
	// losslessly represent the input shape.
	ErrUnsupportedVariant = errors.New("crsgeom: unsupported geometry variant")
)
