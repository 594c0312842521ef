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
Package crsgeom holds coordinate-system-aware geometry types and the
algorithms that operate on them.

Every Point, and every geometry built from points, carries its coordinate
reference system as part of its static type: Point[Planar],
Point[Geodetic] or Point[Projected]. An operation between two different
families does not compile, so planar and geodetic coordinates can never
be silently mixed; two Projected values are additionally checked at run
time for the same reference string. Algorithms dispatch on the CRS to
pick their formulas: Euclidean math for Planar and Projected coordinates,
great-circle math on the WGS84 sphere for Geodetic ones.

Geometries are immutable value trees. Algorithms only read them, and
transforms such as reprojection (package reproject) return new trees, so
sharing a geometry between goroutines needs no synchronization.

The pure coordinate math lives in the packages planar and geodetic,
written against capability constraints rather than concrete structs, so
caller-defined point types participate without conversion. Interop with
external representations lives in encoding/geojson, encoding/shp and
geomconv; none of it is imported by the core.
*/
package crsgeom

// Version is the version number of this version of crsgeom.
var Version = "1.0.0"
