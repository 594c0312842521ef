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
Package reproject rewrites geometry trees from one coordinate reference
system into another through an injected transform provider. The variant
shape, point and contour counts, ordering, hole nesting and ring closure
of the input are preserved verbatim; only coordinate values change.

Reprojection is all-or-nothing: if any point fails to transform, the
whole operation fails and no partially transformed geometry is returned.
*/
package reproject

import (
	"fmt"

	"github.com/spatialmodel/crsgeom"
	"github.com/spatialmodel/crsgeom/geodetic"
)

// Func transforms a single coordinate pair. Implementations report
// coordinates outside the transform's valid domain with an error.
type Func func(x, y float64) (float64, float64, error)

// Provider supplies coordinate transforms between two reference strings
// (see crsgeom.CRS.Ref). Providers must be safe for use by concurrent
// transform requests; the engine itself does not introduce concurrency.
type Provider interface {
	Transform(srcRef, dstRef string) (Func, error)
}

// Point transforms a single point from src to dst through p.
func Point[S, D crsgeom.CRS](pt crsgeom.Point[S], src S, dst D, p Provider) (crsgeom.Point[D], error) {
	f, err := pointFunc(src, dst, p)
	if err != nil {
		return crsgeom.Point[D]{}, err
	}
	return f(pt)
}

// Geometry transforms every point of g from src to dst through p,
// returning a structurally identical geometry in the destination system.
// It fails with crsgeom.ErrOutOfDomain when any coordinate is outside
// the transform's valid input range, including geodetic input outside
// ±180° longitude or ±90° latitude.
func Geometry[S, D crsgeom.CRS](g crsgeom.Geometry[crsgeom.Point[S]], src S, dst D, p Provider) (crsgeom.Geometry[crsgeom.Point[D]], error) {
	f, err := pointFunc(src, dst, p)
	if err != nil {
		return nil, err
	}
	return crsgeom.MapGeometry(g, f)
}

// pointFunc resolves the provider transform once and wraps it with
// domain checks into a point-level transform.
func pointFunc[S, D crsgeom.CRS](src S, dst D, p Provider) (func(crsgeom.Point[S]) (crsgeom.Point[D], error), error) {
	if src.Ref() == "" || dst.Ref() == "" {
		return nil, fmt.Errorf("reproject: planar coordinates have no georeference: %w",
			crsgeom.ErrOutOfDomain)
	}
	t, err := p.Transform(src.Ref(), dst.Ref())
	if err != nil {
		return nil, fmt.Errorf("reproject %q to %q: %w", src.Ref(), dst.Ref(), err)
	}
	geodeticSrc := src.Kind() == crsgeom.GeodeticKind
	return func(pt crsgeom.Point[S]) (crsgeom.Point[D], error) {
		var zero crsgeom.Point[D]
		if geodeticSrc && !geodetic.InDomain(pt.X(), pt.Y()) {
			return zero, fmt.Errorf("reproject (%g, %g): %w", pt.X(), pt.Y(), crsgeom.ErrOutOfDomain)
		}
		x, y, err := t(pt.X(), pt.Y())
		if err != nil {
			return zero, fmt.Errorf("reproject (%g, %g): %w: %v", pt.X(), pt.Y(), crsgeom.ErrOutOfDomain, err)
		}
		// A transform that walks off its valid domain may hand back NaN
		// instead of failing; treat that the same as an explicit error.
		out, err := crsgeom.NewPoint(dst, x, y)
		if err != nil {
			return zero, fmt.Errorf("reproject (%g, %g): %w", pt.X(), pt.Y(), crsgeom.ErrOutOfDomain)
		}
		return out, nil
	}, nil
}
