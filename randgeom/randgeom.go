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
Package randgeom generates synthetic geometries for tests and fuzzing.

Generation is deterministic for a given seed. Rings are built by
scattering points in an extent and sorting them by angle about their
centroid, which always yields a simple (non-self-intersecting) ring;
exterior rings come out counter-clockwise and hole rings clockwise.
*/
package randgeom

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/spatialmodel/crsgeom"
	"github.com/spatialmodel/crsgeom/planar"
)

// Extent is an axis-aligned generation region.
type Extent struct {
	MinX, MinY, MaxX, MaxY float64
}

// Generator produces random geometry from a deterministic stream.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with the given value. Equal seeds
// produce equal geometry sequences.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewAuto returns a Generator seeded from the platform entropy source.
func NewAuto() *Generator {
	return New(entropySeed())
}

func (g *Generator) coord(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// Point returns a uniformly distributed point within the extent.
func Point[C crsgeom.CRS](g *Generator, crs C, ext Extent) crsgeom.Point[C] {
	return crsgeom.MustPoint(crs, g.coord(ext.MinX, ext.MaxX), g.coord(ext.MinY, ext.MaxY))
}

// MultiPoint returns n points within the extent.
func MultiPoint[C crsgeom.CRS](g *Generator, crs C, ext Extent, n int) crsgeom.MultiPoint[crsgeom.Point[C]] {
	pts := make([]crsgeom.Point[C], n)
	for i := range pts {
		pts[i] = Point(g, crs, ext)
	}
	return crsgeom.NewMultiPoint(pts)
}

// LineString returns an open path of n points within the extent.
func LineString[C crsgeom.CRS](g *Generator, crs C, ext Extent, n int) (crsgeom.LineString[crsgeom.Point[C]], error) {
	if n < 2 {
		n = 2
	}
	pts := make([]crsgeom.Point[C], n)
	for i := range pts {
		pts[i] = Point(g, crs, ext)
	}
	return crsgeom.NewLineString(pts)
}

// Ring returns a simple counter-clockwise ring of n points within the
// extent.
func Ring[C crsgeom.CRS](g *Generator, crs C, ext Extent, n int) (crsgeom.Contour[crsgeom.Point[C]], error) {
	if n < 3 {
		n = 3
	}
	pts := make([]crsgeom.Point[C], n)
	for i := range pts {
		pts[i] = Point(g, crs, ext)
	}
	angleSort(pts)
	if planar.SignedArea[float64](pts) < 0 {
		reverse(pts)
	}
	return crsgeom.NewRing(pts)
}

// Polygon returns a polygon whose exterior fills the extent and whose
// holes are small clockwise rings scattered inside a shrunken copy of
// it. Hole containment follows from the shrinking but is not verified.
func Polygon[C crsgeom.CRS](g *Generator, crs C, ext Extent, ringPoints, holes int) (crsgeom.Polygon[crsgeom.Point[C]], error) {
	exterior, err := Ring(g, crs, ext, ringPoints)
	if err != nil {
		return crsgeom.Polygon[crsgeom.Point[C]]{}, err
	}
	rings := make([]crsgeom.Contour[crsgeom.Point[C]], 0, holes)
	for i := 0; i < holes; i++ {
		hole, err := Ring(g, crs, shrink(ext, 0.25), ringPoints)
		if err != nil {
			return crsgeom.Polygon[crsgeom.Point[C]]{}, err
		}
		rings = append(rings, hole.Reversed())
	}
	return crsgeom.PolygonFromRings(exterior, rings...)
}

// Geometry returns a random geometry of the named variant: "point",
// "multipoint", "linestring", "multilinestring", "polygon",
// "multipolygon" or "collection".
func Geometry[C crsgeom.CRS](g *Generator, crs C, ext Extent, variant string, n, holes int) (crsgeom.Geometry[crsgeom.Point[C]], error) {
	switch variant {
	case "point":
		return Point(g, crs, ext), nil
	case "multipoint":
		return MultiPoint(g, crs, ext, n), nil
	case "linestring":
		l, err := LineString(g, crs, ext, n)
		if err != nil {
			return nil, err
		}
		return l, nil
	case "multilinestring":
		lines := make([]crsgeom.LineString[crsgeom.Point[C]], 2)
		for i := range lines {
			l, err := LineString(g, crs, ext, n)
			if err != nil {
				return nil, err
			}
			lines[i] = l
		}
		return crsgeom.NewMultiLineString(lines), nil
	case "polygon":
		p, err := Polygon(g, crs, ext, n, holes)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "multipolygon":
		polys := make([]crsgeom.Polygon[crsgeom.Point[C]], 2)
		for i := range polys {
			p, err := Polygon(g, crs, ext, n, holes)
			if err != nil {
				return nil, err
			}
			polys[i] = p
		}
		return crsgeom.NewMultiPolygon(polys), nil
	case "collection":
		pt := Point(g, crs, ext)
		p, err := Polygon(g, crs, ext, n, holes)
		if err != nil {
			return nil, err
		}
		return crsgeom.NewCollection([]crsgeom.Geometry[crsgeom.Point[C]]{pt, p}), nil
	default:
		return nil, fmt.Errorf("randgeom: variant %q: %w", variant, crsgeom.ErrUnsupportedVariant)
	}
}

func angleSort[C crsgeom.CRS](pts []crsgeom.Point[C]) {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X()
		cy += p.Y()
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))
	sort.Slice(pts, func(i, j int) bool {
		ai := math.Atan2(pts[i].Y()-cy, pts[i].X()-cx)
		aj := math.Atan2(pts[j].Y()-cy, pts[j].X()-cx)
		return ai < aj
	})
}

func reverse[C crsgeom.CRS](pts []crsgeom.Point[C]) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func shrink(ext Extent, frac float64) Extent {
	dx := (ext.MaxX - ext.MinX) * frac
	dy := (ext.MaxY - ext.MinY) * frac
	return Extent{
		MinX: ext.MinX + dx, MinY: ext.MinY + dy,
		MaxX: ext.MaxX - dx, MaxY: ext.MaxY - dy,
	}
}
