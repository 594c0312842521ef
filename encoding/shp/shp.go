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
Package shp converts between crsgeom geometries and ESRI shapefile
shapes as represented by github.com/jonas-p/go-shp.

The shapefile model is flatter than the crsgeom one: a PolyLine is a
set of parts, and a Polygon is a set of rings where hole rings are
distinguished from exterior rings only by winding order (exterior rings
are clockwise in shapefile convention). Conversions here keep the
crsgeom structure authoritative: MultiLineString parts map to PolyLine
parts, and a Polygon's exterior is written first followed by its holes,
each ring explicitly closed. Reading a Polygon treats the first part as
the exterior and every following part as a hole of it.

MultiPolygon and Collection have no single-shape representation and
convert with ErrUnsupportedVariant.
*/
package shp

import (
	"fmt"

	goshp "github.com/jonas-p/go-shp"

	"github.com/spatialmodel/crsgeom"
)

// FromShape converts a go-shp shape into a crsgeom geometry, stamping
// every coordinate with the given reference system.
func FromShape[C crsgeom.CRS](s goshp.Shape, crs C) (crsgeom.Geometry[crsgeom.Point[C]], error) {
	switch s := s.(type) {
	case *goshp.Point:
		p, err := crsgeom.NewPoint(crs, s.X, s.Y)
		if err != nil {
			return nil, err
		}
		return p, nil
	case *goshp.MultiPoint:
		pts, err := fromPoints(s.Points, crs)
		if err != nil {
			return nil, err
		}
		return crsgeom.NewMultiPoint(pts), nil
	case *goshp.PolyLine:
		parts, err := fromParts(s.Parts, s.Points, crs)
		if err != nil {
			return nil, err
		}
		lines := make([]crsgeom.LineString[crsgeom.Point[C]], len(parts))
		for i, part := range parts {
			lines[i], err = crsgeom.NewLineString(part)
			if err != nil {
				return nil, fmt.Errorf("crsgeom/shp: part %d: %w", i, err)
			}
		}
		if len(lines) == 1 {
			return lines[0], nil
		}
		return crsgeom.NewMultiLineString(lines), nil
	case *goshp.Polygon:
		parts, err := fromParts(s.Parts, s.Points, crs)
		if err != nil {
			return nil, err
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("crsgeom/shp: polygon: %w", crsgeom.ErrEmptyGeometry)
		}
		p, err := crsgeom.NewPolygon(parts[0], parts[1:]...)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("crsgeom/shp: shape type %T: %w", s, crsgeom.ErrUnsupportedVariant)
	}
}

// ToShape converts a crsgeom geometry into a go-shp shape. The
// reference system is not carried by the shapefile record; callers
// that need it should write a companion .prj file.
func ToShape[C crsgeom.CRS](g crsgeom.Geometry[crsgeom.Point[C]]) (goshp.Shape, error) {
	switch g := g.(type) {
	case crsgeom.Point[C]:
		return &goshp.Point{X: g.X(), Y: g.Y()}, nil
	case crsgeom.MultiPoint[crsgeom.Point[C]]:
		pts := make([]goshp.Point, g.Len())
		for i := range pts {
			p := g.At(i)
			pts[i] = goshp.Point{X: p.X(), Y: p.Y()}
		}
		box := bbox(pts)
		return &goshp.MultiPoint{Box: box, NumPoints: int32(len(pts)), Points: pts}, nil
	case crsgeom.LineString[crsgeom.Point[C]]:
		return polyLine([][]goshp.Point{contourPoints(g.Contour(), false)}), nil
	case crsgeom.MultiLineString[crsgeom.Point[C]]:
		parts := make([][]goshp.Point, g.Len())
		for i := range parts {
			parts[i] = contourPoints(g.At(i).Contour(), false)
		}
		return polyLine(parts), nil
	case crsgeom.Polygon[crsgeom.Point[C]]:
		parts := make([][]goshp.Point, 0, g.NumHoles()+1)
		parts = append(parts, contourPoints(g.Exterior(), true))
		for i := 0; i < g.NumHoles(); i++ {
			parts = append(parts, contourPoints(g.Hole(i), true))
		}
		return (*goshp.Polygon)(polyLine(parts)), nil
	default:
		return nil, fmt.Errorf("crsgeom/shp: geometry type %T: %w", g, crsgeom.ErrUnsupportedVariant)
	}
}

func fromPoints[C crsgeom.CRS](pts []goshp.Point, crs C) ([]crsgeom.Point[C], error) {
	out := make([]crsgeom.Point[C], len(pts))
	for i, pt := range pts {
		p, err := crsgeom.NewPoint(crs, pt.X, pt.Y)
		if err != nil {
			return nil, fmt.Errorf("crsgeom/shp: point %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// fromParts splits the flat shapefile point array at the part offsets.
// A part whose last point repeats its first is unclosed before use, to
// match the crsgeom convention of not storing the closing point.
func fromParts[C crsgeom.CRS](parts []int32, pts []goshp.Point, crs C) ([][]crsgeom.Point[C], error) {
	if len(parts) == 0 && len(pts) > 0 {
		parts = []int32{0}
	}
	out := make([][]crsgeom.Point[C], 0, len(parts))
	for i, start := range parts {
		end := len(pts)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		if int(start) > end || end > len(pts) {
			return nil, fmt.Errorf("crsgeom/shp: part %d: offset %d out of range", i, start)
		}
		part := pts[start:end]
		if len(part) > 1 && part[0] == part[len(part)-1] {
			part = part[:len(part)-1]
		}
		cp, err := fromPoints(part, crs)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

// contourPoints flattens a contour to shapefile points, appending the
// closing point when the contour is a ring.
func contourPoints[C crsgeom.CRS](c crsgeom.Contour[crsgeom.Point[C]], close bool) []goshp.Point {
	out := make([]goshp.Point, 0, c.Len()+1)
	for p := range c.Points() {
		out = append(out, goshp.Point{X: p.X(), Y: p.Y()})
	}
	if close && c.Len() > 0 {
		out = append(out, out[0])
	}
	return out
}

func polyLine(parts [][]goshp.Point) *goshp.PolyLine {
	n := 0
	for _, part := range parts {
		n += len(part)
	}
	offsets := make([]int32, len(parts))
	flat := make([]goshp.Point, 0, n)
	for i, part := range parts {
		offsets[i] = int32(len(flat))
		flat = append(flat, part...)
	}
	return &goshp.PolyLine{
		Box:       bbox(flat),
		NumParts:  int32(len(parts)),
		NumPoints: int32(len(flat)),
		Parts:     offsets,
		Points:    flat,
	}
}

func bbox(pts []goshp.Point) goshp.Box {
	if len(pts) == 0 {
		return goshp.Box{}
	}
	b := goshp.Box{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}
