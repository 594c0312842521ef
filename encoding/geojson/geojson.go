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
Package geojson converts between crsgeom geometries and GeoJSON
(RFC 7946).

GeoJSON carries no usable CRS metadata, so decoding takes the reference
system the caller assumes the coordinates to be in, and encoding drops
the marker. Feature and FeatureCollection documents decode to their
geometry contents; properties are discarded.

Only two-dimensional positions are supported: a document with three or
more coordinates per position cannot be represented losslessly and fails
with crsgeom.ErrUnsupportedVariant.
*/
package geojson

import (
	"encoding/json"
	"fmt"

	"github.com/spatialmodel/crsgeom"
)

// Geometry is a raw GeoJSON geometry object.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
	Geometries  []*Geometry     `json:"geometries,omitempty"`
}

type feature struct {
	Type     string    `json:"type"`
	Geometry *Geometry `json:"geometry"`
	Features []feature `json:"features"`
}

// Decode parses a GeoJSON document (a geometry, Feature or
// FeatureCollection) and converts it to a crsgeom geometry with the
// assumed CRS. A FeatureCollection becomes a Collection.
func Decode[C crsgeom.CRS](data []byte, crs C) (crsgeom.Geometry[crsgeom.Point[C]], error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	switch probe.Type {
	case "Feature":
		var f feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		if f.Geometry == nil {
			return nil, fmt.Errorf("geojson: feature with null geometry: %w", crsgeom.ErrEmptyGeometry)
		}
		return FromGeoJSON(f.Geometry, crs)
	case "FeatureCollection":
		var fc feature
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		geoms := make([]crsgeom.Geometry[crsgeom.Point[C]], 0, len(fc.Features))
		for i, f := range fc.Features {
			if f.Geometry == nil {
				return nil, fmt.Errorf("geojson: feature %d with null geometry: %w", i, crsgeom.ErrEmptyGeometry)
			}
			g, err := FromGeoJSON(f.Geometry, crs)
			if err != nil {
				return nil, err
			}
			geoms = append(geoms, g)
		}
		return crsgeom.NewCollection(geoms), nil
	default:
		var g Geometry
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		return FromGeoJSON(&g, crs)
	}
}

// Encode converts g to a GeoJSON geometry document.
func Encode[C crsgeom.CRS](g crsgeom.Geometry[crsgeom.Point[C]]) ([]byte, error) {
	o, err := ToGeoJSON(g)
	if err != nil {
		return nil, err
	}
	return json.Marshal(o)
}

// FromGeoJSON converts a raw GeoJSON geometry object to a crsgeom
// geometry with the assumed CRS.
func FromGeoJSON[C crsgeom.CRS](g *Geometry, crs C) (crsgeom.Geometry[crsgeom.Point[C]], error) {
	switch g.Type {
	case "Point":
		var pos []float64
		if err := json.Unmarshal(g.Coordinates, &pos); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		p, err := decodePos(pos, crs)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "MultiPoint":
		var poss [][]float64
		if err := json.Unmarshal(g.Coordinates, &poss); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		pts, err := decodePositions(poss, crs)
		if err != nil {
			return nil, err
		}
		return crsgeom.NewMultiPoint(pts), nil
	case "LineString":
		var poss [][]float64
		if err := json.Unmarshal(g.Coordinates, &poss); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		pts, err := decodePositions(poss, crs)
		if err != nil {
			return nil, err
		}
		l, err := crsgeom.NewLineString(pts)
		if err != nil {
			return nil, err
		}
		return l, nil
	case "MultiLineString":
		var posss [][][]float64
		if err := json.Unmarshal(g.Coordinates, &posss); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		lines := make([]crsgeom.LineString[crsgeom.Point[C]], len(posss))
		for i, poss := range posss {
			pts, err := decodePositions(poss, crs)
			if err != nil {
				return nil, err
			}
			lines[i], err = crsgeom.NewLineString(pts)
			if err != nil {
				return nil, err
			}
		}
		return crsgeom.NewMultiLineString(lines), nil
	case "Polygon":
		var posss [][][]float64
		if err := json.Unmarshal(g.Coordinates, &posss); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		p, err := decodePolygon(posss, crs)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "MultiPolygon":
		var possss [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &possss); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		polys := make([]crsgeom.Polygon[crsgeom.Point[C]], len(possss))
		for i, posss := range possss {
			p, err := decodePolygon(posss, crs)
			if err != nil {
				return nil, err
			}
			polys[i] = p
		}
		return crsgeom.NewMultiPolygon(polys), nil
	case "GeometryCollection":
		geoms := make([]crsgeom.Geometry[crsgeom.Point[C]], len(g.Geometries))
		for i, m := range g.Geometries {
			q, err := FromGeoJSON(m, crs)
			if err != nil {
				return nil, err
			}
			geoms[i] = q
		}
		return crsgeom.NewCollection(geoms), nil
	default:
		return nil, fmt.Errorf("geojson: type %q: %w", g.Type, crsgeom.ErrUnsupportedVariant)
	}
}

// ToGeoJSON converts g to a raw GeoJSON geometry object, dropping the
// CRS marker. Rings are emitted closed, as RFC 7946 requires.
func ToGeoJSON[C crsgeom.CRS](g crsgeom.Geometry[crsgeom.Point[C]]) (*Geometry, error) {
	switch g := g.(type) {
	case crsgeom.Point[C]:
		return rawGeometry("Point", encodePos(g))
	case crsgeom.MultiPoint[crsgeom.Point[C]]:
		return rawGeometry("MultiPoint", encodeSeq(g.Points()))
	case crsgeom.LineString[crsgeom.Point[C]]:
		return rawGeometry("LineString", encodeSeq(g.Points()))
	case crsgeom.MultiLineString[crsgeom.Point[C]]:
		lines := make([][][]float64, 0, g.Len())
		for l := range g.Lines() {
			lines = append(lines, encodeSeq(l.Points()))
		}
		return rawGeometry("MultiLineString", lines)
	case crsgeom.Polygon[crsgeom.Point[C]]:
		return rawGeometry("Polygon", encodePolygon(g))
	case crsgeom.MultiPolygon[crsgeom.Point[C]]:
		polys := make([][][][]float64, 0, g.Len())
		for p := range g.Polygons() {
			polys = append(polys, encodePolygon(p))
		}
		return rawGeometry("MultiPolygon", polys)
	case crsgeom.Collection[crsgeom.Point[C]]:
		out := &Geometry{Type: "GeometryCollection", Geometries: make([]*Geometry, 0, g.Len())}
		for m := range g.Geometries() {
			q, err := ToGeoJSON(m)
			if err != nil {
				return nil, err
			}
			out.Geometries = append(out.Geometries, q)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("geojson: %T: %w", g, crsgeom.ErrUnsupportedVariant)
	}
}

func rawGeometry(typ string, coords interface{}) (*Geometry, error) {
	raw, err := json.Marshal(coords)
	if err != nil {
		return nil, err
	}
	return &Geometry{Type: typ, Coordinates: raw}, nil
}

func decodePos[C crsgeom.CRS](pos []float64, crs C) (crsgeom.Point[C], error) {
	if len(pos) != 2 {
		return crsgeom.Point[C]{}, fmt.Errorf("geojson: %d-dimensional position: %w",
			len(pos), crsgeom.ErrUnsupportedVariant)
	}
	return crsgeom.NewPoint(crs, pos[0], pos[1])
}

func decodePositions[C crsgeom.CRS](poss [][]float64, crs C) ([]crsgeom.Point[C], error) {
	pts := make([]crsgeom.Point[C], len(poss))
	for i, pos := range poss {
		p, err := decodePos(pos, crs)
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}

func decodePolygon[C crsgeom.CRS](posss [][][]float64, crs C) (crsgeom.Polygon[crsgeom.Point[C]], error) {
	var zero crsgeom.Polygon[crsgeom.Point[C]]
	if len(posss) == 0 {
		return zero, fmt.Errorf("geojson: polygon with no rings: %w", crsgeom.ErrDegenerate)
	}
	rings := make([]crsgeom.Contour[crsgeom.Point[C]], len(posss))
	for i, poss := range posss {
		pts, err := decodePositions(poss, crs)
		if err != nil {
			return zero, err
		}
		// NewRing drops the repeated closing point GeoJSON rings carry.
		rings[i], err = crsgeom.NewRing(pts)
		if err != nil {
			return zero, fmt.Errorf("geojson: ring %d: %w", i, err)
		}
	}
	return crsgeom.PolygonFromRings(rings[0], rings[1:]...)
}

func encodePos[C crsgeom.CRS](p crsgeom.Point[C]) []float64 {
	return []float64{p.X(), p.Y()}
}

func encodeSeq[C crsgeom.CRS](pts func(yield func(crsgeom.Point[C]) bool)) [][]float64 {
	var out [][]float64
	for p := range pts {
		out = append(out, encodePos(p))
	}
	return out
}

func encodePolygon[C crsgeom.CRS](p crsgeom.Polygon[crsgeom.Point[C]]) [][][]float64 {
	rings := make([][][]float64, 0, p.NumHoles()+1)
	for r := range p.Rings() {
		rings = append(rings, encodeSeq(r.PointsClosing()))
	}
	return rings
}
