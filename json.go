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
	"encoding/json"
	"fmt"
)

// Structural JSON serialization. Field names are stable: "x"/"y" for
// coordinates, "points" for point sequences, "exterior"/"holes" for
// polygon rings, "lines", "polygons" and "geometries" for collections.
// Point order within a contour and hole order within a polygon survive a
// marshal/unmarshal round trip exactly. The CRS marker is structural for
// Projected only, whose reference string is carried in a "crs" field.

type pointJSON struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	CRS string  `json:"crs,omitempty"`
}

// MarshalJSON encodes the point as {"x": ..., "y": ...}, with a "crs"
// reference string for Projected points.
func (p Point[C]) MarshalJSON() ([]byte, error) {
	j := pointJSON{X: p.x, Y: p.y}
	if p.crs.Kind() == ProjectedKind {
		j.CRS = p.crs.Ref()
	}
	return json.Marshal(j)
}

// UnmarshalJSON decodes a point, re-validating coordinate finiteness.
// For Projected points the "crs" field populates the marker's reference
// string; other markers carry no state and the field is ignored.
func (p *Point[C]) UnmarshalJSON(data []byte) error {
	var j pointJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	var crs C
	if c, ok := any(&crs).(*Projected); ok {
		c.Proj = j.CRS
	}
	q, err := NewPoint(crs, j.X, j.Y)
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// jsonRing rebuilds a closed contour from decoded points. Distinctness
// is not re-checked here; that validation belongs to NewRing, which every
// programmatic construction path goes through.
func jsonRing[P any](points []P) (Contour[P], error) {
	if len(points) < 3 {
		return Contour[P]{}, fmt.Errorf("ring with %d points: %w", len(points), ErrDegenerate)
	}
	return Contour[P]{points: points, closed: true}, nil
}

// MarshalJSON encodes the multipoint as {"points": [...]}.
func (m MultiPoint[P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Points []P `json:"points"`
	}{m.points})
}

// UnmarshalJSON decodes a multipoint.
func (m *MultiPoint[P]) UnmarshalJSON(data []byte) error {
	var j struct {
		Points []P `json:"points"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	m.points = j.Points
	return nil
}

// MarshalJSON encodes the line string as {"points": [...]}.
func (l LineString[P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Points []P `json:"points"`
	}{l.contour.points})
}

// UnmarshalJSON decodes a line string, re-validating the point count.
func (l *LineString[P]) UnmarshalJSON(data []byte) error {
	var j struct {
		Points []P `json:"points"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	ls, err := NewLineString(j.Points)
	if err != nil {
		return err
	}
	*l = ls
	return nil
}

// MarshalJSON encodes the collection of lines as {"lines": [[...], ...]}.
func (m MultiLineString[P]) MarshalJSON() ([]byte, error) {
	lines := make([][]P, len(m.lines))
	for i, l := range m.lines {
		lines[i] = l.contour.points
	}
	return json.Marshal(struct {
		Lines [][]P `json:"lines"`
	}{lines})
}

// UnmarshalJSON decodes a multi line string.
func (m *MultiLineString[P]) UnmarshalJSON(data []byte) error {
	var j struct {
		Lines [][]P `json:"lines"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	lines := make([]LineString[P], len(j.Lines))
	for i, pts := range j.Lines {
		l, err := NewLineString(pts)
		if err != nil {
			return err
		}
		lines[i] = l
	}
	m.lines = lines
	return nil
}

type polygonJSON[P any] struct {
	Exterior []P   `json:"exterior"`
	Holes    [][]P `json:"holes,omitempty"`
}

// MarshalJSON encodes the polygon as {"exterior": [...], "holes": [...]}.
func (p Polygon[P]) MarshalJSON() ([]byte, error) {
	j := polygonJSON[P]{Exterior: p.exterior.points}
	for _, h := range p.holes {
		j.Holes = append(j.Holes, h.points)
	}
	return json.Marshal(j)
}

// UnmarshalJSON decodes a polygon, re-validating ring sizes.
func (p *Polygon[P]) UnmarshalJSON(data []byte) error {
	var j polygonJSON[P]
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	ext, err := jsonRing(j.Exterior)
	if err != nil {
		return fmt.Errorf("exterior: %w", err)
	}
	holes := make([]Contour[P], len(j.Holes))
	for i, h := range j.Holes {
		holes[i], err = jsonRing(h)
		if err != nil {
			return fmt.Errorf("hole %d: %w", i, err)
		}
	}
	p.exterior = ext
	p.holes = holes
	return nil
}

// MarshalJSON encodes the multipolygon as {"polygons": [...]}.
func (m MultiPolygon[P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Polygons []Polygon[P] `json:"polygons"`
	}{m.polygons})
}

// UnmarshalJSON decodes a multipolygon.
func (m *MultiPolygon[P]) UnmarshalJSON(data []byte) error {
	var j struct {
		Polygons []Polygon[P] `json:"polygons"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	m.polygons = j.Polygons
	return nil
}

type taggedJSON struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes the collection as {"geometries": [{"type", "value"}]},
// tagging each member with its variant name so heterogeneous and nested
// collections round-trip.
func (c Collection[P]) MarshalJSON() ([]byte, error) {
	tagged := make([]taggedJSON, len(c.geoms))
	for i, g := range c.geoms {
		v, err := json.Marshal(g)
		if err != nil {
			return nil, err
		}
		tagged[i] = taggedJSON{Type: variantName(g), Value: v}
	}
	return json.Marshal(struct {
		Geometries []taggedJSON `json:"geometries"`
	}{tagged})
}

// UnmarshalJSON decodes a collection.
func (c *Collection[P]) UnmarshalJSON(data []byte) error {
	var j struct {
		Geometries []taggedJSON `json:"geometries"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	geoms := make([]Geometry[P], len(j.Geometries))
	for i, t := range j.Geometries {
		g, err := unmarshalVariant[P](t)
		if err != nil {
			return err
		}
		geoms[i] = g
	}
	c.geoms = geoms
	return nil
}

func variantName[P any](g Geometry[P]) string {
	switch g.(type) {
	case MultiPoint[P]:
		return "MultiPoint"
	case LineString[P]:
		return "LineString"
	case MultiLineString[P]:
		return "MultiLineString"
	case Polygon[P]:
		return "Polygon"
	case MultiPolygon[P]:
		return "MultiPolygon"
	case Collection[P]:
		return "GeometryCollection"
	default:
		return "Point"
	}
}

func unmarshalVariant[P any](t taggedJSON) (Geometry[P], error) {
	switch t.Type {
	case "Point":
		// The point variant is only available for trees whose point type
		// is Point[C]; other point types decode through MultiPoint.
		var p P
		if err := json.Unmarshal(t.Value, &p); err != nil {
			return nil, err
		}
		if g, ok := any(p).(Geometry[P]); ok {
			return g, nil
		}
		return nil, fmt.Errorf("point variant of %T: %w", p, ErrUnsupportedVariant)
	case "MultiPoint":
		var g MultiPoint[P]
		err := json.Unmarshal(t.Value, &g)
		return g, err
	case "LineString":
		var g LineString[P]
		err := json.Unmarshal(t.Value, &g)
		return g, err
	case "MultiLineString":
		var g MultiLineString[P]
		err := json.Unmarshal(t.Value, &g)
		return g, err
	case "Polygon":
		var g Polygon[P]
		err := json.Unmarshal(t.Value, &g)
		return g, err
	case "MultiPolygon":
		var g MultiPolygon[P]
		err := json.Unmarshal(t.Value, &g)
		return g, err
	case "GeometryCollection":
		var g Collection[P]
		err := json.Unmarshal(t.Value, &g)
		return g, err
	default:
		return nil, fmt.Errorf("variant %q: %w", t.Type, ErrUnsupportedVariant)
	}
}
