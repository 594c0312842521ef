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

package geojson

import (
	"errors"
	"testing"

	"github.com/spatialmodel/crsgeom"
)

func TestDecodePoint(t *testing.T) {
	g, err := Decode([]byte(`{"type":"Point","coordinates":[-93.26,44.98]}`), crsgeom.Geodetic{})
	if err != nil {
		t.Fatal(err)
	}
	p, ok := g.(crsgeom.Point[crsgeom.Geodetic])
	if !ok {
		t.Fatalf("want a point but have %T", g)
	}
	if p.X() != -93.26 || p.Y() != 44.98 {
		t.Errorf("want (-93.26, 44.98) but have (%g, %g)", p.X(), p.Y())
	}
}

func TestDecodePolygon(t *testing.T) {
	data := []byte(`{"type":"Polygon","coordinates":[
		[[0,0],[4,0],[4,4],[0,4],[0,0]],
		[[1,1],[1,2],[2,2],[2,1],[1,1]]]}`)
	g, err := Decode(data, crsgeom.Geodetic{})
	if err != nil {
		t.Fatal(err)
	}
	p, ok := g.(crsgeom.Polygon[crsgeom.Point[crsgeom.Geodetic]])
	if !ok {
		t.Fatalf("want a polygon but have %T", g)
	}
	// GeoJSON closing points are dropped internally.
	if p.Exterior().Len() != 4 {
		t.Errorf("want 4 exterior points but have %d", p.Exterior().Len())
	}
	if p.NumHoles() != 1 {
		t.Errorf("want 1 hole but have %d", p.NumHoles())
	}
}

func TestDecodeFeature(t *testing.T) {
	data := []byte(`{"type":"Feature","properties":{"name":"x"},
		"geometry":{"type":"LineString","coordinates":[[0,0],[1,1],[2,0]]}}`)
	g, err := Decode(data, crsgeom.Geodetic{})
	if err != nil {
		t.Fatal(err)
	}
	l, ok := g.(crsgeom.LineString[crsgeom.Point[crsgeom.Geodetic]])
	if !ok {
		t.Fatalf("want a line but have %T", g)
	}
	if l.Len() != 3 {
		t.Errorf("want 3 points but have %d", l.Len())
	}
}

func TestDecodeFeatureCollection(t *testing.T) {
	data := []byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]}},
		{"type":"Feature","geometry":{"type":"Point","coordinates":[3,4]}}]}`)
	g, err := Decode(data, crsgeom.Geodetic{})
	if err != nil {
		t.Fatal(err)
	}
	c, ok := g.(crsgeom.Collection[crsgeom.Point[crsgeom.Geodetic]])
	if !ok {
		t.Fatalf("want a collection but have %T", g)
	}
	if c.Len() != 2 {
		t.Errorf("want 2 geometries but have %d", c.Len())
	}
}

func TestRoundTrip(t *testing.T) {
	data := []byte(`{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,4],[0,4],[0,0]],[[1,1],[1,2],[2,2],[2,1],[1,1]]]}`)
	g, err := Decode(data, crsgeom.Geodetic{})
	if err != nil {
		t.Fatal(err)
	}
	out, err := Encode(g)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := Decode(out, crsgeom.Geodetic{})
	if err != nil {
		t.Fatal(err)
	}
	if !crsgeom.Similar[crsgeom.Geodetic](g, g2, 0) {
		t.Errorf("round trip changed the geometry: %s", out)
	}
}

func TestDecodeErrors(t *testing.T) {
	// Three-dimensional positions are not supported.
	if _, err := Decode([]byte(`{"type":"Point","coordinates":[1,2,3]}`), crsgeom.Geodetic{}); !errors.Is(err, crsgeom.ErrUnsupportedVariant) {
		t.Errorf("3d position: want ErrUnsupportedVariant but have %v", err)
	}
	// Unknown geometry types are not supported.
	if _, err := Decode([]byte(`{"type":"Curve","coordinates":[]}`), crsgeom.Geodetic{}); !errors.Is(err, crsgeom.ErrUnsupportedVariant) {
		t.Errorf("unknown type: want ErrUnsupportedVariant but have %v", err)
	}
	// A feature with a null geometry is empty.
	if _, err := Decode([]byte(`{"type":"Feature","geometry":null}`), crsgeom.Geodetic{}); !errors.Is(err, crsgeom.ErrEmptyGeometry) {
		t.Errorf("null geometry: want ErrEmptyGeometry but have %v", err)
	}
}

func TestEncodeClosesRings(t *testing.T) {
	pts := make([]crsgeom.Point[crsgeom.Geodetic], 0, 4)
	for _, c := range [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}} {
		pts = append(pts, crsgeom.MustPoint(crsgeom.Geodetic{}, c[0], c[1]))
	}
	poly, err := crsgeom.NewPolygon(pts)
	if err != nil {
		t.Fatal(err)
	}
	o, err := ToGeoJSON[crsgeom.Geodetic](poly)
	if err != nil {
		t.Fatal(err)
	}
	if o.Type != "Polygon" {
		t.Fatalf("want Polygon but have %s", o.Type)
	}
	want := `[[[0,0],[2,0],[2,2],[0,2],[0,0]]]`
	if string(o.Coordinates) != want {
		t.Errorf("want %s but have %s", want, o.Coordinates)
	}
}
