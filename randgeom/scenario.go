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

package randgeom

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/spatialmodel/crsgeom"
)

// Scenario describes a reproducible generation run, usually loaded
// from a TOML file:
//
//	variant = "polygon"
//	count = 10
//	seed = 42
//	ringPoints = 8
//	holes = 1
//	[extent]
//	minX = -10.0
//	minY = -10.0
//	maxX = 10.0
//	maxY = 10.0
type Scenario struct {
	// Variant names the geometry variant to generate: "point",
	// "multipoint", "linestring", "multilinestring", "polygon",
	// "multipolygon" or "collection".
	Variant string `toml:"variant"`
	// Count is the number of geometries to generate.
	Count int `toml:"count"`
	// Seed seeds the deterministic stream. Zero means OS entropy.
	Seed int64 `toml:"seed"`
	// RingPoints is the number of points per ring or line.
	RingPoints int `toml:"ringPoints"`
	// Holes is the number of holes per polygon.
	Holes int `toml:"holes"`
	// Extent is the generation region.
	Extent Extent `toml:"extent"`
}

// LoadScenario reads a Scenario from a TOML file.
func LoadScenario(filename string) (Scenario, error) {
	var s Scenario
	if _, err := toml.DecodeFile(filename, &s); err != nil {
		return s, fmt.Errorf("randgeom: reading scenario %s: %w", filename, err)
	}
	if s.Count <= 0 {
		s.Count = 1
	}
	if s.RingPoints <= 0 {
		s.RingPoints = 6
	}
	if s.Extent == (Extent{}) {
		s.Extent = Extent{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}
	}
	return s, nil
}

// Run generates the geometries the scenario describes, stamping them
// with the given reference system.
func Run[C crsgeom.CRS](s Scenario, crs C) ([]crsgeom.Geometry[crsgeom.Point[C]], error) {
	g := New(s.Seed)
	if s.Seed == 0 {
		g = NewAuto()
	}
	out := make([]crsgeom.Geometry[crsgeom.Point[C]], s.Count)
	for i := range out {
		geom, err := Geometry(g, crs, s.Extent, s.Variant, s.RingPoints, s.Holes)
		if err != nil {
			return nil, err
		}
		out[i] = geom
	}
	return out, nil
}
