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

// Kind identifies a family of coordinate reference systems.
type Kind int

const (
	// PlanarKind is an abstract flat plane with no georeference.
	PlanarKind Kind = iota + 1
	// GeodeticKind is longitude/latitude on the WGS84 sphere.
	GeodeticKind
	// ProjectedKind is a named flat projection of geodetic coordinates.
	ProjectedKind
)

func (k Kind) String() string {
	switch k {
	case PlanarKind:
		return "planar"
	case GeodeticKind:
		return "geodetic"
	case ProjectedKind:
		return "projected"
	default:
		return "unknown"
	}
}

// CRS is the constraint satisfied by coordinate reference system markers.
// The marker is part of the static type of every Point and geometry built
// from it, so an operation mixing, for example, planar and geodetic
// coordinates does not compile. Two Projected markers only differ by their
// reference string, which is compared at run time (see ErrCRSMismatch).
type CRS interface {
	comparable
	Kind() Kind
	// Ref is the proj4-style reference string identifying the system to a
	// transform provider. It is empty for Planar, which has no georeference.
	Ref() string
}

// Planar is the CRS marker for an abstract flat plane. Distances and areas
// are Euclidean and unitless.
type Planar struct{}

// Kind returns PlanarKind.
func (Planar) Kind() Kind { return PlanarKind }

// Ref returns an empty string: a bare plane cannot be described to a
// transform provider.
func (Planar) Ref() string { return "" }

func (Planar) String() string { return "planar" }

// LongLatRef is the transform-provider reference for geodetic coordinates.
const LongLatRef = "+proj=longlat +datum=WGS84 +no_defs"

// Geodetic is the CRS marker for longitude/latitude coordinates on the
// WGS84 sphere. A point's X is longitude and Y is latitude, both in
// degrees. Distances and areas are measured in meters on the sphere.
type Geodetic struct{}

// Kind returns GeodeticKind.
func (Geodetic) Kind() Kind { return GeodeticKind }

// Ref returns the proj4 string for unprojected WGS84 coordinates.
func (Geodetic) Ref() string { return LongLatRef }

func (Geodetic) String() string { return "geodetic" }

// Projected is the CRS marker for coordinates in a named flat projection.
// Euclidean formulas apply, and the projection is remembered by its
// proj4 reference string so geometries can be round-tripped through a
// transform provider.
type Projected struct {
	// Proj is the proj4 reference string for the projection,
	// e.g. "+proj=merc +a=6378137 +b=6378137".
	Proj string
}

// NewProjected returns a Projected marker for the given proj4 string.
func NewProjected(proj string) Projected { return Projected{Proj: proj} }

// Kind returns ProjectedKind.
func (Projected) Kind() Kind { return ProjectedKind }

// Ref returns the projection's proj4 reference string.
func (p Projected) Ref() string { return p.Proj }

func (p Projected) String() string { return "projected (" + p.Proj + ")" }
