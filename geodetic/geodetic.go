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
Package geodetic holds the geodetic coordinate capability and
great-circle math on the WGS84 sphere. Longitudes and latitudes are in
degrees, distances in meters, and areas in square meters.

The formulas here are spherical approximations. Results are within about
0.5% of their ellipsoidal equivalents, which is good enough for
measurement; for datum-accurate coordinates use a transform provider.
*/
package geodetic

import (
	"math"

	"github.com/spatialmodel/crsgeom/planar"
)

// EarthRadius is the mean radius of the WGS84 ellipsoid in meters.
const EarthRadius = 6371008.8

// Point is the geodetic coordinate capability: longitude and latitude
// accessors in degrees.
type Point[T planar.Real] interface {
	Lon() T
	Lat() T
}

const deg2rad = math.Pi / 180

// NormalizeLon wraps a longitude in degrees into [-180, 180).
func NormalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

// DeltaLon returns the smallest difference to - from between two
// longitudes in degrees, accounting for the wrap-around at ±180.
// The result is in [-180, 180).
func DeltaLon(from, to float64) float64 {
	return NormalizeLon(to - from)
}

// InDomain reports whether lon and lat are inside the valid geodetic
// domain of ±180 degrees longitude and ±90 degrees latitude.
func InDomain(lon, lat float64) bool {
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

// Distance returns the great-circle distance between a and b in meters,
// computed with the haversine formula. The formula is symmetric in its
// arguments and well conditioned near the antimeridian.
func Distance[T planar.Real, P Point[T]](a, b P) float64 {
	lon1 := float64(a.Lon()) * deg2rad
	lat1 := float64(a.Lat()) * deg2rad
	lon2 := float64(b.Lon()) * deg2rad
	lat2 := float64(b.Lat()) * deg2rad

	sinLat := math.Sin((lat2 - lat1) / 2)
	sinLon := math.Sin((lon2 - lon1) / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	if h > 1 {
		h = 1
	}
	return 2 * EarthRadius * math.Asin(math.Sqrt(h))
}

// SignedArea returns the signed area in square meters of the ring given
// by points, treated as implicitly closed. The sign is positive for
// counter-clockwise traversal. The spherical-excess approximation
// follows Chamberlain & Duquette, "Some algorithms for polygons on a
// sphere" (JPL 2007). Longitude differences are taken along the shorter
// arc, so rings crossing the antimeridian are handled.
func SignedArea[T planar.Real, P Point[T]](points []P) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	prev := points[len(points)-1]
	for _, p := range points {
		dLon := DeltaLon(float64(prev.Lon()), float64(p.Lon())) * deg2rad
		lat1 := float64(prev.Lat()) * deg2rad
		lat2 := float64(p.Lat()) * deg2rad
		sum += dLon * (2 + math.Sin(lat1) + math.Sin(lat2))
		prev = p
	}
	// The raw sum is positive for clockwise traversal; flip it so that
	// counter-clockwise rings have positive area, matching the planar
	// shoelace convention.
	return -sum * EarthRadius * EarthRadius / 2
}
