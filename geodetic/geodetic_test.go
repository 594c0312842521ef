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

package geodetic

import (
	"math"
	"testing"
)

type ll struct{ lon, lat float64 }

func (p ll) Lon() float64 { return p.lon }
func (p ll) Lat() float64 { return p.lat }

func TestNormalizeLon(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{180, -180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{90, 90},
		{-90, -90},
	}
	for _, test := range tests {
		if have := NormalizeLon(test.in); math.Abs(have-test.want) > 1e-12 {
			t.Errorf("NormalizeLon(%g): want %g but have %g", test.in, test.want, have)
		}
	}
}

func TestDeltaLon(t *testing.T) {
	// The short way across the antimeridian is 20 degrees east.
	if d := DeltaLon(170, -170); math.Abs(d-20) > 1e-12 {
		t.Errorf("want 20 but have %g", d)
	}
	if d := DeltaLon(-170, 170); math.Abs(d+20) > 1e-12 {
		t.Errorf("want -20 but have %g", d)
	}
	if d := DeltaLon(10, 30); math.Abs(d-20) > 1e-12 {
		t.Errorf("want 20 but have %g", d)
	}
}

func TestDistance(t *testing.T) {
	// A quarter meridian is a quarter of the full circumference.
	want := 2 * math.Pi * EarthRadius / 4
	if d := Distance[float64](ll{0, 0}, ll{0, 90}); math.Abs(d-want)/want > 1e-9 {
		t.Errorf("quarter meridian: want %g but have %g", want, d)
	}
	// Antipodal points are half the circumference apart.
	want = math.Pi * EarthRadius
	if d := Distance[float64](ll{0, 0}, ll{180, 0}); math.Abs(d-want)/want > 1e-9 {
		t.Errorf("antipodal: want %g but have %g", want, d)
	}
	if d := Distance[float64](ll{12, 34}, ll{12, 34}); d != 0 {
		t.Errorf("coincident: want 0 but have %g", d)
	}
	a, b := ll{-73.98, 40.75}, ll{2.35, 48.86}
	if d1, d2 := Distance[float64](a, b), Distance[float64](b, a); math.Abs(d1-d2) > 1e-6 {
		t.Errorf("distance is not symmetric: %g != %g", d1, d2)
	}
}

func TestSignedArea(t *testing.T) {
	// A one-degree square at the equator is close to flat, so its
	// area is close to the square of a degree of arc length.
	ccw := []ll{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	deg := math.Pi * EarthRadius / 180
	want := deg * deg
	a := SignedArea[float64](ccw)
	if math.Abs(a-want)/want > 1e-3 {
		t.Errorf("equator square: want about %g but have %g", want, a)
	}
	if a <= 0 {
		t.Errorf("counter-clockwise ring should have positive area; have %g", a)
	}
	// Reversing the ring flips the sign exactly.
	cw := []ll{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	if b := SignedArea[float64](cw); math.Abs(a+b) > 1e-3 {
		t.Errorf("reversal should negate the area: %g vs %g", a, b)
	}
	// A ring straddling the antimeridian keeps its true size.
	wrap := []ll{{179.5, 0}, {-179.5, 0}, {-179.5, 1}, {179.5, 1}}
	if w := SignedArea[float64](wrap); math.Abs(w-a)/a > 1e-3 {
		t.Errorf("antimeridian square: want about %g but have %g", a, w)
	}
}

func TestInDomain(t *testing.T) {
	if !InDomain(0, 0) || !InDomain(-180, -90) || !InDomain(180, 90) {
		t.Error("domain corners should be valid")
	}
	for _, bad := range []ll{{181, 0}, {-181, 0}, {0, 91}, {0, -91}, {math.NaN(), 0}, {0, math.NaN()}} {
		if InDomain(bad.lon, bad.lat) {
			t.Errorf("(%g, %g) should be out of domain", bad.lon, bad.lat)
		}
	}
}
