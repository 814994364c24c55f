// Copyright 2024 The DGGS Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dggs

import "math"

// Radians is an angle tagged as radians, kept distinct from Degrees so the
// two are never implicitly interchanged.
type Radians float64

// Degrees is an angle tagged as degrees.
type Degrees float64

// ToRadians converts a Degrees value to Radians.
func (d Degrees) ToRadians() Radians { return Radians(degToRad(float64(d))) }

// ToDegrees converts a Radians value to Degrees.
func (r Radians) ToDegrees() Degrees { return Degrees(radToDeg(float64(r))) }

// oneMinusCos computes 1 - cos(x), falling back to the small-angle
// approximation x^2/2 when cancellation would otherwise return exactly zero
// for a non-zero x.
func oneMinusCos(x Radians) float64 {
	v := 1 - math.Cos(float64(x))
	if v == 0 && x != 0 {
		return float64(x) * float64(x) / 2
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapLongitude wraps a longitude in degrees into (-180, 180].
func WrapLongitude(lonDeg float64) float64 {
	return radToDeg(WrapLongitudeRads(degToRad(lonDeg)))
}

// WrapLongitudeRads wraps a longitude in radians into (-pi, pi].
func WrapLongitudeRads(lon float64) float64 {
	wrapped := math.Mod(lon+mPi, m2Pi)
	if wrapped <= 0 {
		wrapped += m2Pi
	}
	return wrapped - mPi
}
