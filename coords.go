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

// WGS84AccuracyPoint is a geodetic point on the WGS84 ellipsoid, with an
// associated accuracy expressed as a spherical-cap area in square metres.
type WGS84AccuracyPoint struct {
	LatitudeDeg  float64
	LongitudeDeg float64
	AccuracyM2   float64
}

// NewWGS84AccuracyPoint validates and constructs a WGS84AccuracyPoint.
// Latitude/longitude within boundClampToleranceDeg of their bounds are
// clamped silently; outside that tolerance, or for a negative accuracy, it
// fails with MODEL_ERROR.
func NewWGS84AccuracyPoint(latDeg, lonDeg, accuracyM2 float64) (WGS84AccuracyPoint, error) {
	lat, err := clampBound(latDeg, -90, 90, "latitude")
	if err != nil {
		return WGS84AccuracyPoint{}, err
	}
	lon, err := clampBound(lonDeg, -180, 180, "longitude")
	if err != nil {
		return WGS84AccuracyPoint{}, err
	}
	if accuracyM2 < 0 {
		return WGS84AccuracyPoint{}, NewError(MODEL_ERROR, "accuracy must be >= 0, got %g", accuracyM2)
	}
	return WGS84AccuracyPoint{LatitudeDeg: lat, LongitudeDeg: lon, AccuracyM2: accuracyM2}, nil
}

func clampBound(v, lo, hi float64, name string) (float64, error) {
	if v < lo {
		if lo-v <= boundClampToleranceDeg {
			return lo, nil
		}
		return 0, NewError(MODEL_ERROR, "%s %g is below minimum %g", name, v, lo)
	}
	if v > hi {
		if v-hi <= boundClampToleranceDeg {
			return hi, nil
		}
		return 0, NewError(MODEL_ERROR, "%s %g is above maximum %g", name, v, hi)
	}
	return v, nil
}

// SphericalAccuracyPoint is a point on the authalic sphere, with accuracy
// expressed as the half-angle in degrees of a spherical cap.
type SphericalAccuracyPoint struct {
	LatitudeDeg     float64
	LongitudeDeg    float64
	AccuracyAngleDeg float64
}

// AccuracyAngleToAreaM2 converts a spherical-cap half-angle (degrees) to the
// cap's area in square metres on EarthRadiusM.
func AccuracyAngleToAreaM2(halfAngleDeg float64) float64 {
	alpha := Degrees(halfAngleDeg).ToRadians()
	return oneMinusCos(alpha) * 2 * math.Pi * EarthRadiusM * EarthRadiusM
}

// AreaM2ToAccuracyAngle converts a spherical-cap area in square metres to its
// half-angle in degrees. When numerical cancellation drives 1-cos(alpha) to
// exactly zero the small-angle approximation alpha = sqrt(2*A/(2*pi*R^2)) is
// used instead.
func AreaM2ToAccuracyAngle(areaM2 float64) float64 {
	denom := 2 * math.Pi * EarthRadiusM * EarthRadiusM
	ratio := areaM2 / denom
	oneMinus := ratio
	var alpha float64
	if 1-oneMinus == 1 { // cancellation: 1 - cos(alpha) rounded to 0
		alpha = math.Sqrt(2 * ratio)
	} else {
		cosAlpha := 1 - oneMinus
		cosAlpha = clamp(cosAlpha, -1, 1)
		alpha = math.Acos(cosAlpha)
	}
	return radToDeg(alpha)
}

// Point is a (lat, lon) pair in degrees with its own accuracy in square
// metres, used inside Linestring and Polygon rings. The original's
// Wgs84Linestring stores one Wgs84AccuracyPoint per point rather than one
// accuracy for the whole shape; this carries that per-point granularity
// through unchanged. AccuracyM2 is ignored by the lon/lat-only geometry
// builders (GeometryFromPolygon, GeometryFromLinestring), which only need
// position, and is only consulted when a point is indexed into a cell
// (CellLinestringFromLinestring, CellPolygonFromPolygon).
type Point struct {
	LatitudeDeg  float64
	LongitudeDeg float64
	AccuracyM2   float64
}

// Linestring is an ordered, open sequence of points. Equality is
// order-sensitive.
type Linestring struct {
	Points []Point
}

// Ring is one ring of a Polygon: an ordered sequence of points, not
// necessarily explicitly closed by the caller.
type Ring struct {
	Points []Point
}

// Closed returns the ring's points with the first point appended again if
// the caller did not already close it. Predicate evaluation always operates
// on a closed ring.
func (r Ring) Closed() []Point {
	if len(r.Points) == 0 {
		return nil
	}
	first, last := r.Points[0], r.Points[len(r.Points)-1]
	if first.LatitudeDeg == last.LatitudeDeg && first.LongitudeDeg == last.LongitudeDeg {
		return r.Points
	}
	closed := make([]Point, len(r.Points)+1)
	copy(closed, r.Points)
	closed[len(r.Points)] = first
	return closed
}

// Polygon carries exactly one outer ring and zero or more inner (hole)
// rings. Each ring's points carry their own accuracy (see Point), matching
// the original's per-point Wgs84Linestring rather than imposing a single
// polygon-level or ring-level figure.
type Polygon struct {
	Outer  Ring
	Inners []Ring
}

// FaceCoordinate is a planar point on one icosahedron face, normalised so
// that 1.0 equals the face's edge length. It is the façade-facing
// counterpart of cell.FaceCoordinate, which the lower packages pass
// amongst themselves; NewWGS84AccuracyPoint-style callers never need to
// import cell just to describe a point's position on a face.
type FaceCoordinate struct {
	Face     int
	X        float64
	Y        float64
	Accuracy float64 // fraction of the face's area, in [0, 1]
}
