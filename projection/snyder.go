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

// Package projection implements Snyder's equal-area polyhedral projection
// between a point on the authalic sphere and a planar (face, x, y, area)
// coordinate on one face of the icosahedron in dggs/polyhedron. Ported
// equation-for-equation from
// original_source/EAGGR/Src/Model/IProjection/Snyder.cpp; the file and
// equation numbers in the comments below refer to that source (itself
// implementing Snyder, 1992).
package projection

import (
	"fmt"
	"math"

	"github.com/icodggs/dggs/cell"
	"github.com/icodggs/dggs/polyhedron"
)

// edgeMarginRads keeps points near a face boundary from flip-flopping
// between faces due to accumulated floating-point error.
const edgeMarginRads = 1e-10

// newtonToleranceRads is the inverse-iteration convergence tolerance.
const newtonToleranceRads = 1e-9

const newtonMaxIterations = 50

// SpherePoint is a point on the authalic sphere, in degrees, with an
// accuracy expressed as a spherical-cap half-angle in degrees.
type SpherePoint struct {
	LatDeg, LonDeg   float64
	AccuracyAngleDeg float64
}

func cot(x float64) float64 {
	s := math.Sin(x)
	if s == 0 {
		return math.Inf(1)
	}
	return math.Cos(x) / s
}

func oneMinusCos(x float64) float64 {
	v := 1 - math.Cos(x)
	if v == 0 && x != 0 {
		return x * x / 2
	}
	return v
}

// errNoFace reports that no icosahedron face accepted the point; this
// should be geometrically impossible for any point actually on the sphere.
func errNoFace(lat, lon float64) error {
	return fmt.Errorf("impossible transform: point (%g, %g) is not located on any face", lat, lon)
}

// adjustAz shifts az into [0, 2*(pi/2 - theta)] by adding/subtracting
// multiples of that range, and returns the total adjustment so the caller
// can undo it later (Snyder.cpp AdjustAz).
func adjustAz(theta, az float64) (adjusted, adjustment float64) {
	span := 2.0 * (math.Pi/2 - theta)
	count := 0
	for az < 0.0 {
		az += span
		count++
	}
	for az > span {
		az -= span
		count--
	}
	return az, span * float64(count)
}

// Forward projects a point on the sphere onto the face whose Snyder
// classification accepts it.
func Forward(p SpherePoint) (cell.FaceCoordinate, error) {
	phi := p.LatDeg * math.Pi / 180
	lambda := p.LonDeg * math.Pi / 180

	g, gCap, theta := polyhedron.G, polyhedron.GCap, polyhedron.Theta

	var z, az, azAdjustment, q float64
	faceIndex := -1

	for idx := 0; idx < polyhedron.NumFaces; idx++ {
		face := polyhedron.Faces[idx]
		phi0, lambda0 := face.CentreRads()

		// Equation 13
		zc := math.Acos(clamp(sin(phi0)*sin(phi)+cos(phi0)*cos(phi)*cos(lambda-lambda0), -1, 1))
		if zc > g+edgeMarginRads {
			continue
		}

		// Equation 14
		azc := math.Atan2(
			cos(phi)*sin(lambda-lambda0),
			cos(phi0)*sin(phi)-sin(phi0)*cos(phi)*cos(lambda-lambda0),
		)
		azc += face.OrientationRads()
		azAdjusted, adjustment := adjustAz(theta, azc)

		// Equation 9
		qc := math.Atan(math.Tan(g) / (cos(azAdjusted) + sin(azAdjusted)*cot(theta)))
		if zc > qc+edgeMarginRads {
			continue
		}

		z, az, azAdjustment, q = zc, azAdjusted, adjustment, qc
		faceIndex = idx
		break
	}

	if faceIndex < 0 {
		return cell.FaceCoordinate{}, errNoFace(p.LatDeg, p.LonDeg)
	}

	rPrime := polyhedron.RPrimeOverR

	// Equation 6
	h := math.Acos(clamp(sin(az)*sin(gCap)*cos(g)-cos(az)*cos(gCap), -1, 1))
	// Equation 7
	ag := az + gCap + h - math.Pi
	// Equation 8
	azPrime := math.Atan2(2.0*ag, rPrime*rPrime*math.Tan(g)*math.Tan(g)-2.0*ag*cot(theta))
	// Equation 10
	dPrime := rPrime * math.Tan(g) / (cos(azPrime) + sin(azPrime)*cot(theta))
	// Equation 11
	f := dPrime / (2.0 * rPrime * math.Sin(q/2.0))
	// Equation 12
	rho := 2.0 * rPrime * f * math.Sin(z/2.0)

	azPrime -= azAdjustment

	x := rho * sin(azPrime)
	y := rho * cos(azPrime)

	edgeOverR := polyhedron.EdgeLengthOverR
	scale := 1 / edgeOverR

	return cell.FaceCoordinate{
		Face:     faceIndex,
		X:        x * scale,
		Y:        y * scale,
		Accuracy: accuracyArea(p.AccuracyAngleDeg),
	}, nil
}

// Inverse recovers a sphere point from a planar face coordinate.
func Inverse(fc cell.FaceCoordinate) (SpherePoint, error) {
	if fc.Face < 0 || fc.Face >= polyhedron.NumFaces {
		return SpherePoint{}, fmt.Errorf("unknown face index (%d)", fc.Face)
	}
	face := polyhedron.Faces[fc.Face]

	edgeOverR := polyhedron.EdgeLengthOverR
	x := fc.X * edgeOverR
	y := fc.Y * edgeOverR

	g, gCap, theta := polyhedron.G, polyhedron.GCap, polyhedron.Theta
	rPrime := polyhedron.RPrimeOverR

	// Equation 17
	azPrime := math.Atan2(x, y)
	// Equation 18
	rho := math.Sqrt(x*x + y*y)

	azAdjusted, azAdjustment := adjustAz(theta, azPrime)

	// Equation 19
	ag := rPrime * rPrime * math.Tan(g) * math.Tan(g) / (2 * (cot(azAdjusted) + cot(theta)))

	approxAz := azAdjusted
	var deltaAz float64
	for i := 0; i < newtonMaxIterations; i++ {
		h := math.Acos(clamp(sin(approxAz)*sin(gCap)*cos(g)-cos(approxAz)*cos(gCap), -1, 1))
		fnAz := ag - gCap - h - approxAz + math.Pi
		derivative := (cos(approxAz)*sin(gCap)*cos(g)+sin(approxAz)*cos(gCap))/math.Sin(h) - 1.0
		deltaAz = -fnAz / derivative
		approxAz += deltaAz
		if math.Abs(deltaAz) <= newtonToleranceRads {
			break
		}
	}
	az := approxAz

	// Equation 9
	q := math.Atan(math.Tan(g) / (cos(az) + sin(az)*cot(theta)))
	// Equation 10 (uses the *un-iterated* azPrime, matching the original)
	dPrime := rPrime * math.Tan(g) / (cos(azAdjusted) + sin(azAdjusted)*cot(theta))
	// Equation 11
	f := dPrime / (2.0 * rPrime * math.Sin(q/2.0))
	// Equation 23
	z := 2 * math.Asin(clamp(rho/(2*rPrime*f), -1, 1))

	az -= azAdjustment
	az -= face.OrientationRads()

	phi0, lambda0 := face.CentreRads()
	phi := math.Asin(clamp(sin(phi0)*math.Cos(z)+cos(phi0)*math.Sin(z)*cos(az), -1, 1))
	lambda := lambda0 + math.Atan2(sin(az)*math.Sin(z)*cos(phi0), math.Cos(z)-sin(phi0)*sin(phi))

	latDeg := phi * 180 / math.Pi
	lonDeg := wrapLongitudeDeg(lambda * 180 / math.Pi)

	return SpherePoint{
		LatDeg:           latDeg,
		LonDeg:           lonDeg,
		AccuracyAngleDeg: accuracyAngle(fc.Accuracy),
	}, nil
}

// accuracyArea converts a spherical-cap half-angle (degrees) to a fraction
// of one face's area, capped at 1 (Snyder.cpp GetAccuracyArea).
func accuracyArea(angleDeg float64) float64 {
	rads := angleDeg * math.Pi / 180
	fracSphere := 0.5 * oneMinusCos(rads)
	fracFace := fracSphere * float64(polyhedron.NumFaces)
	if fracFace > 1.0 {
		fracFace = 1.0
	}
	return fracFace
}

// accuracyAngle inverts accuracyArea (Snyder.cpp GetAccuracyAngle).
func accuracyAngle(faceAreaFraction float64) float64 {
	rads := math.Acos(clamp(1.0-2.0*faceAreaFraction/float64(polyhedron.NumFaces), -1, 1))
	return rads * 180 / math.Pi
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

func sin(x float64) float64 { return math.Sin(x) }
func cos(x float64) float64 { return math.Cos(x) }

func wrapLongitudeDeg(lonDeg float64) float64 {
	rad := lonDeg * math.Pi / 180
	wrapped := math.Mod(rad+math.Pi, 2*math.Pi)
	if wrapped <= 0 {
		wrapped += 2 * math.Pi
	}
	return (wrapped - math.Pi) * 180 / math.Pi
}
