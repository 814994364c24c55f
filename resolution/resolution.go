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

// Package resolution converts a requested accuracy in square metres into
// the resolution of a particular grid, and back. The cap-area math lives
// here; the per-aperture tie-break rule lives in each grid's own
// ResolutionFromAccuracy, mirroring the original's IGrid::GetIndexFromAccuracy
// / GetAccuracyFromIndex naming duality.
package resolution

import (
	"math"

	"github.com/icodggs/dggs/cell"
)

const numFaces = 20

// FromAccuracy maps a requested accuracy in square metres on a sphere of
// the given radius to a resolution of grid, by grid's own
// ResolutionFromAccuracy rule.
func FromAccuracy(grid cell.Grid, accuracyM2, sphereRadiusM float64) (int, error) {
	frac := faceAreaFraction(accuracyM2, sphereRadiusM)
	return grid.ResolutionFromAccuracy(frac)
}

// ToAccuracy is FromAccuracy's inverse: the accuracy, in square metres,
// delivered by resolution.
func ToAccuracy(grid cell.Grid, resolution int, sphereRadiusM float64) (float64, error) {
	frac, err := grid.AccuracyFromResolution(resolution)
	if err != nil {
		return 0, err
	}
	return accuracyM2FromFaceAreaFraction(frac, sphereRadiusM), nil
}

// faceAreaFraction converts a spherical-cap area (m²) into a fraction of
// one icosahedron face's area: first the cap's fraction of the whole
// sphere, then scaled up by the face count and clamped to [0, 1].
func faceAreaFraction(accuracyM2, sphereRadiusM float64) float64 {
	sphereAreaM2 := 4 * math.Pi * sphereRadiusM * sphereRadiusM
	fracSphere := accuracyM2 / sphereAreaM2
	fracFace := fracSphere * numFaces
	if fracFace > 1.0 {
		fracFace = 1.0
	}
	if fracFace < 0 {
		fracFace = 0
	}
	return fracFace
}

func accuracyM2FromFaceAreaFraction(faceAreaFraction, sphereRadiusM float64) float64 {
	sphereAreaM2 := 4 * math.Pi * sphereRadiusM * sphereRadiusM
	return (faceAreaFraction / numFaces) * sphereAreaM2
}
