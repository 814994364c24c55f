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

// Package triangle implements the ISEA4T aperture-4 triangle grid: each
// face subdivides into four sub-triangles per level, addressed by a
// base-4 digit path. Grounded on
// original_source/EAGGR/Src/Model/IGrid/IHierarchicalGrid/Aperture4TriangleGrid.cpp,
// shaped to satisfy the cell.Grid contract the way isbang-h3go's faceijk.go
// implements H3's per-face subdivision.
package triangle

import (
	"fmt"
	"math"

	"github.com/icodggs/dggs/cell"
)

var sqrt3 = math.Sqrt(3)

// faceVertices are the face's three corners at resolution 0, in
// face-coordinate units (edge length 1), centred on the face centroid.
var faceVertices = [3][2]float64{
	{0, 2 * sqrt3 / 2 / 3},
	{-0.5, -sqrt3 / 2 / 3},
	{0.5, -sqrt3 / 2 / 3},
}

// Grid implements cell.Grid for ISEA4T.
type Grid struct{}

var _ cell.Grid = (*Grid)(nil)

// New constructs a triangle grid.
func New() *Grid { return &Grid{} }

func (g *Grid) Aperture() int    { return 4 }
func (g *Grid) MaxChildren() int { return 4 }
func (g *Grid) MaxSiblings() int { return 3 }
func (g *Grid) MaxParents() int  { return 1 }

func midpoint(a, b [2]float64) [2]float64 {
	return [2]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

// subdivide splits a triangle into its four children, in digit order: 0 is
// the central, inverted triangle; 1, 2, 3 are the corners nearest v[0],
// v[1], v[2].
func subdivide(v [3][2]float64) [4][3][2]float64 {
	mAB := midpoint(v[0], v[1])
	mBC := midpoint(v[1], v[2])
	mCA := midpoint(v[2], v[0])
	return [4][3][2]float64{
		{mAB, mBC, mCA},
		{v[0], mAB, mCA},
		{v[1], mBC, mAB},
		{v[2], mCA, mBC},
	}
}

func centroid(v [3][2]float64) (float64, float64) {
	return (v[0][0] + v[1][0] + v[2][0]) / 3, (v[0][1] + v[1][1] + v[2][1]) / 3
}

// sign is twice the signed area of (p, a, b), used to test which side of
// edge a-b the point p falls on.
func sign(p, a, b [2]float64) float64 {
	return (p[0]-b[0])*(a[1]-b[1]) - (a[0]-b[0])*(p[1]-b[1])
}

func pointInTriangle(p [2]float64, v [3][2]float64) bool {
	d1 := sign(p, v[0], v[1])
	d2 := sign(p, v[1], v[2])
	d3 := sign(p, v[2], v[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func verticesForDigits(digits []byte) [3][2]float64 {
	v := faceVertices
	for _, d := range digits {
		v = subdivide(v)[d]
	}
	return v
}

func accuracyFromResolution(resolution int) float64 {
	return 1 / math.Pow(4, float64(resolution))
}

// CellFromFaceCoordinate descends from the whole face to the sub-triangle
// containing fc at resolution, recording one base-4 digit per level.
func (g *Grid) CellFromFaceCoordinate(fc cell.FaceCoordinate, resolution int) (cell.Cell, error) {
	if resolution < 0 {
		return cell.Cell{}, fmt.Errorf("triangle grid: negative resolution %d", resolution)
	}
	p := [2]float64{fc.X, fc.Y}
	v := faceVertices
	digits := make([]byte, 0, resolution)
	for level := 0; level < resolution; level++ {
		children := subdivide(v)
		chosen := -1
		for d := 0; d < 4; d++ {
			if pointInTriangle(p, children[d]) {
				chosen = d
				break
			}
		}
		if chosen < 0 {
			// Floating-point noise put p exactly on a shared edge; fall
			// back to the sub-triangle whose centroid is nearest.
			best, bestDist := 0, math.MaxFloat64
			for d := 0; d < 4; d++ {
				cx, cy := centroid(children[d])
				dist := (cx-p[0])*(cx-p[0]) + (cy-p[1])*(cy-p[1])
				if dist < bestDist {
					best, bestDist = d, dist
				}
			}
			chosen = best
		}
		digits = append(digits, byte(chosen))
		v = children[chosen]
	}
	return cell.NewTriangleCell(fc.Face, digits, cell.LocationFaceInterior), nil
}

// FaceCoordinateFromCell recovers c's centre and accuracy fraction.
func (g *Grid) FaceCoordinateFromCell(c cell.Cell) (cell.FaceCoordinate, error) {
	if c.Kind != cell.KindTriangle {
		return cell.FaceCoordinate{}, fmt.Errorf("triangle grid: not a triangle cell")
	}
	x, y := centroid(verticesForDigits(c.Digits))
	return cell.FaceCoordinate{
		Face:     c.Face,
		X:        x,
		Y:        y,
		Accuracy: accuracyFromResolution(c.Resolution),
	}, nil
}

// GetParents returns c's single parent, formed by dropping the last digit.
func (g *Grid) GetParents(c cell.Cell) ([]cell.Cell, error) {
	if c.Kind != cell.KindTriangle {
		return nil, fmt.Errorf("triangle grid: not a triangle cell")
	}
	if c.Resolution == 0 {
		return nil, fmt.Errorf("triangle grid: resolution 0 cell has no parent")
	}
	return []cell.Cell{cell.NewTriangleCell(c.Face, c.Digits[:len(c.Digits)-1], cell.LocationFaceInterior)}, nil
}

// GetChildren returns c's four children, one per appended digit 0..3.
func (g *Grid) GetChildren(c cell.Cell) ([]cell.Cell, error) {
	if c.Kind != cell.KindTriangle {
		return nil, fmt.Errorf("triangle grid: not a triangle cell")
	}
	children := make([]cell.Cell, 4)
	for d := byte(0); d < 4; d++ {
		digits := make([]byte, len(c.Digits)+1)
		copy(digits, c.Digits)
		digits[len(c.Digits)] = d
		children[d] = cell.NewTriangleCell(c.Face, digits, cell.LocationFaceInterior)
	}
	return children, nil
}

// GetVertices returns c's three corners as face coordinates.
func (g *Grid) GetVertices(c cell.Cell) ([]cell.FaceCoordinate, error) {
	if c.Kind != cell.KindTriangle {
		return nil, fmt.Errorf("triangle grid: not a triangle cell")
	}
	v := verticesForDigits(c.Digits)
	out := make([]cell.FaceCoordinate, 3)
	for i, vertex := range v {
		out[i] = cell.FaceCoordinate{Face: c.Face, X: vertex[0], Y: vertex[1]}
	}
	return out, nil
}

// ResolutionFromAccuracy returns the coarsest resolution whose accuracy
// fraction is at least as fine as faceAreaFraction.
func (g *Grid) ResolutionFromAccuracy(faceAreaFraction float64) (int, error) {
	if faceAreaFraction <= 0 {
		return 0, fmt.Errorf("triangle grid: accuracy must be > 0")
	}
	if faceAreaFraction >= 1 {
		return 0, nil
	}
	r := int(math.Ceil(-math.Log(faceAreaFraction) / math.Log(4)))
	if r < 0 {
		r = 0
	}
	return r, nil
}

// AccuracyFromResolution is ResolutionFromAccuracy's inverse.
func (g *Grid) AccuracyFromResolution(resolution int) (float64, error) {
	if resolution < 0 {
		return 0, fmt.Errorf("triangle grid: resolution must be >= 0")
	}
	return accuracyFromResolution(resolution), nil
}
