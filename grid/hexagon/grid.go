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

// Package hexagon implements the ISEA3H aperture-3 hexagon grid: offset
// (row, column) addressed cells whose pointy-top/flat-top orientation
// alternates by resolution parity. Ported from
// original_source/EAGGR/Src/Model/IGrid/IOffsetGrid/Aperture3HexagonGrid.cpp,
// including its axial/cube rounding (credited there to
// redblobgames.com/grids/hexagons), its resolution-0-is-the-whole-face
// special case, and its parity-dependent "base child plus six neighbours"
// child layout.
package hexagon

import (
	"fmt"
	"math"

	"github.com/icodggs/dggs/cell"
)

const aperture = 3

// Grid implements cell.Grid for ISEA3H.
type Grid struct{}

var _ cell.Grid = (*Grid)(nil)

// New constructs a hexagon grid.
func New() *Grid { return &Grid{} }

func (g *Grid) Aperture() int    { return aperture }
func (g *Grid) MaxChildren() int { return 7 }
func (g *Grid) MaxSiblings() int { return 6 }
func (g *Grid) MaxParents() int  { return 3 }

// isPointyTopGrid reports the offset-coordinate convention in force at
// resolution: even resolutions are pointy-top (odd-r offset), odd
// resolutions flat-top (odd-q offset).
func isPointyTopGrid(resolution int) bool { return resolution%2 == 0 }

// isHorizontalOrientation selects between the two parity-dependent
// GetChildren layouts; it is keyed the opposite way to isPointyTopGrid,
// matching the original's separate IsHorizontalOrientation helper.
func isHorizontalOrientation(resolution int) bool { return resolution%2 == 1 }

func edgeLength(resolution int) float64 {
	const edgeLengthAtFirstRes = 1.0 / 3.0
	return edgeLengthAtFirstRes / math.Pow(math.Sqrt(aperture), float64(resolution-1))
}

func accuracyFromResolution(resolution int) float64 {
	if resolution == 0 {
		return 1.0
	}
	return (2.0 / 3.0) / math.Pow(aperture, float64(resolution-1))
}

// roundToNearestCube snaps fractional cube coordinates to the nearest
// valid cube cell, fixing up whichever axis rounded furthest so x+y+z
// stays zero.
func roundToNearestCube(x, y, z float64) (int, int, int) {
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(rx-x), math.Abs(ry-y), math.Abs(rz-z)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return int(rx), int(ry), int(rz)
}

// rowAndColumn converts a face coordinate to offset (row, column) at
// resolution, via fractional axial coordinates and cube rounding.
func rowAndColumn(resolution int, x, y float64) (row, col int) {
	if resolution == 0 {
		return 0, 0
	}
	size := edgeLength(resolution)
	pointyTop := isPointyTopGrid(resolution)

	var q, r float64
	if pointyTop {
		q = (x*math.Sqrt(3)/3.0 - y/3.0) / size
		r = y * (2.0 / 3.0) / size
	} else {
		q = x * (2.0 / 3.0) / size
		r = (-x/3.0 + (math.Sqrt(3)/3.0)*y) / size
	}

	cx, _, cz := roundToNearestCube(q, (-1.0*q)-r, r)

	if pointyTop {
		col = cx + (cz-(cz&1))/2
		row = cz
	} else {
		col = cx
		row = cz + (cx-(cx&1))/2
	}
	return row, col
}

// faceOffset is rowAndColumn's inverse: the (x, y) centre of (row, col) at
// resolution.
func faceOffset(resolution, row, col int) (x, y float64) {
	if resolution == 0 {
		return 0, 0
	}
	size := edgeLength(resolution)
	if isPointyTopGrid(resolution) {
		x = size * math.Sqrt(3) * (float64(col) + 0.5*float64(row&1))
		y = size * (3.0 / 2.0) * float64(row)
	} else {
		x = size * (3.0 / 2.0) * float64(col)
		y = size * math.Sqrt(3) * (float64(row) + 0.5*float64(col&1))
	}
	return x, y
}

// CellFromFaceCoordinate converts fc to the hexagon containing it at
// resolution.
func (g *Grid) CellFromFaceCoordinate(fc cell.FaceCoordinate, resolution int) (cell.Cell, error) {
	if resolution < 0 {
		return cell.Cell{}, fmt.Errorf("hexagon grid: negative resolution %d", resolution)
	}
	row, col := rowAndColumn(resolution, fc.X, fc.Y)
	return cell.NewHexagonCell(fc.Face, resolution, row, col, cell.LocationFaceInterior), nil
}

// FaceCoordinateFromCell recovers c's centre and accuracy fraction.
func (g *Grid) FaceCoordinateFromCell(c cell.Cell) (cell.FaceCoordinate, error) {
	if c.Kind != cell.KindHexagon {
		return cell.FaceCoordinate{}, fmt.Errorf("hexagon grid: not a hexagon cell")
	}
	x, y := faceOffset(c.Resolution, c.Row, c.Col)
	return cell.FaceCoordinate{
		Face:     c.Face,
		X:        x,
		Y:        y,
		Accuracy: accuracyFromResolution(c.Resolution),
	}, nil
}

// GetParents offsets c's centre by a small distance in three directions
// (10°, 130°, 250° from +x) and re-indexes each at c.Resolution-1; two
// offsets landing on the same cell collapse to a single parent.
func (g *Grid) GetParents(c cell.Cell) ([]cell.Cell, error) {
	if c.Kind != cell.KindHexagon {
		return nil, fmt.Errorf("hexagon grid: not a hexagon cell")
	}
	if c.Resolution == 0 {
		return nil, fmt.Errorf("hexagon grid: resolution 0 cell has no parent")
	}
	x, y := faceOffset(c.Resolution, c.Row, c.Col)
	offsetDistance := math.Sqrt(accuracyFromResolution(c.Resolution)) / 10.0

	at := func(bearingDeg float64) (int, int) {
		rad := bearingDeg * math.Pi / 180
		return rowAndColumn(c.Resolution-1, x+offsetDistance*math.Cos(rad), y+offsetDistance*math.Sin(rad))
	}

	row0, col0 := at(10)
	parents := []cell.Cell{cell.NewHexagonCell(c.Face, c.Resolution-1, row0, col0, cell.LocationFaceInterior)}

	row1, col1 := at(130)
	if row1 != row0 || col1 != col0 {
		parents = append(parents, cell.NewHexagonCell(c.Face, c.Resolution-1, row1, col1, cell.LocationFaceInterior))
		row2, col2 := at(250)
		parents = append(parents, cell.NewHexagonCell(c.Face, c.Resolution-1, row2, col2, cell.LocationFaceInterior))
	}
	return parents, nil
}

// GetChildren returns c's seven children: a base child plus its six
// neighbours, per the orientation-dependent layout in
// Aperture3HexagonGrid.cpp.
func (g *Grid) GetChildren(c cell.Cell) ([]cell.Cell, error) {
	if c.Kind != cell.KindHexagon {
		return nil, fmt.Errorf("hexagon grid: not a hexagon cell")
	}
	horizontal := isHorizontalOrientation(c.Resolution)
	row, col := c.Row, c.Col
	childRes := c.Resolution + 1

	var baseRow, baseCol int
	if horizontal {
		baseRow = row*2 + mod(col, 2)
		baseCol = (col-mod(col, 2))*3/2 + mod(col, 2)
	} else {
		baseRow = (row-mod(row, 2))*3/2 + mod(row, 2)
		baseCol = col*2 + mod(row, 2)
	}

	offsets := [][2]int{
		{0, 0},
		{-1, 0},
		{0, 1},
		{1, 0},
		{0, -1},
	}
	if horizontal {
		if col&1 == 0 {
			offsets = append(offsets, [2]int{1, -1}, [2]int{-1, -1})
		} else {
			offsets = append(offsets, [2]int{-1, 1}, [2]int{1, 1})
		}
	} else {
		if row&1 == 0 {
			offsets = append(offsets, [2]int{-1, 1}, [2]int{-1, -1})
		} else {
			offsets = append(offsets, [2]int{1, 1}, [2]int{1, -1})
		}
	}

	children := make([]cell.Cell, len(offsets))
	for i, off := range offsets {
		children[i] = cell.NewHexagonCell(c.Face, childRes, baseRow+off[0], baseCol+off[1], cell.LocationFaceInterior)
	}
	return children, nil
}

// mod is truncated-toward-zero modulo, matching C++'s % for the
// parent-parity arithmetic this package ports.
func mod(a, b int) int { return a % b }

// GetVertices returns c's vertices: the three face corners at resolution
// 0, or six hexagon corners at edge-length distance from the centre
// otherwise.
func (g *Grid) GetVertices(c cell.Cell) ([]cell.FaceCoordinate, error) {
	if c.Kind != cell.KindHexagon {
		return nil, fmt.Errorf("hexagon grid: not a hexagon cell")
	}
	if c.Resolution == 0 {
		return []cell.FaceCoordinate{
			{Face: c.Face, X: 0, Y: math.Sqrt(3) / 3},
			{Face: c.Face, X: -0.5, Y: -math.Sqrt(3) / 6},
			{Face: c.Face, X: 0.5, Y: -math.Sqrt(3) / 6},
		}, nil
	}

	cx, cy := faceOffset(c.Resolution, c.Row, c.Col)
	distance := edgeLength(c.Resolution)
	bearing := 0.0
	if c.Orientation == cell.OrientationRotated {
		bearing = 30.0
	}
	bearingRad := bearing * math.Pi / 180
	step := 60.0 * math.Pi / 180

	out := make([]cell.FaceCoordinate, 6)
	for i := 0; i < 6; i++ {
		out[i] = cell.FaceCoordinate{
			Face: c.Face,
			X:    cx + distance*math.Cos(bearingRad),
			Y:    cy + distance*math.Sin(bearingRad),
		}
		bearingRad += step
	}
	return out, nil
}

// ResolutionFromAccuracy returns the resolution whose accuracy most
// closely matches faceAreaFraction, preferring the finer resolution on an
// exact tie.
func (g *Grid) ResolutionFromAccuracy(faceAreaFraction float64) (int, error) {
	if faceAreaFraction <= 0 {
		return 0, fmt.Errorf("hexagon grid: accuracy must be > 0")
	}
	if faceAreaFraction >= 1.0 {
		return 0, nil
	}
	const resolution1Area = 2.0 / 3.0
	inverseAccuracy := resolution1Area / faceAreaFraction
	resolutionForAccuracy := math.Log(inverseAccuracy)/math.Log(aperture) + 1.0

	ceilRes := math.Ceil(resolutionForAccuracy)
	floorRes := math.Floor(resolutionForAccuracy)

	lowerAccuracyBound := accuracyFromResolution(int(ceilRes))
	upperAccuracyBound := accuracyFromResolution(int(floorRes))

	lowerBoundDelta := faceAreaFraction - lowerAccuracyBound
	upperBoundDelta := upperAccuracyBound - faceAreaFraction

	if upperBoundDelta >= lowerBoundDelta {
		return int(ceilRes), nil
	}
	return int(floorRes), nil
}

// AccuracyFromResolution is ResolutionFromAccuracy's inverse.
func (g *Grid) AccuracyFromResolution(resolution int) (float64, error) {
	if resolution < 0 {
		return 0, fmt.Errorf("hexagon grid: resolution must be >= 0")
	}
	return accuracyFromResolution(resolution), nil
}
