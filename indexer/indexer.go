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

// Package indexer binds one cell.Grid (triangle or hexagon) and the
// Snyder projection together behind a single set of point/cell
// operations, the way isbang-h3go's top-level functions bind a face
// selection and an H3Index bit layout behind one API. The hierarchical
// indexer wraps dggs/grid/triangle; the offset indexer wraps
// dggs/grid/hexagon.
package indexer

import (
	"github.com/icodggs/dggs/cell"
	"github.com/icodggs/dggs/projection"
	"github.com/icodggs/dggs/resolution"
)

// MaxResolution is the deepest resolution this indexer accepts when
// creating a cell from a point or from accuracy; above it, CellFromPoint
// fails with a resolutionError.
const MaxResolution = cell.MaxResolution

// Indexer binds a grid to the projection and exposes spec-level
// operations in terms of Cell and spherical points instead of raw face
// coordinates.
type Indexer struct {
	Grid cell.Grid
	Kind cell.Kind
}

// New constructs an Indexer over grid, tagging cells it creates with kind
// so Parse can disambiguate a triangle payload from a hexagon one.
func New(grid cell.Grid, kind cell.Kind) *Indexer {
	return &Indexer{Grid: grid, Kind: kind}
}

type resolutionError struct {
	resolution int
}

func (e *resolutionError) Error() string {
	return "requested resolution exceeds the maximum this indexer accepts"
}

// CellFromPoint projects p onto its face and descends the grid to the
// resolution implied by p's accuracy angle; sphereRadiusM is not used.
func (ix *Indexer) CellFromPoint(p projection.SpherePoint, sphereRadiusM float64) (cell.Cell, error) {
	fc, err := projection.Forward(p)
	if err != nil {
		return cell.Cell{}, err
	}
	res, err := ix.Grid.ResolutionFromAccuracy(fc.Accuracy)
	if err != nil {
		return cell.Cell{}, err
	}
	if res > MaxResolution {
		return cell.Cell{}, &resolutionError{resolution: res}
	}
	return ix.Grid.CellFromFaceCoordinate(fc, res)
}

// PointFromCell recovers the spherical point at the centre of c.
func (ix *Indexer) PointFromCell(c cell.Cell) (projection.SpherePoint, error) {
	fc, err := ix.Grid.FaceCoordinateFromCell(c)
	if err != nil {
		return projection.SpherePoint{}, err
	}
	return projection.Inverse(fc)
}

// CreateCell parses id as this indexer's cell kind, rejecting any
// resolution above MaxResolution.
func (ix *Indexer) CreateCell(id string) (cell.Cell, error) {
	c, err := cell.Parse(id, ix.Kind)
	if err != nil {
		return cell.Cell{}, err
	}
	if c.Resolution > MaxResolution {
		return cell.Cell{}, &resolutionError{resolution: c.Resolution}
	}
	return c, nil
}

// GetParents, GetChildren, GetVertices delegate to the bound grid.
func (ix *Indexer) GetParents(c cell.Cell) ([]cell.Cell, error)          { return ix.Grid.GetParents(c) }
func (ix *Indexer) GetChildren(c cell.Cell) ([]cell.Cell, error)         { return ix.Grid.GetChildren(c) }
func (ix *Indexer) GetVertices(c cell.Cell) ([]cell.FaceCoordinate, error) {
	return ix.Grid.GetVertices(c)
}

// ResolutionFromAccuracy and AccuracyFromResolution expose the
// grid-specific accuracy mapping through resolution.FromAccuracy/ToAccuracy.
func (ix *Indexer) ResolutionFromAccuracy(accuracyM2, sphereRadiusM float64) (int, error) {
	return resolution.FromAccuracy(ix.Grid, accuracyM2, sphereRadiusM)
}

func (ix *Indexer) AccuracyFromResolution(res int, sphereRadiusM float64) (float64, error) {
	return resolution.ToAccuracy(ix.Grid, res, sphereRadiusM)
}
