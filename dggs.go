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

import (
	"errors"

	"github.com/icodggs/dggs/cell"
	"github.com/icodggs/dggs/grid/hexagon"
	"github.com/icodggs/dggs/grid/triangle"
	"github.com/icodggs/dggs/indexer"
	"github.com/icodggs/dggs/navigation"
	"github.com/icodggs/dggs/projection"
	"github.com/icodggs/dggs/resolution"
)

// Version is the module's wire-format version string (spec.md §6): four
// bytes plus the caller's own terminator.
const Version = "v2.0"

// GridSelection names one of the two supported grids.
type GridSelection int

const (
	// ISEA4T is the aperture-4 triangle grid.
	ISEA4T GridSelection = iota
	// ISEA3H is the aperture-3 hexagon grid.
	ISEA3H
)

func (g GridSelection) String() string {
	if g == ISEA3H {
		return "ISEA3H"
	}
	return "ISEA4T"
}

// Cell re-exports cell.Cell so callers of this package never need to
// import dggs/cell directly for the common case of holding and comparing
// cell values.
type Cell = cell.Cell

// Location re-exports cell.Location; its four values describe whether a
// single-cell result sits in one face's interior, straddles an edge
// between two faces, sits on a vertex shared by many faces, or is not
// applicable to the query.
type Location = cell.Location

const (
	LocationNotApplicable = cell.LocationUnknown
	LocationOneFace       = cell.LocationFaceInterior
	LocationTwoFaces      = cell.LocationEdge
	LocationManyFaces     = cell.LocationVertex
)

// DGGS is the entry object: one polyhedron (shared across sessions, since
// it is a fixed constant table), one projection, one grid, one indexer.
// Per spec.md §5, a DGGS value is single-threaded: callers must not share
// one across goroutines without external synchronisation, though
// independent DGGS values may be used concurrently from different
// goroutines.
type DGGS struct {
	selection GridSelection
	grid      cell.Grid
	kind      cell.Kind
	indexer   *indexer.Indexer
}

// New constructs a DGGS bound to the requested grid.
func New(selection GridSelection) (*DGGS, error) {
	var g cell.Grid
	var kind cell.Kind
	switch selection {
	case ISEA4T:
		g, kind = triangle.New(), cell.KindTriangle
	case ISEA3H:
		g, kind = hexagon.New(), cell.KindHexagon
	default:
		return nil, NewError(INVALID_PARAM, "unknown grid selection %d", selection)
	}
	return &DGGS{
		selection: selection,
		grid:      g,
		kind:      kind,
		indexer:   indexer.New(g, kind),
	}, nil
}

// Grid reports which grid this session is bound to.
func (d *DGGS) Grid() GridSelection { return d.selection }

// CellFromPoint projects a point already on the authalic sphere onto its
// cell, at the resolution implied by the point's accuracy.
func (d *DGGS) CellFromPoint(p projection.SpherePoint) (Cell, error) {
	c, err := d.indexer.CellFromPoint(p, EarthRadiusM)
	if err != nil {
		return Cell{}, wrapModelError(err)
	}
	c.Location = classifyLocation(faceCoordinateOf(c, d.grid))
	return c, nil
}

// PointFromCell recovers the sphere point at c's centre.
func (d *DGGS) PointFromCell(c Cell) (projection.SpherePoint, error) {
	p, err := d.indexer.PointFromCell(c)
	if err != nil {
		return projection.SpherePoint{}, wrapModelError(err)
	}
	return p, nil
}

// CreateCell parses a textual cell ID, failing with CELL_LENGTH_TOO_LONG
// or MODEL_ERROR as appropriate.
func (d *DGGS) CreateCell(id string) (Cell, error) {
	c, err := d.indexer.CreateCell(id)
	if err != nil {
		return Cell{}, wrapParseError(err)
	}
	return c, nil
}

// CellID renders c as its textual wire-format ID.
func (d *DGGS) CellID(c Cell) (string, error) {
	id, err := cell.Serialize(c)
	if err != nil {
		return "", wrapParseError(err)
	}
	return id, nil
}

// GetParents returns c's 1-3 parent cells.
func (d *DGGS) GetParents(c Cell) ([]Cell, error) {
	parents, err := navigation.GetParents(d.grid, c)
	if err != nil {
		return nil, wrapModelError(err)
	}
	return parents, nil
}

// GetChildren returns c's 4 or 7 child cells.
func (d *DGGS) GetChildren(c Cell) ([]Cell, error) {
	children, err := navigation.GetChildren(d.grid, c)
	if err != nil {
		return nil, wrapModelError(err)
	}
	return children, nil
}

// GetSiblings returns the other children of c's first parent.
func (d *DGGS) GetSiblings(c Cell) ([]Cell, error) {
	siblings, err := navigation.GetSiblings(d.grid, c)
	if err != nil {
		return nil, wrapModelError(err)
	}
	return siblings, nil
}

// GetVertices returns c's boundary vertices as face coordinates.
func (d *DGGS) GetVertices(c Cell) ([]cell.FaceCoordinate, error) {
	v, err := d.grid.GetVertices(c)
	if err != nil {
		return nil, wrapModelError(err)
	}
	return v, nil
}

// BoundingCell finds the deepest cell that is a common ancestor of every
// cell in cells, failing with INVALID_PARAM when the inputs lie on
// different faces.
func (d *DGGS) BoundingCell(cells ...Cell) (Cell, error) {
	c, err := navigation.BoundingCell(d.grid, cells)
	if err != nil {
		if errors.Is(err, navigation.ErrDifferentFaces) || errors.Is(err, navigation.ErrEmpty) {
			return Cell{}, NewError(INVALID_PARAM, "%s", err.Error())
		}
		return Cell{}, wrapModelError(err)
	}
	return c, nil
}

// ResolutionFromAccuracy maps a requested accuracy in square metres to the
// resolution this session's grid would create a cell at.
func (d *DGGS) ResolutionFromAccuracy(accuracyM2 float64) (int, error) {
	res, err := resolution.FromAccuracy(d.grid, accuracyM2, EarthRadiusM)
	if err != nil {
		return 0, wrapModelError(err)
	}
	return res, nil
}

// AccuracyFromResolution is ResolutionFromAccuracy's inverse.
func (d *DGGS) AccuracyFromResolution(res int) (float64, error) {
	area, err := resolution.ToAccuracy(d.grid, res, EarthRadiusM)
	if err != nil {
		return 0, wrapModelError(err)
	}
	return area, nil
}

func faceCoordinateOf(c Cell, g cell.Grid) cell.FaceCoordinate {
	fc, err := g.FaceCoordinateFromCell(c)
	if err != nil {
		return cell.FaceCoordinate{Face: c.Face}
	}
	return fc
}

func wrapModelError(err error) error {
	if err == nil {
		return nil
	}
	if derr, ok := err.(*Error); ok {
		return derr
	}
	return NewError(MODEL_ERROR, "%s", err.Error())
}

func wrapParseError(err error) error {
	if err == nil {
		return nil
	}
	var idErr *cell.IDError
	if errors.As(err, &idErr) {
		if idErr.TooLong {
			return NewError(CELL_LENGTH_TOO_LONG, "%s", idErr.Error())
		}
		return NewError(MODEL_ERROR, "%s", idErr.Error())
	}
	return NewError(MODEL_ERROR, "%s", err.Error())
}
