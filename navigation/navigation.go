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

// Package navigation implements parent/child/sibling lookups and the
// bounding-cell (common-ancestor) search described in spec.md §4.7.
// GetParents/GetChildren delegate straight to the bound cell.Grid, adding
// only the wire-format length guarantee; BoundingCell's "best parent"
// tie-break is grounded on
// original_source/EAGGR/Src/Model/IGrid/IOffsetGrid/Aperture3HexagonGrid.cpp's
// three-candidate-parent search, generalised to the single-parent triangle
// case as well.
package navigation

import (
	"errors"
	"fmt"

	"github.com/icodggs/dggs/cell"
	"github.com/icodggs/dggs/planar"
)

// ErrDifferentFaces is returned by BoundingCell when the input cells lie on
// different icosahedron faces and so share no common ancestor.
var ErrDifferentFaces = errors.New("navigation: cells lie on different faces and have no common ancestor")

// ErrEmpty is returned by BoundingCell when given no cells.
var ErrEmpty = errors.New("navigation: bounding cell requires at least one cell")

const boundaryEps = 1e-9

// GetParents returns c's parent cells, verifying each serialises within the
// wire-format length limit.
func GetParents(grid cell.Grid, c cell.Cell) ([]cell.Cell, error) {
	parents, err := grid.GetParents(c)
	if err != nil {
		return nil, err
	}
	for _, p := range parents {
		if _, err := cell.Serialize(p); err != nil {
			return nil, err
		}
	}
	return parents, nil
}

// GetChildren returns c's child cells, verifying each serialises within the
// wire-format length limit.
func GetChildren(grid cell.Grid, c cell.Cell) ([]cell.Cell, error) {
	children, err := grid.GetChildren(c)
	if err != nil {
		return nil, err
	}
	for _, ch := range children {
		if _, err := cell.Serialize(ch); err != nil {
			return nil, err
		}
	}
	return children, nil
}

// GetSiblings returns the other children of c's first parent, i.e. every
// child of that parent except c itself.
func GetSiblings(grid cell.Grid, c cell.Cell) ([]cell.Cell, error) {
	parents, err := grid.GetParents(c)
	if err != nil {
		return nil, err
	}
	if len(parents) == 0 {
		return nil, fmt.Errorf("navigation: cell has no parent to derive siblings from")
	}
	children, err := grid.GetChildren(parents[0])
	if err != nil {
		return nil, err
	}
	siblings := make([]cell.Cell, 0, len(children))
	for _, ch := range children {
		if !ch.Equal(c) {
			siblings = append(siblings, ch)
		}
	}
	return siblings, nil
}

// bestParent picks, among child's parents, the first one whose boundary
// (interior or edge) contains child's centre point; when none does, it
// falls back to the first parent. Only the centre point is tested: whether
// the parent covers the whole child cell is not checked.
func bestParent(grid cell.Grid, child cell.Cell) (cell.Cell, error) {
	parents, err := grid.GetParents(child)
	if err != nil {
		return cell.Cell{}, err
	}
	if len(parents) == 0 {
		return cell.Cell{}, fmt.Errorf("navigation: cell at resolution 0 has no parent")
	}
	if len(parents) == 1 {
		return parents[0], nil
	}
	childCentre, err := grid.FaceCoordinateFromCell(child)
	if err != nil {
		return cell.Cell{}, err
	}
	for _, p := range parents {
		if planarContains(grid, p, childCentre) {
			return p, nil
		}
	}
	return parents[0], nil
}

// planarContains reports whether fc (on the same face as parent, by
// construction) falls within parent's boundary, interior or edge.
func planarContains(grid cell.Grid, parent cell.Cell, fc cell.FaceCoordinate) bool {
	vertices, err := grid.GetVertices(parent)
	if err != nil {
		return false
	}
	ring := make([]planar.Vec2D, 0, len(vertices)+1)
	for _, v := range vertices {
		ring = append(ring, planar.Vec2D{X: v.X, Y: v.Y})
	}
	ring = append(ring, ring[0])
	p := planar.Vec2D{X: fc.X, Y: fc.Y}
	return planar.PointInPolygon(p, ring) || planar.PointOnRingBoundary(p, ring, boundaryEps)
}

// BoundingCell finds the deepest cell that is a common ancestor of every
// cell in cells, per spec.md §4.7: raise every cell to the minimum input
// resolution via best-parent steps, then keep stepping all of them toward
// the root in lockstep until they agree or resolution 0 is reached without
// agreement (different faces).
func BoundingCell(grid cell.Grid, cells []cell.Cell) (cell.Cell, error) {
	if len(cells) == 0 {
		return cell.Cell{}, ErrEmpty
	}
	current := make([]cell.Cell, len(cells))
	copy(current, cells)

	minRes := current[0].Resolution
	for _, c := range current[1:] {
		if c.Resolution < minRes {
			minRes = c.Resolution
		}
	}

	for i, c := range current {
		for c.Resolution > minRes {
			p, err := bestParent(grid, c)
			if err != nil {
				return cell.Cell{}, err
			}
			c = p
		}
		current[i] = c
	}

	for {
		if allEqual(current) {
			return current[0], nil
		}
		if current[0].Resolution == 0 {
			return cell.Cell{}, ErrDifferentFaces
		}
		for i, c := range current {
			p, err := bestParent(grid, c)
			if err != nil {
				return cell.Cell{}, err
			}
			current[i] = p
		}
	}
}

func allEqual(cells []cell.Cell) bool {
	for _, c := range cells[1:] {
		if !c.Equal(cells[0]) {
			return false
		}
	}
	return true
}
