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

import "github.com/icodggs/dggs/cell"

// CellLinestring is the shape-aware variant of Linestring: an ordered
// sequence of cells instead of raw lat/lon points, per spec.md §6's "DGGS
// cell-linestring" exchange type.
type CellLinestring struct {
	Cells []Cell
}

// CellPolygon is the shape-aware variant of Polygon: an outer boundary
// cell sequence plus zero or more inner (hole) boundary cell sequences,
// per spec.md §6's "DGGS cell-polygon" exchange type.
type CellPolygon struct {
	Outer  []Cell
	Inners [][]Cell
}

// CellLinestringFromLinestring is the shape-aware façade variant: it
// converts every point of ls to a cell at that point's own accuracy,
// preserving point order.
func (d *DGGS) CellLinestringFromLinestring(ls Linestring) (CellLinestring, error) {
	cells, err := pointsToCells(d, ls.Points)
	if err != nil {
		return CellLinestring{}, err
	}
	return CellLinestring{Cells: cells}, nil
}

// CellPolygonFromPolygon is the shape-aware façade variant: it converts
// poly's outer ring and every inner (hole) ring to cell sequences,
// preserving each point's own accuracy.
func (d *DGGS) CellPolygonFromPolygon(poly Polygon) (CellPolygon, error) {
	outer, err := ringToCells(d, poly.Outer)
	if err != nil {
		return CellPolygon{}, err
	}
	inners := make([][]Cell, len(poly.Inners))
	for i, inner := range poly.Inners {
		cells, err := ringToCells(d, inner)
		if err != nil {
			return CellPolygon{}, err
		}
		inners[i] = cells
	}
	return CellPolygon{Outer: outer, Inners: inners}, nil
}

func ringToCells(d *DGGS, r Ring) ([]Cell, error) {
	return pointsToCells(d, r.Closed())
}

func pointsToCells(d *DGGS, points []Point) ([]Cell, error) {
	cells := make([]Cell, len(points))
	for i, pt := range points {
		p, err := NewWGS84AccuracyPoint(pt.LatitudeDeg, pt.LongitudeDeg, pt.AccuracyM2)
		if err != nil {
			return nil, err
		}
		c, err := d.CellFromWGS84Point(p)
		if err != nil {
			return nil, err
		}
		cells[i] = c
	}
	return cells, nil
}

// cellGrid adapts DGGS to the cell.Grid subset the analysis
// package's geometry builders need.
func (d *DGGS) cellGrid() cell.Grid { return d.grid }
