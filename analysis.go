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
	"github.com/icodggs/dggs/analysis"
	"github.com/icodggs/dggs/planar"
)

// Geometry re-exports analysis.Geometry: a shape materialised in both the
// native per-face frame (when available) and the lon/lat fallback frame,
// ready for Evaluate.
type Geometry = analysis.Geometry

// Predicate re-exports analysis.Predicate and its ten named values, so
// callers never need to import dggs/analysis directly just to name a
// predicate.
type Predicate = analysis.Predicate

const (
	PredicateEquals     = analysis.PredicateEquals
	PredicateIntersects = analysis.PredicateIntersects
	PredicateTouches    = analysis.PredicateTouches
	PredicateContains   = analysis.PredicateContains
	PredicateCovers     = analysis.PredicateCovers
	PredicateWithin     = analysis.PredicateWithin
	PredicateCoveredBy  = analysis.PredicateCoveredBy
	PredicateCrosses    = analysis.PredicateCrosses
	PredicateOverlaps   = analysis.PredicateOverlaps
	PredicateDisjoint   = analysis.PredicateDisjoint
)

// GeometryFromCell builds the Geometry for a single cell.
func (d *DGGS) GeometryFromCell(c Cell) (Geometry, error) {
	g, err := analysis.FromCell(d.cellGrid(), c)
	if err != nil {
		return Geometry{}, wrapModelError(err)
	}
	return g, nil
}

// GeometryFromCellLinestring builds the Geometry for an ordered cell
// sequence realised as a polyline through each cell's centre.
func (d *DGGS) GeometryFromCellLinestring(ls CellLinestring) (Geometry, error) {
	g, err := analysis.FromCellLinestring(d.cellGrid(), ls.Cells)
	if err != nil {
		return Geometry{}, wrapModelError(err)
	}
	return g, nil
}

// GeometryFromCellPolygon builds the Geometry for a cell-boundary polygon.
func (d *DGGS) GeometryFromCellPolygon(poly CellPolygon) (Geometry, error) {
	g, err := analysis.FromCellPolygon(d.cellGrid(), poly.Outer, poly.Inners)
	if err != nil {
		return Geometry{}, wrapModelError(err)
	}
	return g, nil
}

// GeometryFromPoint builds a bare lon/lat point Geometry, with no native
// per-face frame.
func GeometryFromPoint(p Point) Geometry {
	return analysis.FromLonLatPoint(p.LongitudeDeg, p.LatitudeDeg)
}

// GeometryFromLinestring builds a bare lon/lat linestring Geometry.
func GeometryFromLinestring(ls Linestring) Geometry {
	return analysis.FromLonLatLine(pointsToVec2D(ls.Points))
}

// GeometryFromPolygon builds a bare lon/lat polygon Geometry, closing the
// outer and every inner ring if the caller did not already do so.
func GeometryFromPolygon(poly Polygon) Geometry {
	outer := pointsToVec2D(poly.Outer.Closed())
	inners := make([][]planar.Vec2D, len(poly.Inners))
	for i, in := range poly.Inners {
		inners[i] = pointsToVec2D(in.Closed())
	}
	return analysis.FromLonLatPolygon(outer, inners)
}

func pointsToVec2D(points []Point) []planar.Vec2D {
	out := make([]planar.Vec2D, len(points))
	for i, p := range points {
		out[i] = planar.Vec2D{X: p.LongitudeDeg, Y: p.LatitudeDeg}
	}
	return out
}

// Evaluate applies predicate to (a, b), dispatching to the native
// per-face frame when both share a face and to the lon/lat frame
// otherwise (spec.md §4.8).
func (d *DGGS) Evaluate(predicate Predicate, a, b Geometry) (bool, error) {
	ok, err := analysis.Evaluate(predicate, a, b)
	if err != nil {
		return false, NewError(MODEL_ERROR, "%s", err.Error())
	}
	return ok, nil
}
