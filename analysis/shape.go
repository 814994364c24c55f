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

// Package analysis implements the planar topological predicates of
// spec.md §4.8: equals, intersects, touches, contains, covers, within,
// covered-by, crosses, overlaps and disjoint, evaluated over shapes built
// from cells, cell-linestrings and cell-polygons. Grounded on
// original_source/EAGGR/Src/SpatialAnalysis/GeometryAnalyser.cpp's
// dispatch-by-geometry-kind shape (PointAnalyser/LinestringAnalyser/
// PolygonAnalyser there become Kind-switched functions here), ported to a
// single package of free functions over a tagged Shape value the way
// isbang-h3go keeps algorithms as functions over its H3Index value rather
// than a hierarchy of analyser objects.
package analysis

import (
	"fmt"

	"github.com/icodggs/dggs/cell"
	"github.com/icodggs/dggs/planar"
	"github.com/icodggs/dggs/projection"
)

// Kind is the geometric dimensionality of a Shape.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindPolygon
)

// Shape is a planar geometry in one coordinate frame: a point, an open
// polyline, or a polygon (closed outer ring plus closed inner/hole rings).
// Both the native per-face frame and the lon/lat fallback frame use this
// same representation; only the numbers in Pt/Line/Outer/Inners differ
// (face-local units vs degrees of longitude/latitude).
type Shape struct {
	Kind   Kind
	Pt     planar.Vec2D
	Line   []planar.Vec2D
	Outer  []planar.Vec2D
	Inners [][]planar.Vec2D
}

// Geometry is a shape materialised in both frames the analyser can choose
// between. Native is nil when the source cells span more than one face (no
// single face-local frame can host them); LonLat is always populated. Face
// is the shared face index when Native != nil, or -1 otherwise.
type Geometry struct {
	Kind   Kind
	Face   int
	Native *Shape
	LonLat Shape
}

// grid is an alias of cell.Grid, which the geometry builders use to turn a
// Cell into face coordinates and vertices.
type grid = cell.Grid

func closeRing(pts []planar.Vec2D) []planar.Vec2D {
	if len(pts) == 0 {
		return nil
	}
	if pts[0].Equals(pts[len(pts)-1]) {
		return pts
	}
	out := make([]planar.Vec2D, len(pts)+1)
	copy(out, pts)
	out[len(pts)] = pts[0]
	return out
}

// FromCell builds a Geometry for a single cell: its vertex ring, in both
// the native face frame and the lon/lat frame (each vertex run through the
// inverse Snyder projection).
func FromCell(g grid, c cell.Cell) (Geometry, error) {
	vertices, err := g.GetVertices(c)
	if err != nil {
		return Geometry{}, fmt.Errorf("analysis: cell vertices: %w", err)
	}
	native := make([]planar.Vec2D, len(vertices))
	lonlat := make([]planar.Vec2D, len(vertices))
	for i, v := range vertices {
		native[i] = planar.Vec2D{X: v.X, Y: v.Y}
		sp, err := projection.Inverse(cell.FaceCoordinate{Face: c.Face, X: v.X, Y: v.Y})
		if err != nil {
			return Geometry{}, fmt.Errorf("analysis: vertex to lon/lat: %w", err)
		}
		lonlat[i] = planar.Vec2D{X: sp.LonDeg, Y: sp.LatDeg}
	}
	return Geometry{
		Kind:   KindPolygon,
		Face:   c.Face,
		Native: &Shape{Kind: KindPolygon, Outer: closeRing(native)},
		LonLat: Shape{Kind: KindPolygon, Outer: closeRing(lonlat)},
	}, nil
}

// FromCellLinestring builds a Geometry from an ordered sequence of cells,
// realised as a polyline through each cell's centre.
func FromCellLinestring(g grid, cells []cell.Cell) (Geometry, error) {
	native := make([]planar.Vec2D, len(cells))
	lonlat := make([]planar.Vec2D, len(cells))
	face := -1
	sameFace := true
	for i, c := range cells {
		if i == 0 {
			face = c.Face
		} else if c.Face != face {
			sameFace = false
		}
		fc, err := g.FaceCoordinateFromCell(c)
		if err != nil {
			return Geometry{}, fmt.Errorf("analysis: cell centre: %w", err)
		}
		native[i] = planar.Vec2D{X: fc.X, Y: fc.Y}
		sp, err := projection.Inverse(fc)
		if err != nil {
			return Geometry{}, fmt.Errorf("analysis: centre to lon/lat: %w", err)
		}
		lonlat[i] = planar.Vec2D{X: sp.LonDeg, Y: sp.LatDeg}
	}
	geo := Geometry{Kind: KindLine, Face: -1, LonLat: Shape{Kind: KindLine, Line: lonlat}}
	if sameFace {
		geo.Face = face
		geo.Native = &Shape{Kind: KindLine, Line: native}
	}
	return geo, nil
}

// ringCentres converts a boundary cell sequence to a closed ring of cell
// centres, in both frames.
func ringCentres(g grid, cells []cell.Cell) (native, lonlat []planar.Vec2D, face int, sameFace bool, err error) {
	native = make([]planar.Vec2D, len(cells))
	lonlat = make([]planar.Vec2D, len(cells))
	face = -1
	sameFace = true
	for i, c := range cells {
		if i == 0 {
			face = c.Face
		} else if c.Face != face {
			sameFace = false
		}
		fc, ferr := g.FaceCoordinateFromCell(c)
		if ferr != nil {
			return nil, nil, 0, false, fmt.Errorf("analysis: cell centre: %w", ferr)
		}
		native[i] = planar.Vec2D{X: fc.X, Y: fc.Y}
		sp, serr := projection.Inverse(fc)
		if serr != nil {
			return nil, nil, 0, false, fmt.Errorf("analysis: centre to lon/lat: %w", serr)
		}
		lonlat[i] = planar.Vec2D{X: sp.LonDeg, Y: sp.LatDeg}
	}
	return native, lonlat, face, sameFace, nil
}

// FromCellPolygon builds a Geometry from an outer boundary cell sequence
// and zero or more inner (hole) boundary cell sequences, each ring realised
// as the closed polyline through its cells' centres.
func FromCellPolygon(g grid, outer []cell.Cell, inners [][]cell.Cell) (Geometry, error) {
	outerNative, outerLonLat, face, sameFace, err := ringCentres(g, outer)
	if err != nil {
		return Geometry{}, err
	}
	nativeInners := make([][]planar.Vec2D, len(inners))
	lonlatInners := make([][]planar.Vec2D, len(inners))
	for i, inner := range inners {
		in, il, innerFace, innerSame, err := ringCentres(g, inner)
		if err != nil {
			return Geometry{}, err
		}
		if innerFace != face || !innerSame {
			sameFace = false
		}
		nativeInners[i] = closeRing(in)
		lonlatInners[i] = closeRing(il)
	}

	geo := Geometry{
		Kind: KindPolygon,
		Face: -1,
		LonLat: Shape{
			Kind:   KindPolygon,
			Outer:  closeRing(outerLonLat),
			Inners: lonlatInners,
		},
	}
	if sameFace {
		geo.Face = face
		geo.Native = &Shape{Kind: KindPolygon, Outer: closeRing(outerNative), Inners: nativeInners}
	}
	return geo, nil
}

// FromLonLatPoint builds a Geometry for a bare (lon, lat) point; it has no
// native-frame representation since it is not tied to any face.
func FromLonLatPoint(lonDeg, latDeg float64) Geometry {
	return Geometry{
		Kind:   KindPoint,
		Face:   -1,
		LonLat: Shape{Kind: KindPoint, Pt: planar.Vec2D{X: lonDeg, Y: latDeg}},
	}
}

// FromLonLatLine builds a Geometry for a bare (lon, lat) polyline.
func FromLonLatLine(points []planar.Vec2D) Geometry {
	return Geometry{
		Kind:   KindLine,
		Face:   -1,
		LonLat: Shape{Kind: KindLine, Line: points},
	}
}

// FromLonLatPolygon builds a Geometry for a bare (lon, lat) polygon; outer
// and each inner ring are closed if the caller did not already close them.
func FromLonLatPolygon(outer []planar.Vec2D, inners [][]planar.Vec2D) Geometry {
	closedInners := make([][]planar.Vec2D, len(inners))
	for i, in := range inners {
		closedInners[i] = closeRing(in)
	}
	return Geometry{
		Kind: KindPolygon,
		Face: -1,
		LonLat: Shape{
			Kind:   KindPolygon,
			Outer:  closeRing(outer),
			Inners: closedInners,
		},
	}
}
