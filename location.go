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
	"math"

	"github.com/icodggs/dggs/cell"
	"github.com/icodggs/dggs/grid/triangle"
)

// vertexToleranceFaceUnits and edgeToleranceFaceUnits bound how close a
// face coordinate must be to a resolution-0 face corner or edge to be
// classified as ManyFaces/TwoFaces rather than OneFace. Both grids share
// the same face parameterisation (x, y normalised to one edge length), so
// the triangle grid's resolution-0 corners describe every icosahedron
// vertex and edge regardless of which grid a session is bound to.
const (
	vertexToleranceFaceUnits = 1e-7
	edgeToleranceFaceUnits   = 1e-9
)

var faceCorners = mustFaceCorners()

func mustFaceCorners() [3][2]float64 {
	tri := triangle.New()
	whole := cell.NewTriangleCell(0, nil, cell.LocationUnknown)
	verts, err := tri.GetVertices(whole)
	if err != nil {
		panic(err)
	}
	return [3][2]float64{
		{verts[0].X, verts[0].Y},
		{verts[1].X, verts[1].Y},
		{verts[2].X, verts[2].Y},
	}
}

// classifyLocation reports whether fc sits at a face corner (shared by the
// five faces meeting at an icosahedron vertex), on a face edge
// (shared by exactly two faces), or strictly in one face's interior.
// Pentagon-vertex correction itself is out of scope (spec.md §1's
// Non-goals); this only labels the location, it does not reshape
// neighbouring cells there.
func classifyLocation(fc cell.FaceCoordinate) cell.Location {
	for _, v := range faceCorners {
		if math.Hypot(fc.X-v[0], fc.Y-v[1]) < vertexToleranceFaceUnits {
			return cell.LocationVertex
		}
	}
	for i := 0; i < 3; i++ {
		a, b := faceCorners[i], faceCorners[(i+1)%3]
		if pointOnSegment(fc.X, fc.Y, a[0], a[1], b[0], b[1], edgeToleranceFaceUnits) {
			return cell.LocationEdge
		}
	}
	return cell.LocationFaceInterior
}

func pointOnSegment(px, py, ax, ay, bx, by, eps float64) bool {
	cross := (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	length := math.Hypot(bx-ax, by-ay)
	if math.Abs(cross) > eps*math.Max(1, length) {
		return false
	}
	dot := (px-ax)*(bx-ax) + (py-ay)*(by-ay)
	if dot < -eps {
		return false
	}
	lenSq := (bx-ax)*(bx-ax) + (by-ay)*(by-ay)
	return dot <= lenSq+eps
}
