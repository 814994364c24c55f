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

package cell

// FaceCoordinate is a planar point on one icosahedron face: X, Y are
// offsets from the face centre in units of one edge length; Accuracy is a
// fraction of the face's area, in [0, 1]. It is the shared currency
// between projection, the grids and the indexers, so none of those
// packages need to depend on each other just to pass a point around.
type FaceCoordinate struct {
	Face     int
	X, Y     float64
	Accuracy float64
}

// Grid is the contract a grid (triangle or hexagon) implements; the
// indexer binds one Grid to a face-selection policy and exposes it through
// the unified façade operations.
type Grid interface {
	// Aperture is the parent:child area ratio (4 or 3).
	Aperture() int
	// MaxChildren, MaxSiblings, MaxParents bound the cardinality of
	// GetChildren/GetSiblings/GetParents results.
	MaxChildren() int
	MaxSiblings() int
	MaxParents() int

	// CellFromFaceCoordinate descends from the whole face to the cell
	// containing fc at the given resolution.
	CellFromFaceCoordinate(fc FaceCoordinate, resolution int) (Cell, error)
	// FaceCoordinateFromCell recovers the cell's centre and accuracy
	// fraction.
	FaceCoordinateFromCell(c Cell) (FaceCoordinate, error)

	// GetParents returns the 1-3 cells that contain c at c.Resolution-1.
	GetParents(c Cell) ([]Cell, error)
	// GetChildren returns the cells that tile c at c.Resolution+1.
	GetChildren(c Cell) ([]Cell, error)
	// GetVertices returns the polygon vertices of c as face coordinates.
	GetVertices(c Cell) ([]FaceCoordinate, error)

	// ResolutionFromAccuracy maps a requested accuracy (fraction of one
	// face's area) to a resolution: the triangle grid picks the coarsest
	// resolution whose accuracy is at least as fine, the hexagon grid the
	// resolution whose accuracy is nearest, ties going to the finer one.
	ResolutionFromAccuracy(faceAreaFraction float64) (int, error)
	// AccuracyFromResolution is ResolutionFromAccuracy's inverse.
	AccuracyFromResolution(resolution int) (float64, error)
}
