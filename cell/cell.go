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

// Package cell defines the Cell value every grid in this module produces:
// a tagged sum of a digit-path triangle cell and a row/column offset
// hexagon cell, sharing a (face, resolution, location) header. Cell IDs
// cross package boundaries as the structured Cell, not as strings; string
// parsing/serialising happens only at id.go's edges, mirroring
// isbang-h3go's H3Index: a single value type with accessor methods, not
// string manipulation scattered through the navigation code.
package cell

import "fmt"

// Kind distinguishes which grid produced a Cell.
type Kind int

const (
	// KindTriangle is an ISEA4T cell addressed by a base-4 digit path.
	KindTriangle Kind = iota
	// KindHexagon is an ISEA3H cell addressed by an offset (row, column).
	KindHexagon
)

// Location classifies where a cell sits relative to face boundaries.
type Location int

const (
	LocationUnknown Location = iota
	LocationFaceInterior
	LocationEdge
	LocationVertex
)

// Orientation distinguishes the two rotation classes a triangle or hexagon
// cell alternates between across resolutions.
type Orientation int

const (
	OrientationStandard Orientation = iota
	OrientationRotated
)

// Cell is the tagged-union cell value shared by both grids.
type Cell struct {
	Kind       Kind
	Face       int
	Resolution int
	Location   Location

	// Digits holds the base-4 path for a KindTriangle cell; len(Digits) ==
	// Resolution. Unused for KindHexagon.
	Digits []byte

	// Row, Col hold the offset coordinates for a KindHexagon cell. Unused
	// for KindTriangle.
	Row, Col int

	// Orientation is the cell's current standard/rotated state, derived
	// from its resolution and (for triangles) its digit path.
	Orientation Orientation
}

// NewTriangleCell constructs a KindTriangle cell, copying digits.
func NewTriangleCell(face int, digits []byte, loc Location) Cell {
	d := make([]byte, len(digits))
	copy(d, digits)
	return Cell{
		Kind:        KindTriangle,
		Face:        face,
		Resolution:  len(d),
		Location:    loc,
		Digits:      d,
		Orientation: triangleOrientation(d),
	}
}

// NewHexagonCell constructs a KindHexagon cell.
func NewHexagonCell(face, resolution, row, col int, loc Location) Cell {
	return Cell{
		Kind:        KindHexagon,
		Face:        face,
		Resolution:  resolution,
		Location:    loc,
		Row:         row,
		Col:         col,
		Orientation: hexagonOrientation(resolution),
	}
}

// triangleOrientation alternates upright/inverted starting upright at the
// whole face, flipping whenever the path descends through the central
// (digit 0) sub-triangle.
func triangleOrientation(digits []byte) Orientation {
	o := OrientationStandard
	for _, d := range digits {
		if d == 0 {
			if o == OrientationStandard {
				o = OrientationRotated
			} else {
				o = OrientationStandard
			}
		}
	}
	return o
}

// hexagonOrientation alternates per resolution: odd resolutions are
// standard, even resolutions (resolution 0, the whole face, included) are
// rotated. The hexagon grid lays standard cells out flat-top and rotated
// cells pointy-top, so odd-resolution cells are not pointy-top.
func hexagonOrientation(resolution int) Orientation {
	if resolution%2 == 1 {
		return OrientationStandard
	}
	return OrientationRotated
}

// Equal reports whether two cells denote the same grid position.
func (c Cell) Equal(o Cell) bool {
	if c.Kind != o.Kind || c.Face != o.Face || c.Resolution != o.Resolution {
		return false
	}
	switch c.Kind {
	case KindTriangle:
		if len(c.Digits) != len(o.Digits) {
			return false
		}
		for i := range c.Digits {
			if c.Digits[i] != o.Digits[i] {
				return false
			}
		}
		return true
	case KindHexagon:
		return c.Row == o.Row && c.Col == o.Col
	default:
		return false
	}
}

func (c Cell) String() string {
	id, err := Serialize(c)
	if err != nil {
		return fmt.Sprintf("<invalid cell: %v>", err)
	}
	return id
}
