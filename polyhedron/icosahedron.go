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

// Package polyhedron describes the icosahedron this grid system is built
// on: its 20 faces, their centre coordinates and orientation, and the
// Snyder projection constants every face shares. Grounded on
// original_source/EAGGR/Src/Model/IPolyhedralGlobe/Icosahedron.cpp, ported
// to the teacher's flat-struct-plus-accessor style (compare
// isbang-h3go/faceijk.go's per-face centre table).
package polyhedron

import "math"

// NumFaces is the number of icosahedron faces.
const NumFaces = 20

// Orientation distinguishes the two rotation classes a face can belong to:
// faces 0-4 and 10-14 sit at 0°, faces 5-9 and 15-19 at 60°.
type Orientation int

const (
	Orientation0 Orientation = iota
	Orientation60
)

// Face describes one face of the icosahedron: its centre (in degrees) and
// rotation class.
type Face struct {
	Index       int
	CentreLatDeg float64
	CentreLonDeg float64
	Orientation  Orientation
}

// Faces holds all 20 icosahedron faces, indexed by face number.
var Faces [NumFaces]Face

func init() {
	lons := [5]float64{-144, -72, 0, 72, 144}
	rows := []struct {
		startFace   int
		latDeg      float64
		orientation Orientation
		lons        [5]float64
	}{
		{0, 52.62263186, Orientation0, lons},
		{5, 10.81231696, Orientation60, lons},
		{10, -10.81231696, Orientation0, [5]float64{-108, -36, 36, 108, 180}},
		{15, -52.62263186, Orientation60, [5]float64{-108, -36, 36, 108, 180}},
	}
	for _, row := range rows {
		for i, lon := range row.lons {
			idx := row.startFace + i
			Faces[idx] = Face{
				Index:        idx,
				CentreLatDeg: row.latDeg,
				CentreLonDeg: lon,
				Orientation:  row.orientation,
			}
		}
	}
}

// CentreRads returns the face centre as (lat, lon) in radians.
func (f Face) CentreRads() (lat, lon float64) {
	return f.CentreLatDeg * math.Pi / 180, f.CentreLonDeg * math.Pi / 180
}

// OrientationRads returns the face's rotation angle in radians: 0 for
// Orientation0, 60 degrees for Orientation60.
func (f Face) OrientationRads() float64 {
	if f.Orientation == Orientation60 {
		return 60.0 * math.Pi / 180
	}
	return 0
}

// Snyder projection constants shared by every face, carried over from
// Icosahedron.cpp.
const (
	GDeg           = 37.37736814
	GCapDeg        = 36.0
	ThetaDeg       = 30.0
	RPrimeOverR    = 0.91038328153090290025
	EdgeOverRPrime = 1.323169076499215
)

// G, GCap and Theta are the Snyder constants in radians.
var (
	G     = GDeg * math.Pi / 180
	GCap  = GCapDeg * math.Pi / 180
	Theta = ThetaDeg * math.Pi / 180
)

// EdgeLengthOverR is the face edge length as a fraction of the sphere
// radius R, i.e. R'/R * edge/R'.
var EdgeLengthOverR = RPrimeOverR * EdgeOverRPrime
