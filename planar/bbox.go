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

package planar

// LonLatBox is a geographic bounding box in degrees.
type LonLatBox struct {
	North, South float64
	East, West   float64
}

// IsTransmeridian reports whether the box crosses the antimeridian.
func (b LonLatBox) IsTransmeridian() bool {
	return b.East < b.West
}

// Contains reports whether (lat, lon) falls inside the box, handling the
// antimeridian-crossing case.
func (b LonLatBox) Contains(lat, lon float64) bool {
	if lat < b.South || lat > b.North {
		return false
	}
	if b.IsTransmeridian() {
		return lon >= b.West || lon <= b.East
	}
	return lon >= b.West && lon <= b.East
}

// Disjoint reports whether two boxes share no point, a cheap reject before
// an expensive ring-intersection test.
func (b LonLatBox) Disjoint(o LonLatBox) bool {
	if b.North < o.South || o.North < b.South {
		return true
	}
	if b.IsTransmeridian() || o.IsTransmeridian() {
		return false
	}
	return b.East < o.West || o.East < b.West
}

// BoundingBoxOfPoints computes the smallest non-transmeridian LonLatBox
// covering pts. Callers whose ring crosses the antimeridian should split it
// before calling this, since a naive min/max cannot express that wrap.
func BoundingBoxOfPoints(lats, lons []float64) LonLatBox {
	if len(lats) == 0 {
		return LonLatBox{}
	}
	box := LonLatBox{North: lats[0], South: lats[0], East: lons[0], West: lons[0]}
	for i := 1; i < len(lats); i++ {
		if lats[i] > box.North {
			box.North = lats[i]
		}
		if lats[i] < box.South {
			box.South = lats[i]
		}
		if lons[i] > box.East {
			box.East = lons[i]
		}
		if lons[i] < box.West {
			box.West = lons[i]
		}
	}
	return box
}
