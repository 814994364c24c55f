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

package analysis

import "fmt"

// Predicate names one of the ten planar topological tests spec.md §4.8
// defines, Disjoint included; Disjoint is always the negation of
// Intersects.
type Predicate int

const (
	PredicateEquals Predicate = iota
	PredicateIntersects
	PredicateTouches
	PredicateContains
	PredicateCovers
	PredicateWithin
	PredicateCoveredBy
	PredicateCrosses
	PredicateOverlaps
	PredicateDisjoint
)

func (p Predicate) String() string {
	switch p {
	case PredicateEquals:
		return "EQUALS"
	case PredicateIntersects:
		return "INTERSECTS"
	case PredicateTouches:
		return "TOUCHES"
	case PredicateContains:
		return "CONTAINS"
	case PredicateCovers:
		return "COVERS"
	case PredicateWithin:
		return "WITHIN"
	case PredicateCoveredBy:
		return "COVERED_BY"
	case PredicateCrosses:
		return "CROSSES"
	case PredicateOverlaps:
		return "OVERLAPS"
	case PredicateDisjoint:
		return "DISJOINT"
	default:
		return "UNKNOWN"
	}
}

// Evaluate applies predicate to (a, b), choosing the native per-face frame
// when both geometries share a face (more accurate, no antimeridian
// complications) and falling back to the lon/lat frame otherwise, per
// spec.md §4.8's dispatch rule.
func Evaluate(predicate Predicate, a, b Geometry) (bool, error) {
	sa, sb := frame(a, b)
	switch predicate {
	case PredicateEquals:
		return Equals(sa, sb), nil
	case PredicateIntersects:
		return Intersects(sa, sb), nil
	case PredicateTouches:
		return Touches(sa, sb), nil
	case PredicateContains:
		return Contains(sa, sb), nil
	case PredicateCovers:
		return Covers(sa, sb), nil
	case PredicateWithin:
		return Within(sa, sb), nil
	case PredicateCoveredBy:
		return CoveredBy(sa, sb), nil
	case PredicateCrosses:
		return Crosses(sa, sb), nil
	case PredicateOverlaps:
		return Overlaps(sa, sb), nil
	case PredicateDisjoint:
		return Disjoint(sa, sb), nil
	default:
		return false, fmt.Errorf("analysis: unrecognised predicate %d", predicate)
	}
}

// frame picks the coordinate frame the Evaluate dispatch rule selects for
// the pair (a, b).
func frame(a, b Geometry) (Shape, Shape) {
	if a.Native != nil && b.Native != nil && a.Face == b.Face {
		return *a.Native, *b.Native
	}
	return a.LonLat, b.LonLat
}
