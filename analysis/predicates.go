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

import "github.com/icodggs/dggs/planar"

// eps is the tolerance used throughout predicate evaluation for point-on-
// boundary and segment-intersection tests; shapes here come from
// projected, floating-point cell geometry rather than hand-entered
// coordinates, so an exact-equality test would reject points that are
// mathematically coincident but differ in the last bit.
const eps = 1e-9

// Equals reports whether a and b denote the same geometry: same kind, and
// boundary-equivalent for polygons (rings equal up to cyclic rotation and
// direction), order-sensitive for linestrings, coordinate-equal for
// points.
func Equals(a, b Shape) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindPoint:
		return a.Pt.AlmostEquals(b.Pt, eps)
	case KindLine:
		return lineEquals(a.Line, b.Line)
	case KindPolygon:
		return ringEquals(a.Outer, b.Outer) && holeSetEquals(a.Inners, b.Inners)
	default:
		return false
	}
}

func lineEquals(a, b []planar.Vec2D) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].AlmostEquals(b[i], eps) {
			return false
		}
	}
	return true
}

// ringEquals reports whether two closed rings describe the same boundary,
// allowing for a different starting vertex and a different traversal
// direction.
func ringEquals(a, b []planar.Vec2D) bool {
	if len(a) != len(b) || len(a) < 4 {
		return len(a) == 0 && len(b) == 0
	}
	n := len(a) - 1 // rings are closed; compare the n distinct vertices
	for _, reversed := range [2][]planar.Vec2D{a, reverseRing(a)} {
		for shift := 0; shift < n; shift++ {
			if ringMatchesFrom(reversed, b, shift, n) {
				return true
			}
		}
	}
	return false
}

func ringMatchesFrom(a, b []planar.Vec2D, shift, n int) bool {
	for i := 0; i < n; i++ {
		if !a[(i+shift)%n].AlmostEquals(b[i], eps) {
			return false
		}
	}
	return true
}

func reverseRing(ring []planar.Vec2D) []planar.Vec2D {
	out := make([]planar.Vec2D, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

func holeSetEquals(a, b [][]planar.Vec2D) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ra := range a {
		found := false
		for j, rb := range b {
			if !used[j] && ringEquals(ra, rb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// pointInPolygonShape classifies p against poly's outer ring and holes:
// interior (true, true), boundary (false, true), or outside (false,
// false).
func pointInPolygonShape(p planar.Vec2D, poly Shape) (interior, covered bool) {
	onOuter := planar.PointOnRingBoundary(p, poly.Outer, eps)
	inOuter := planar.PointInPolygon(p, poly.Outer)
	if onOuter {
		return false, true
	}
	if !inOuter {
		return false, false
	}
	for _, hole := range poly.Inners {
		if planar.PointOnRingBoundary(p, hole, eps) {
			return false, true
		}
		if planar.PointInPolygon(p, hole) {
			return false, false
		}
	}
	return true, true
}

// lineVertices returns the open polyline's vertices; used as sample points
// by the polygon predicates below.
func lineVertices(s Shape) []planar.Vec2D { return s.Line }

// pointOnLine reports whether p lies on any segment of the (open)
// polyline line.
func pointOnLine(p planar.Vec2D, line []planar.Vec2D) bool {
	for i := 0; i+1 < len(line); i++ {
		if planar.PointOnSegment(p, line[i], line[i+1], eps) {
			return true
		}
	}
	return false
}

func isEndpoint(p planar.Vec2D, line []planar.Vec2D) bool {
	if len(line) == 0 {
		return false
	}
	return p.AlmostEquals(line[0], eps) || p.AlmostEquals(line[len(line)-1], eps)
}

// Intersects reports whether a and b share at least one point.
func Intersects(a, b Shape) bool {
	switch {
	case a.Kind == KindPoint && b.Kind == KindPoint:
		return a.Pt.AlmostEquals(b.Pt, eps)
	case a.Kind == KindPoint && b.Kind == KindLine:
		return pointOnLine(a.Pt, b.Line)
	case a.Kind == KindLine && b.Kind == KindPoint:
		return pointOnLine(b.Pt, a.Line)
	case a.Kind == KindPoint && b.Kind == KindPolygon:
		_, covered := pointInPolygonShape(a.Pt, b)
		return covered
	case a.Kind == KindPolygon && b.Kind == KindPoint:
		_, covered := pointInPolygonShape(b.Pt, a)
		return covered
	case a.Kind == KindLine && b.Kind == KindLine:
		return lineIntersectsLine(a.Line, b.Line)
	case a.Kind == KindLine && b.Kind == KindPolygon:
		return lineIntersectsPolygon(a.Line, b)
	case a.Kind == KindPolygon && b.Kind == KindLine:
		return lineIntersectsPolygon(b.Line, a)
	case a.Kind == KindPolygon && b.Kind == KindPolygon:
		return polygonIntersectsPolygon(a, b)
	default:
		return false
	}
}

func lineIntersectsLine(a, b []planar.Vec2D) bool {
	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			if planar.PointOnSegment(a[i], b[j], b[j+1], eps) || planar.PointOnSegment(a[i+1], b[j], b[j+1], eps) {
				return true
			}
			if planar.PointOnSegment(b[j], a[i], a[i+1], eps) || planar.PointOnSegment(b[j+1], a[i], a[i+1], eps) {
				return true
			}
			if _, ok := planar.SegmentsIntersect(a[i], a[i+1], b[j], b[j+1]); ok {
				if planar.SegmentsProperlyIntersect(a[i], a[i+1], b[j], b[j+1]) {
					return true
				}
			}
		}
	}
	return false
}

func lineIntersectsPolygon(line []planar.Vec2D, poly Shape) bool {
	for _, p := range line {
		if _, covered := pointInPolygonShape(p, poly); covered {
			return true
		}
	}
	if lineIntersectsLine(line, poly.Outer) {
		return true
	}
	for _, hole := range poly.Inners {
		if lineIntersectsLine(line, hole) {
			return true
		}
	}
	return false
}

func polygonIntersectsPolygon(a, b Shape) bool {
	for _, p := range a.Outer {
		if _, covered := pointInPolygonShape(p, b); covered {
			return true
		}
	}
	for _, p := range b.Outer {
		if _, covered := pointInPolygonShape(p, a); covered {
			return true
		}
	}
	return lineIntersectsLine(a.Outer, b.Outer)
}

// Disjoint is the negation of Intersects.
func Disjoint(a, b Shape) bool { return !Intersects(a, b) }

// Contains reports whether every point of b lies in a (interior or
// boundary) and some point of b lies in a's interior, i.e. a is not
// merely touching b along a shared boundary.
func Contains(a, b Shape) bool {
	switch {
	case b.Kind == KindPoint:
		switch a.Kind {
		case KindPolygon:
			interior, _ := pointInPolygonShape(b.Pt, a)
			return interior
		case KindLine:
			return pointOnLine(b.Pt, a.Line) && !isEndpoint(b.Pt, a.Line)
		case KindPoint:
			return a.Pt.AlmostEquals(b.Pt, eps)
		}
		return false
	case b.Kind == KindLine && a.Kind == KindLine:
		return containsLineInLine(a.Line, b.Line)
	case b.Kind == KindLine && a.Kind == KindPolygon:
		return containsLineInPolygon(a, b.Line)
	case b.Kind == KindPolygon && a.Kind == KindPolygon:
		return containsPolygonInPolygon(a, b)
	default:
		return false
	}
}

func containsLineInLine(a, b []planar.Vec2D) bool {
	for _, p := range b {
		if !pointOnLine(p, a) {
			return false
		}
	}
	return true
}

func containsLineInPolygon(poly Shape, line []planar.Vec2D) bool {
	sawInterior := false
	for _, p := range line {
		interior, covered := pointInPolygonShape(p, poly)
		if !covered {
			return false
		}
		if interior {
			sawInterior = true
		}
	}
	return sawInterior
}

func containsPolygonInPolygon(a, b Shape) bool {
	sawInterior := false
	for _, p := range b.Outer {
		interior, covered := pointInPolygonShape(p, a)
		if !covered {
			return false
		}
		if interior {
			sawInterior = true
		}
	}
	for i := 0; i+1 < len(b.Outer); i++ {
		mid := planar.Vec2D{X: (b.Outer[i].X + b.Outer[i+1].X) / 2, Y: (b.Outer[i].Y + b.Outer[i+1].Y) / 2}
		interior, covered := pointInPolygonShape(mid, a)
		if !covered {
			return false
		}
		if interior {
			sawInterior = true
		}
	}
	return sawInterior
}

// Within is Contains with the arguments reversed.
func Within(a, b Shape) bool { return Contains(b, a) }

// Covers reports whether every point of b lies in a (interior or
// boundary), without Contains's requirement that some part of b reach a's
// interior.
func Covers(a, b Shape) bool {
	switch {
	case b.Kind == KindPoint:
		switch a.Kind {
		case KindPolygon:
			_, covered := pointInPolygonShape(b.Pt, a)
			return covered
		case KindLine:
			return pointOnLine(b.Pt, a.Line)
		case KindPoint:
			return a.Pt.AlmostEquals(b.Pt, eps)
		}
		return false
	case b.Kind == KindLine && a.Kind == KindLine:
		return containsLineInLine(a.Line, b.Line)
	case b.Kind == KindLine && a.Kind == KindPolygon:
		for _, p := range b.Line {
			if _, covered := pointInPolygonShape(p, a); !covered {
				return false
			}
		}
		return true
	case b.Kind == KindPolygon && a.Kind == KindPolygon:
		for _, p := range b.Outer {
			if _, covered := pointInPolygonShape(p, a); !covered {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CoveredBy is Covers with the arguments reversed.
func CoveredBy(a, b Shape) bool { return Covers(b, a) }

// Touches reports whether a and b meet only at their boundaries, with no
// overlap of interiors. Only defined for the dimensionally meaningful
// pairs named in spec.md §4.8; anything else is false.
func Touches(a, b Shape) bool {
	if !Intersects(a, b) {
		return false
	}
	switch {
	case a.Kind == KindPolygon && b.Kind == KindPolygon:
		return !interiorsOverlap(a, b) && !Equals(a, b)
	case a.Kind == KindPolygon && b.Kind == KindLine:
		return touchesPolygonLine(a, b.Line)
	case a.Kind == KindLine && b.Kind == KindPolygon:
		return touchesPolygonLine(b, a.Line)
	case a.Kind == KindPolygon && b.Kind == KindPoint:
		interior, covered := pointInPolygonShape(b.Pt, a)
		return covered && !interior
	case a.Kind == KindPoint && b.Kind == KindPolygon:
		interior, covered := pointInPolygonShape(a.Pt, b)
		return covered && !interior
	case a.Kind == KindLine && b.Kind == KindLine:
		return touchesLineLine(a.Line, b.Line)
	case a.Kind == KindLine && b.Kind == KindPoint:
		return isEndpoint(b.Pt, a.Line)
	case a.Kind == KindPoint && b.Kind == KindLine:
		return isEndpoint(a.Pt, b.Line)
	case a.Kind == KindPoint && b.Kind == KindPoint:
		return false // a point cannot "touch" another point it equals
	default:
		return false
	}
}

func touchesPolygonLine(poly Shape, line []planar.Vec2D) bool {
	anyInterior := false
	anyContact := false
	for _, p := range line {
		interior, covered := pointInPolygonShape(p, poly)
		if covered {
			anyContact = true
		}
		if interior {
			anyInterior = true
		}
	}
	return anyContact && !anyInterior
}

func touchesLineLine(a, b []planar.Vec2D) bool {
	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			if planar.SegmentsProperlyIntersect(a[i], a[i+1], b[j], b[j+1]) {
				return false // a proper crossing has interior overlap, not a touch
			}
		}
	}
	return true
}

// interiorsOverlap reports whether a and b's polygon interiors share any
// area, used to distinguish Touches (boundary-only contact) from Overlaps
// / Contains (interior contact).
func interiorsOverlap(a, b Shape) bool {
	for _, p := range sampleInteriorCandidates(a) {
		if interior, _ := pointInPolygonShape(p, b); interior {
			return true
		}
	}
	for _, p := range sampleInteriorCandidates(b) {
		if interior, _ := pointInPolygonShape(p, a); interior {
			return true
		}
	}
	return false
}

// sampleInteriorCandidates returns a's vertices plus its edge midpoints and
// centroid: enough sample points to detect interior overlap with another
// convex-ish cell polygon without a full polygon-clipping routine.
func sampleInteriorCandidates(s Shape) []planar.Vec2D {
	pts := make([]planar.Vec2D, 0, 2*len(s.Outer))
	pts = append(pts, s.Outer...)
	for i := 0; i+1 < len(s.Outer); i++ {
		pts = append(pts, planar.Vec2D{X: (s.Outer[i].X + s.Outer[i+1].X) / 2, Y: (s.Outer[i].Y + s.Outer[i+1].Y) / 2})
	}
	if len(s.Outer) > 1 {
		var cx, cy float64
		n := len(s.Outer) - 1
		for i := 0; i < n; i++ {
			cx += s.Outer[i].X
			cy += s.Outer[i].Y
		}
		pts = append(pts, planar.Vec2D{X: cx / float64(n), Y: cy / float64(n)})
	}
	return pts
}

// Crosses is defined only for the dimensionally mismatched pairs
// (line/line of different origin, line/polygon); spec.md §4.8 says other
// pairs (e.g. point/polygon) are not meaningfully defined and fall back to
// false.
func Crosses(a, b Shape) bool {
	switch {
	case a.Kind == KindLine && b.Kind == KindLine:
		for i := 0; i+1 < len(a.Line); i++ {
			for j := 0; j+1 < len(b.Line); j++ {
				if planar.SegmentsProperlyIntersect(a.Line[i], a.Line[i+1], b.Line[j], b.Line[j+1]) {
					return true
				}
			}
		}
		return false
	case a.Kind == KindLine && b.Kind == KindPolygon:
		return linesCrossPolygon(a.Line, b)
	case a.Kind == KindPolygon && b.Kind == KindLine:
		return linesCrossPolygon(b.Line, a)
	default:
		return false
	}
}

// linesCrossPolygon reports whether line has at least one point strictly
// inside poly and at least one point strictly outside it: it properly
// passes through the boundary rather than running entirely along it,
// entirely inside it, or entirely outside it.
func linesCrossPolygon(line []planar.Vec2D, poly Shape) bool {
	sawInterior, sawExterior := false, false
	for _, p := range line {
		interior, covered := pointInPolygonShape(p, poly)
		if interior {
			sawInterior = true
		}
		if !covered {
			sawExterior = true
		}
	}
	return sawInterior && sawExterior
}

// Overlaps reports whether a and b have the same dimension, share some
// interior area/length, and neither contains the other.
func Overlaps(a, b Shape) bool {
	if a.Kind != b.Kind {
		return false
	}
	if Equals(a, b) {
		return false
	}
	switch a.Kind {
	case KindPolygon:
		if !interiorsOverlap(a, b) {
			return false
		}
		return !Contains(a, b) && !Contains(b, a)
	case KindLine:
		if !lineIntersectsLine(a.Line, b.Line) {
			return false
		}
		return !containsLineInLine(a.Line, b.Line) && !containsLineInLine(b.Line, a.Line)
	default:
		return false
	}
}
