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

// Package planar holds the 2D vector and polygon primitives used by the
// spatial analyser (native-frame and lon/lat-frame predicate evaluation),
// the navigation package and the root package. Kept dependency-free so any
// of them can import it without risk of a cycle.
package planar

import "math"

// Vec2D is a 2D floating-point vector.
type Vec2D struct {
	X, Y float64
}

// Magnitude returns the Euclidean length of v.
func (v Vec2D) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Sub returns v - o.
func (v Vec2D) Sub(o Vec2D) Vec2D { return Vec2D{v.X - o.X, v.Y - o.Y} }

// Add returns v + o.
func (v Vec2D) Add(o Vec2D) Vec2D { return Vec2D{v.X + o.X, v.Y + o.Y} }

// Scale returns v scaled by f.
func (v Vec2D) Scale(f float64) Vec2D { return Vec2D{v.X * f, v.Y * f} }

// Rotate returns v rotated counter-clockwise by angleRads radians.
func (v Vec2D) Rotate(angleRads float64) Vec2D {
	s, c := math.Sincos(angleRads)
	return Vec2D{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Equals reports whether v and o are identical (no epsilon slack).
func (v Vec2D) Equals(o Vec2D) bool { return v.X == o.X && v.Y == o.Y }

// AlmostEquals reports whether v and o are within eps of each other on both
// axes.
func (v Vec2D) AlmostEquals(o Vec2D, eps float64) bool {
	return math.Abs(v.X-o.X) < eps && math.Abs(v.Y-o.Y) < eps
}

// SegmentsIntersect finds the intersection point of segments p0-p1 and
// p2-p3, assuming the segments do intersect and the intersection is not at
// an endpoint of either. ok is false when the segments are parallel.
func SegmentsIntersect(p0, p1, p2, p3 Vec2D) (pt Vec2D, ok bool) {
	s1 := p1.Sub(p0)
	s2 := p3.Sub(p2)
	denom := -s2.X*s1.Y + s1.X*s2.Y
	if denom == 0 {
		return Vec2D{}, false
	}
	t := (s2.X*(p0.Y-p2.Y) - s2.Y*(p0.X-p2.X)) / denom
	return Vec2D{X: p0.X + t*s1.X, Y: p0.Y + t*s1.Y}, true
}

// SegmentsProperlyIntersect reports whether segment a0-a1 crosses segment
// b0-b1 at a point interior to both segments (used by the touches/crosses
// predicates to distinguish a crossing from a shared endpoint).
func SegmentsProperlyIntersect(a0, a1, b0, b1 Vec2D) bool {
	d1 := cross(b1.Sub(b0), a0.Sub(b0))
	d2 := cross(b1.Sub(b0), a1.Sub(b0))
	d3 := cross(a1.Sub(a0), b0.Sub(a0))
	d4 := cross(a1.Sub(a0), b1.Sub(a0))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(a, b Vec2D) float64 { return a.X*b.Y - a.Y*b.X }

// PointOnSegment reports whether p lies on the closed segment a-b (within
// eps), including its endpoints.
func PointOnSegment(p, a, b Vec2D, eps float64) bool {
	cr := cross(b.Sub(a), p.Sub(a))
	if math.Abs(cr) > eps*math.Max(1, b.Sub(a).Magnitude()) {
		return false
	}
	dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
	if dot < -eps {
		return false
	}
	lenSq := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	return dot <= lenSq+eps
}

// PointInPolygon reports whether p lies inside the closed ring using the
// standard even-odd ray casting rule. ring must already be closed
// (ring[0] == ring[len-1]). Points exactly on an edge are not classified
// consistently (some edges count as inside, others as outside); use
// PointOnRingBoundary to detect them.
func PointInPolygon(p Vec2D, ring []Vec2D) bool {
	inside := false
	n := len(ring)
	if n < 4 {
		return false
	}
	for i, j := 0, n-2; i < n-1; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}
	return inside
}

// PointOnRingBoundary reports whether p lies on any edge of the closed ring.
func PointOnRingBoundary(p Vec2D, ring []Vec2D, eps float64) bool {
	for i := 0; i+1 < len(ring); i++ {
		if PointOnSegment(p, ring[i], ring[i+1], eps) {
			return true
		}
	}
	return false
}

// SignedArea computes the signed area of a closed ring (positive if
// counter-clockwise).
func SignedArea(ring []Vec2D) float64 {
	area := 0.0
	for i := 0; i+1 < len(ring); i++ {
		area += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	return area / 2
}

// EnsureOrientation returns ring reordered so its signed area has the
// requested sign (ccw=true for positive/outer, ccw=false for negative/hole).
func EnsureOrientation(ring []Vec2D, ccw bool) []Vec2D {
	area := SignedArea(ring)
	if (area >= 0) == ccw {
		return ring
	}
	reversed := make([]Vec2D, len(ring))
	for i, p := range ring {
		reversed[len(ring)-1-i] = p
	}
	return reversed
}
