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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func square() []Vec2D {
	return []Vec2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}}
}

func TestPointInPolygonInsideOutsideAndBoundary(t *testing.T) {
	ring := square()
	assert.True(t, PointInPolygon(Vec2D{X: 2, Y: 2}, ring))
	assert.False(t, PointInPolygon(Vec2D{X: 10, Y: 10}, ring))
	// the ray-casting rule counts this right-hand edge point as outside;
	// edge points are detected by PointOnRingBoundary, not PointInPolygon.
	assert.False(t, PointInPolygon(Vec2D{X: 4, Y: 2}, ring))
}

func TestPointInPolygonRejectsOpenRing(t *testing.T) {
	assert.False(t, PointInPolygon(Vec2D{X: 1, Y: 1}, []Vec2D{{X: 0, Y: 0}, {X: 1, Y: 0}}))
}

func TestPointOnSegmentEndpointsAndMidpoint(t *testing.T) {
	a, b := Vec2D{X: 0, Y: 0}, Vec2D{X: 4, Y: 0}
	assert.True(t, PointOnSegment(a, a, b, 1e-9))
	assert.True(t, PointOnSegment(b, a, b, 1e-9))
	assert.True(t, PointOnSegment(Vec2D{X: 2, Y: 0}, a, b, 1e-9))
	assert.False(t, PointOnSegment(Vec2D{X: 2, Y: 1}, a, b, 1e-9))
	assert.False(t, PointOnSegment(Vec2D{X: 5, Y: 0}, a, b, 1e-9))
}

func TestPointOnRingBoundaryFindsEdgePoint(t *testing.T) {
	ring := square()
	assert.True(t, PointOnRingBoundary(Vec2D{X: 4, Y: 2}, ring, 1e-9))
	assert.False(t, PointOnRingBoundary(Vec2D{X: 2, Y: 2}, ring, 1e-9))
}

func TestSegmentsIntersectOfCrossingDiagonals(t *testing.T) {
	pt, ok := SegmentsIntersect(Vec2D{X: 0, Y: 0}, Vec2D{X: 4, Y: 4}, Vec2D{X: 0, Y: 4}, Vec2D{X: 4, Y: 0})
	assert.True(t, ok)
	assert.InDelta(t, 2, pt.X, 1e-9)
	assert.InDelta(t, 2, pt.Y, 1e-9)
}

func TestSegmentsIntersectOfParallelLinesIsNotOk(t *testing.T) {
	_, ok := SegmentsIntersect(Vec2D{X: 0, Y: 0}, Vec2D{X: 4, Y: 0}, Vec2D{X: 0, Y: 1}, Vec2D{X: 4, Y: 1})
	assert.False(t, ok)
}

func TestSegmentsProperlyIntersectCrossingVsSharedEndpoint(t *testing.T) {
	assert.True(t, SegmentsProperlyIntersect(
		Vec2D{X: 0, Y: 0}, Vec2D{X: 4, Y: 4},
		Vec2D{X: 0, Y: 4}, Vec2D{X: 4, Y: 0},
	))
	// segments sharing only an endpoint do not properly intersect.
	assert.False(t, SegmentsProperlyIntersect(
		Vec2D{X: 0, Y: 0}, Vec2D{X: 4, Y: 4},
		Vec2D{X: 4, Y: 4}, Vec2D{X: 8, Y: 0},
	))
}

func TestSignedAreaPositiveForCounterClockwiseRing(t *testing.T) {
	assert.InDelta(t, 16, SignedArea(square()), 1e-9)
}

func TestSignedAreaNegativeForClockwiseRing(t *testing.T) {
	ring := square()
	reversed := make([]Vec2D, len(ring))
	for i, p := range ring {
		reversed[len(ring)-1-i] = p
	}
	assert.InDelta(t, -16, SignedArea(reversed), 1e-9)
}

func TestEnsureOrientationFlipsOnlyWhenNeeded(t *testing.T) {
	ccw := square()
	still := EnsureOrientation(ccw, true)
	assert.Equal(t, ccw, still)

	flipped := EnsureOrientation(ccw, false)
	assert.InDelta(t, -16, SignedArea(flipped), 1e-9)
}

func TestVec2DArithmetic(t *testing.T) {
	a := Vec2D{X: 1, Y: 2}
	b := Vec2D{X: 3, Y: -1}
	assert.Equal(t, Vec2D{X: 4, Y: 1}, a.Add(b))
	assert.Equal(t, Vec2D{X: -2, Y: 3}, a.Sub(b))
	assert.Equal(t, Vec2D{X: 2, Y: 4}, a.Scale(2))
	assert.InDelta(t, math.Sqrt(5), a.Magnitude(), 1e-9)
}

func TestVec2DRotateByQuarterTurn(t *testing.T) {
	v := Vec2D{X: 1, Y: 0}
	r := v.Rotate(math.Pi / 2)
	assert.True(t, r.AlmostEquals(Vec2D{X: 0, Y: 1}, 1e-9))
}

func TestVec2DEqualsIsExactAlmostEqualsIsTolerant(t *testing.T) {
	a := Vec2D{X: 1, Y: 1}
	b := Vec2D{X: 1 + 1e-12, Y: 1}
	assert.False(t, a.Equals(b))
	assert.True(t, a.AlmostEquals(b, 1e-9))
}
