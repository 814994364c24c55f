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

package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodggs/dggs/analysis"
	"github.com/icodggs/dggs/planar"
)

func square(minX, minY, maxX, maxY float64) []planar.Vec2D {
	return []planar.Vec2D{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY}, {X: minX, Y: minY},
	}
}

func TestEvaluateContainsForNestedSquares(t *testing.T) {
	outer := analysis.FromLonLatPolygon(square(0, 0, 10, 10), nil)
	inner := analysis.FromLonLatPolygon(square(2, 2, 4, 4), nil)

	ok, err := analysis.Evaluate(analysis.PredicateContains, outer, inner)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = analysis.Evaluate(analysis.PredicateWithin, inner, outer)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluateDisjointForSeparateSquares(t *testing.T) {
	a := analysis.FromLonLatPolygon(square(0, 0, 1, 1), nil)
	b := analysis.FromLonLatPolygon(square(5, 5, 6, 6), nil)

	ok, err := analysis.Evaluate(analysis.PredicateDisjoint, a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = analysis.Evaluate(analysis.PredicateIntersects, a, b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluateOverlapsForPartiallyOverlappingSquares(t *testing.T) {
	a := analysis.FromLonLatPolygon(square(0, 0, 4, 4), nil)
	b := analysis.FromLonLatPolygon(square(2, 2, 6, 6), nil)

	ok, err := analysis.Evaluate(analysis.PredicateOverlaps, a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = analysis.Evaluate(analysis.PredicateContains, a, b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluateEqualsForSameSquareDifferentStartVertex(t *testing.T) {
	a := analysis.FromLonLatPolygon(square(0, 0, 2, 2), nil)
	rotated := []planar.Vec2D{{X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}, {X: 2, Y: 0}}
	b := analysis.FromLonLatPolygon(rotated, nil)

	ok, err := analysis.Evaluate(analysis.PredicateEquals, a, b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluateTouchesForAdjacentSquares(t *testing.T) {
	a := analysis.FromLonLatPolygon(square(0, 0, 2, 2), nil)
	b := analysis.FromLonLatPolygon(square(2, 0, 4, 2), nil)

	ok, err := analysis.Evaluate(analysis.PredicateTouches, a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = analysis.Evaluate(analysis.PredicateOverlaps, a, b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluateCrossesForLineThroughPolygon(t *testing.T) {
	poly := analysis.FromLonLatPolygon(square(0, 0, 4, 4), nil)
	line := analysis.FromLonLatLine([]planar.Vec2D{{X: -1, Y: 2}, {X: 2, Y: 2}, {X: 5, Y: 2}})

	ok, err := analysis.Evaluate(analysis.PredicateCrosses, line, poly)
	require.NoError(t, err)
	assert.True(t, ok)
}
