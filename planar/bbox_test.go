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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLonLatBoxContainsOrdinaryBox(t *testing.T) {
	box := LonLatBox{North: 10, South: -10, East: 20, West: -20}
	assert.False(t, box.IsTransmeridian())
	assert.True(t, box.Contains(0, 0))
	assert.True(t, box.Contains(10, 20))
	assert.False(t, box.Contains(11, 0))
	assert.False(t, box.Contains(0, 21))
}

func TestLonLatBoxContainsTransmeridianBox(t *testing.T) {
	box := LonLatBox{North: 10, South: -10, East: -170, West: 170}
	assert.True(t, box.IsTransmeridian())
	assert.True(t, box.Contains(0, 179))
	assert.True(t, box.Contains(0, -179))
	assert.False(t, box.Contains(0, 0))
}

func TestLonLatBoxDisjointByLatitude(t *testing.T) {
	a := LonLatBox{North: 10, South: 0, East: 10, West: 0}
	b := LonLatBox{North: -1, South: -10, East: 10, West: 0}
	assert.True(t, a.Disjoint(b))
}

func TestLonLatBoxDisjointByLongitude(t *testing.T) {
	a := LonLatBox{North: 10, South: 0, East: 10, West: 0}
	b := LonLatBox{North: 10, South: 0, East: 30, West: 20}
	assert.True(t, a.Disjoint(b))
}

func TestLonLatBoxNotDisjointWhenOverlapping(t *testing.T) {
	a := LonLatBox{North: 10, South: 0, East: 10, West: 0}
	b := LonLatBox{North: 10, South: 0, East: 15, West: 5}
	assert.False(t, a.Disjoint(b))
}

func TestLonLatBoxDisjointSkipsLongitudeCheckAcrossAntimeridian(t *testing.T) {
	a := LonLatBox{North: 10, South: 0, East: -170, West: 170}
	b := LonLatBox{North: 10, South: 0, East: 0, West: -5}
	assert.False(t, a.Disjoint(b))
}

func TestBoundingBoxOfPointsComputesExtent(t *testing.T) {
	lats := []float64{1, -2, 5, 0}
	lons := []float64{10, 20, -5, 0}
	box := BoundingBoxOfPoints(lats, lons)
	assert.Equal(t, LonLatBox{North: 5, South: -2, East: 20, West: -5}, box)
}

func TestBoundingBoxOfPointsEmptyIsZeroValue(t *testing.T) {
	assert.Equal(t, LonLatBox{}, BoundingBoxOfPoints(nil, nil))
}
