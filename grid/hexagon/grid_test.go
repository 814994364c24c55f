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

package hexagon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodggs/dggs/cell"
)

func TestCentreRoundTripsThroughFaceCoordinate(t *testing.T) {
	g := New()
	c := cell.NewHexagonCell(4, 5, 12, -7, cell.LocationFaceInterior)

	fc, err := g.FaceCoordinateFromCell(c)
	require.NoError(t, err)

	found, err := g.CellFromFaceCoordinate(fc, c.Resolution)
	require.NoError(t, err)
	assert.True(t, found.Equal(c))
}

func TestGetParentsAtLeastOneAndAtMostThree(t *testing.T) {
	g := New()
	for _, c := range []cell.Cell{
		cell.NewHexagonCell(2, 6, 0, 0, cell.LocationFaceInterior),
		cell.NewHexagonCell(2, 6, 37, -19, cell.LocationFaceInterior),
	} {
		parents, err := g.GetParents(c)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(parents), 1)
		assert.LessOrEqual(t, len(parents), 3)
		for _, p := range parents {
			assert.Equal(t, c.Resolution-1, p.Resolution)
		}
	}
}

func TestGetChildrenReturnsSeven(t *testing.T) {
	g := New()
	c := cell.NewHexagonCell(9, 3, 4, -2, cell.LocationFaceInterior)
	children, err := g.GetChildren(c)
	require.NoError(t, err)
	assert.Len(t, children, 7)
	for _, ch := range children {
		assert.Equal(t, c.Resolution+1, ch.Resolution)
	}
}

func TestResolutionZeroHasNoParent(t *testing.T) {
	g := New()
	_, err := g.GetParents(cell.NewHexagonCell(0, 0, 0, 0, cell.LocationFaceInterior))
	assert.Error(t, err)
}

func TestAccuracyFromResolutionZeroIsWholeFace(t *testing.T) {
	g := New()
	acc, err := g.AccuracyFromResolution(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)
}

func TestVerticesAtResolutionZeroAreTheThreeFaceCorners(t *testing.T) {
	g := New()
	c := cell.NewHexagonCell(0, 0, 0, 0, cell.LocationFaceInterior)
	v, err := g.GetVertices(c)
	require.NoError(t, err)
	assert.Len(t, v, 3)
}

func TestVerticesAtDeeperResolutionAreHexagonal(t *testing.T) {
	g := New()
	c := cell.NewHexagonCell(0, 4, 2, 2, cell.LocationFaceInterior)
	v, err := g.GetVertices(c)
	require.NoError(t, err)
	assert.Len(t, v, 6)
}

func TestResolutionFromAccuracyTiesToFinerResolution(t *testing.T) {
	g := New()

	coarse, err := g.AccuracyFromResolution(1)
	require.NoError(t, err)
	fine, err := g.AccuracyFromResolution(2)
	require.NoError(t, err)

	// The midpoint between resolution 1's and resolution 2's accuracy is
	// exactly as far from either candidate; on that tie the finer
	// resolution wins.
	midpoint := (coarse + fine) / 2

	res, err := g.ResolutionFromAccuracy(midpoint)
	require.NoError(t, err)
	assert.Equal(t, 2, res)
}
