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

package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodggs/dggs/cell"
	"github.com/icodggs/dggs/grid/triangle"
	"github.com/icodggs/dggs/navigation"
)

func TestGetSiblingsExcludesSelf(t *testing.T) {
	g := triangle.New()
	c := cell.NewTriangleCell(2, []byte{1, 3, 0}, cell.LocationFaceInterior)

	siblings, err := navigation.GetSiblings(g, c)
	require.NoError(t, err)
	assert.Len(t, siblings, 3)
	for _, s := range siblings {
		assert.False(t, s.Equal(c))
	}
}

func TestBoundingCellOfIdenticalCellsIsItself(t *testing.T) {
	g := triangle.New()
	c := cell.NewTriangleCell(1, []byte{2, 2, 1}, cell.LocationFaceInterior)

	found, err := navigation.BoundingCell(g, []cell.Cell{c, c})
	require.NoError(t, err)
	assert.True(t, found.Equal(c))
}

func TestBoundingCellOfSiblingsIsTheirParent(t *testing.T) {
	g := triangle.New()
	parent := cell.NewTriangleCell(6, []byte{3, 0}, cell.LocationFaceInterior)
	children, err := g.GetChildren(parent)
	require.NoError(t, err)

	found, err := navigation.BoundingCell(g, children)
	require.NoError(t, err)
	assert.True(t, found.Equal(parent))
}

func TestBoundingCellAcrossDifferentFacesErrors(t *testing.T) {
	g := triangle.New()
	a := cell.NewTriangleCell(0, []byte{1}, cell.LocationFaceInterior)
	b := cell.NewTriangleCell(1, []byte{1}, cell.LocationFaceInterior)

	_, err := navigation.BoundingCell(g, []cell.Cell{a, b})
	require.Error(t, err)
	assert.ErrorIs(t, err, navigation.ErrDifferentFaces)
}

func TestBoundingCellRejectsEmptyInput(t *testing.T) {
	g := triangle.New()
	_, err := navigation.BoundingCell(g, nil)
	assert.ErrorIs(t, err, navigation.ErrEmpty)
}
