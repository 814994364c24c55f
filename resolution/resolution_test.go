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

package resolution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodggs/dggs/grid/triangle"
	"github.com/icodggs/dggs/resolution"
)

const earthRadiusM = 6371007.180918475

func TestToAccuracyShrinksAsResolutionGrows(t *testing.T) {
	g := triangle.New()
	shallow, err := resolution.ToAccuracy(g, 2, earthRadiusM)
	require.NoError(t, err)
	deep, err := resolution.ToAccuracy(g, 8, earthRadiusM)
	require.NoError(t, err)
	assert.Greater(t, shallow, deep)
}

func TestFromAccuracyRoundTripsWithToAccuracy(t *testing.T) {
	g := triangle.New()
	for res := 0; res <= 6; res++ {
		areaM2, err := resolution.ToAccuracy(g, res, earthRadiusM)
		require.NoError(t, err)
		got, err := resolution.FromAccuracy(g, areaM2, earthRadiusM)
		require.NoError(t, err)
		assert.Contains(t, []int{res, res + 1}, got)
	}
}

func TestFromAccuracyClampsAreaLargerThanWholeFace(t *testing.T) {
	g := triangle.New()
	sphereAreaM2 := 4 * 3.14159265358979 * earthRadiusM * earthRadiusM
	res, err := resolution.FromAccuracy(g, sphereAreaM2, earthRadiusM)
	require.NoError(t, err)
	assert.Equal(t, 0, res)
}
