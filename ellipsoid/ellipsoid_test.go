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

package ellipsoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeodeticToSphereRoundTrips(t *testing.T) {
	cases := []struct{ lat, lon float64 }{
		{0, 0},
		{51.477928, -0.001545},
		{-33.856784, 151.215297},
		{89.9, 179.9},
	}
	for _, c := range cases {
		sphereLat, sphereLon, err := GeodeticToSphere(c.lat, c.lon, 0)
		require.NoError(t, err)
		lat, lon, err := SphereToGeodetic(sphereLat, sphereLon)
		require.NoError(t, err)
		assert.InDelta(t, c.lat, lat, 1e-9)
		assert.InDelta(t, c.lon, lon, 1e-9)
	}
}

func TestGeodeticToSphereEquatorIsUnchanged(t *testing.T) {
	sphereLat, sphereLon, err := GeodeticToSphere(0, 42, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, sphereLat, 1e-12)
	assert.Equal(t, 42.0, sphereLon)
}

func TestGeodeticToSphereRejectsOutOfRangeLatitude(t *testing.T) {
	_, _, err := GeodeticToSphere(91, 0, 0)
	assert.Error(t, err)
}
