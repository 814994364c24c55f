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

package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodggs/dggs/polyhedron"
)

func TestForwardInverseRoundTripsAtFaceCentres(t *testing.T) {
	for _, face := range polyhedron.Faces {
		p := SpherePoint{LatDeg: face.CentreLatDeg, LonDeg: face.CentreLonDeg, AccuracyAngleDeg: 0.01}
		fc, err := Forward(p)
		require.NoError(t, err)
		assert.Equal(t, face.Index, fc.Face)
		assert.InDelta(t, 0, fc.X, 1e-6)
		assert.InDelta(t, 0, fc.Y, 1e-6)

		back, err := Inverse(fc)
		require.NoError(t, err)
		assert.InDelta(t, p.LatDeg, back.LatDeg, 1e-6)
		assert.InDelta(t, p.LonDeg, back.LonDeg, 1e-6)
	}
}

func TestForwardInverseRoundTripsOffCentre(t *testing.T) {
	face := polyhedron.Faces[0]
	p := SpherePoint{LatDeg: face.CentreLatDeg + 3, LonDeg: face.CentreLonDeg + 3, AccuracyAngleDeg: 0.001}

	fc, err := Forward(p)
	require.NoError(t, err)

	back, err := Inverse(fc)
	require.NoError(t, err)
	assert.InDelta(t, p.LatDeg, back.LatDeg, 1e-5)
	assert.InDelta(t, p.LonDeg, back.LonDeg, 1e-5)
}

func TestForwardFindsAFaceForEveryPointOnASweep(t *testing.T) {
	// Every point on the sphere belongs to some face; Forward should never
	// report errNoFace for an arbitrary grid of points.
	for lat := -80.0; lat <= 80.0; lat += 20 {
		for lon := -170.0; lon <= 170.0; lon += 20 {
			_, err := Forward(SpherePoint{LatDeg: lat, LonDeg: lon})
			require.NoError(t, err)
		}
	}
}
