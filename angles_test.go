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

package dggs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapLongitudeStaysInRange(t *testing.T) {
	cases := []float64{0, 179.999, 180, 180.5, 360, -270, -540}
	for _, lon := range cases {
		w := WrapLongitude(lon)
		assert.LessOrEqual(t, w, 180.0)
		assert.Greater(t, w, -180.0)
	}
}

func TestWrapLongitudeIsIdempotentWithinRange(t *testing.T) {
	assert.InDelta(t, 90.0, WrapLongitude(90), 1e-9)
	assert.InDelta(t, -90.0, WrapLongitude(-90), 1e-9)
}

func TestAccuracyAngleAreaRoundTrips(t *testing.T) {
	for _, areaM2 := range []float64{1.0, 1000.0, 250000.0, 5000000.0} {
		angle := AreaM2ToAccuracyAngle(areaM2)
		back := AccuracyAngleToAreaM2(angle)
		assert.InEpsilon(t, areaM2, back, 1e-6)
	}
}
