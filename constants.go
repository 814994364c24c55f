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

import "math"

const (
	// pi
	mPi = math.Pi
	// 2*pi
	m2Pi = 2.0 * math.Pi
	// pi / 180
	mPi180 = math.Pi / 180
	// 180 / pi
	m180Pi = 180 / math.Pi

	// tolerance used when clamping WGS84AccuracyPoint lat/lon to their
	// bounds
	boundClampToleranceDeg = 1e-12
)

// EarthRadiusM is the WGS84 authalic sphere radius in metres. Every
// on-sphere distance and area computation in this module is relative to
// this radius.
const EarthRadiusM = 6371007.180918475

func degToRad(d float64) float64 { return d * mPi180 }
func radToDeg(r float64) float64 { return r * m180Pi }
