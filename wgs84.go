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
	"github.com/icodggs/dggs/ellipsoid"
	"github.com/icodggs/dggs/projection"
)

// CellFromWGS84Point is the converter-aware variant of CellFromPoint: it
// takes a point on the WGS84 ellipsoid, converts it to the authalic
// sphere per spec.md §4.1, and indexes the result.
func (d *DGGS) CellFromWGS84Point(p WGS84AccuracyPoint) (Cell, error) {
	sphereLat, sphereLon, err := ellipsoid.GeodeticToSphere(p.LatitudeDeg, p.LongitudeDeg, 0)
	if err != nil {
		return Cell{}, NewError(MODEL_ERROR, "wgs84 to sphere: %s", err.Error())
	}
	sp := projection.SpherePoint{
		LatDeg:           sphereLat,
		LonDeg:           sphereLon,
		AccuracyAngleDeg: AreaM2ToAccuracyAngle(p.AccuracyM2),
	}
	return d.CellFromPoint(sp)
}

// PointFromCellAsWGS84 is PointFromCell's converter-aware counterpart: it
// recovers c's centre on the authalic sphere, then converts back to
// WGS84.
func (d *DGGS) PointFromCellAsWGS84(c Cell) (WGS84AccuracyPoint, error) {
	sp, err := d.PointFromCell(c)
	if err != nil {
		return WGS84AccuracyPoint{}, err
	}
	latDeg, lonDeg, err := ellipsoid.SphereToGeodetic(sp.LatDeg, sp.LonDeg)
	if err != nil {
		return WGS84AccuracyPoint{}, NewError(MODEL_ERROR, "sphere to wgs84: %s", err.Error())
	}
	return WGS84AccuracyPoint{
		LatitudeDeg:  latDeg,
		LongitudeDeg: lonDeg,
		AccuracyM2:   AccuracyAngleToAreaM2(sp.AccuracyAngleDeg),
	}, nil
}
