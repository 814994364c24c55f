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

package dggs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodggs/dggs"
)

func TestCellLinestringFromLinestringHonoursPerPointAccuracy(t *testing.T) {
	d, err := dggs.New(dggs.ISEA4T)
	require.NoError(t, err)

	ls := dggs.Linestring{Points: []dggs.Point{
		{LatitudeDeg: 10, LongitudeDeg: 20, AccuracyM2: 5000000.0},
		{LatitudeDeg: 10.01, LongitudeDeg: 20.01, AccuracyM2: 1.0},
	}}

	cls, err := d.CellLinestringFromLinestring(ls)
	require.NoError(t, err)
	require.Len(t, cls.Cells, 2)

	// The coarse-accuracy point and the fine-accuracy point should not
	// land at the same resolution; per-point accuracy has to actually
	// reach each point's own cell, not a single shape-wide figure.
	assert.NotEqual(t, cls.Cells[0].Resolution, cls.Cells[1].Resolution)
}

func TestCellPolygonFromPolygonHonoursPerRingPointAccuracy(t *testing.T) {
	d, err := dggs.New(dggs.ISEA4T)
	require.NoError(t, err)

	poly := dggs.Polygon{
		Outer: dggs.Ring{Points: []dggs.Point{
			{LatitudeDeg: 0, LongitudeDeg: 0, AccuracyM2: 5000000.0},
			{LatitudeDeg: 0, LongitudeDeg: 4, AccuracyM2: 5000000.0},
			{LatitudeDeg: 4, LongitudeDeg: 4, AccuracyM2: 5000000.0},
			{LatitudeDeg: 4, LongitudeDeg: 0, AccuracyM2: 5000000.0},
		}},
		Inners: []dggs.Ring{{Points: []dggs.Point{
			{LatitudeDeg: 1, LongitudeDeg: 1, AccuracyM2: 1.0},
			{LatitudeDeg: 1, LongitudeDeg: 2, AccuracyM2: 1.0},
			{LatitudeDeg: 2, LongitudeDeg: 2, AccuracyM2: 1.0},
		}}},
	}

	cp, err := d.CellPolygonFromPolygon(poly)
	require.NoError(t, err)
	require.Len(t, cp.Outer, 5) // closed: 4 points + repeated first
	require.Len(t, cp.Inners, 1)
	require.Len(t, cp.Inners[0], 4)

	assert.NotEqual(t, cp.Outer[0].Resolution, cp.Inners[0][0].Resolution)
}
