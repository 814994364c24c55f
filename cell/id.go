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

package cell

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCellIDLength bounds a textual cell ID: a 2-digit face prefix plus up
// to 40 payload characters, the deepest a triangle digit path ever
// reaches. A hexagon ID's resolution-plus-offset payload shares the same
// overall budget rather than getting one of its own.
const MaxCellIDLength = 42

// MaxResolution is the deepest resolution either grid indexes to.
const MaxResolution = 40

// IDError is returned by Parse/Serialize for malformed or oversized cell
// IDs; TooLong distinguishes the CELL_LENGTH_TOO_LONG case from a plain
// MODEL_ERROR.
type IDError struct {
	TooLong bool
	Msg     string
}

func (e *IDError) Error() string { return e.Msg }

func errTooLong(format string, args ...interface{}) *IDError {
	return &IDError{TooLong: true, Msg: fmt.Sprintf(format, args...)}
}

func errMalformed(format string, args ...interface{}) *IDError {
	return &IDError{Msg: fmt.Sprintf(format, args...)}
}

// Serialize renders a Cell as its external wire-format string.
//
// A triangle cell's resolution is never written explicitly: the payload
// is the base-4 digit path itself, and Parse recovers the resolution
// from its length. A hexagon cell's payload has no such built-in length
// cue, since row and column are signed, variable-width decimals with no
// delimiter before them, so it carries an explicit 2-digit decimal
// resolution field ahead of "row,col".
func Serialize(c Cell) (string, error) {
	if c.Face < 0 || c.Face > 19 {
		return "", errMalformed("face index %d out of range 0-19", c.Face)
	}
	if c.Kind == KindTriangle && c.Resolution > MaxResolution {
		return "", errTooLong("triangle cell ID of resolution %d exceeds maximum length %d", c.Resolution, MaxCellIDLength)
	}
	if c.Resolution < 0 || c.Resolution > MaxResolution {
		return "", errMalformed("resolution %d out of range 0-%d", c.Resolution, MaxResolution)
	}

	var payload string
	switch c.Kind {
	case KindTriangle:
		if len(c.Digits) != c.Resolution {
			return "", errMalformed("triangle cell digit path length %d does not match resolution %d", len(c.Digits), c.Resolution)
		}
		b := make([]byte, len(c.Digits))
		for i, d := range c.Digits {
			if d > 3 {
				return "", errMalformed("invalid triangle digit %d", d)
			}
			b[i] = '0' + d
		}
		payload = string(b)
	case KindHexagon:
		payload = fmt.Sprintf("%02d%d,%d", c.Resolution, c.Row, c.Col)
	default:
		return "", errMalformed("unknown cell kind %d", c.Kind)
	}

	id := fmt.Sprintf("%02d%s", c.Face, payload)
	if len(id) > MaxCellIDLength {
		return "", errTooLong("cell ID %q exceeds maximum length %d", id, MaxCellIDLength)
	}
	return id, nil
}

// Parse decodes a textual cell ID back into a structured Cell. kind tells
// Parse which grid's payload shape to expect, since the wire format's
// 2-digit face prefix alone does not disambiguate a triangle digit path
// from a hexagon resolution-plus-offset payload.
func Parse(id string, kind Kind) (Cell, error) {
	if len(id) > MaxCellIDLength {
		return Cell{}, errTooLong("cell ID %q exceeds maximum length %d", id, MaxCellIDLength)
	}
	if len(id) < 2 {
		return Cell{}, errMalformed("cell ID %q is too short", id)
	}
	face, err := strconv.Atoi(id[0:2])
	if err != nil || face < 0 || face > 19 {
		return Cell{}, errMalformed("cell ID %q has invalid face prefix", id)
	}
	payload := id[2:]

	switch kind {
	case KindTriangle:
		digits := make([]byte, len(payload))
		for i := 0; i < len(payload); i++ {
			d := payload[i]
			if d < '0' || d > '3' {
				return Cell{}, errMalformed("invalid triangle digit %q in %q", d, id)
			}
			digits[i] = d - '0'
		}
		return NewTriangleCell(face, digits, LocationUnknown), nil
	case KindHexagon:
		if len(payload) < 2 {
			return Cell{}, errMalformed("hexagon cell ID %q is missing its resolution field", id)
		}
		resolution, err := strconv.Atoi(payload[0:2])
		if err != nil || resolution < 0 || resolution > MaxResolution {
			return Cell{}, errMalformed("hexagon cell ID %q has invalid resolution field %q", id, payload[0:2])
		}
		parts := strings.SplitN(payload[2:], ",", 2)
		if len(parts) != 2 {
			return Cell{}, errMalformed("hexagon payload %q is not row,column", payload[2:])
		}
		row, err1 := strconv.Atoi(parts[0])
		col, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return Cell{}, errMalformed("hexagon payload %q is not numeric row,column", payload[2:])
		}
		return NewHexagonCell(face, resolution, row, col, LocationUnknown), nil
	default:
		return Cell{}, errMalformed("unknown cell kind %d", kind)
	}
}
