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

// Package dggs implements a Discrete Global Grid System: it maps points,
// lines and polygons on the Earth's surface onto a recursive, face-indexed
// hierarchy of equal-area cells on an icosahedron, and computes topological
// relations between shapes expressed as cells.
package dggs

import "fmt"

// ErrKind enumerates the API-observable error categories. Callers that care
// about recovering programmatically should switch on this, not on the error
// string.
type ErrKind int

const (
	// SUCCESS is never attached to an error value; it exists so ErrKind's
	// zero value reads as "no error" in debug output.
	SUCCESS ErrKind = iota
	NOT_IMPLEMENTED
	INVALID_HANDLE
	INVALID_PARAM
	NULL_POINTER
	MODEL_ERROR
	CELL_LENGTH_TOO_LONG
	MEMORY_ALLOCATION_FAILURE
	UNKNOWN_ERROR
)

func (k ErrKind) String() string {
	switch k {
	case SUCCESS:
		return "SUCCESS"
	case NOT_IMPLEMENTED:
		return "NOT_IMPLEMENTED"
	case INVALID_HANDLE:
		return "INVALID_HANDLE"
	case INVALID_PARAM:
		return "INVALID_PARAM"
	case NULL_POINTER:
		return "NULL_POINTER"
	case MODEL_ERROR:
		return "MODEL_ERROR"
	case CELL_LENGTH_TOO_LONG:
		return "CELL_LENGTH_TOO_LONG"
	case MEMORY_ALLOCATION_FAILURE:
		return "MEMORY_ALLOCATION_FAILURE"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error is the typed error every exported operation in this module returns.
// It carries the kind a C-ABI-facing layer would surface, so a wrapping
// façade can translate it back into a numeric code without string matching.
type Error struct {
	Kind ErrKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, &dggs.Error{Kind: dggs.MODEL_ERROR}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewError constructs an *Error of the given kind with a formatted message.
func NewError(kind ErrKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
