/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package triconn

import (
	"errors"
)

var (
	// ErrMalformedInput is returned when adjacency text cannot be parsed,
	// or a neighbour id falls outside the declared vertex range.
	ErrMalformedInput = errors.New("triconn: malformed input")

	// ErrInconsistentUndirected is returned when an edge (a,b) appears in
	// a's adjacency list without a matching mate in b's list. The
	// algorithm relies on every undirected edge being listed on both
	// endpoints; this is a precondition check, not a recoverable runtime
	// error.
	ErrInconsistentUndirected = errors.New("triconn: inconsistent undirected adjacency")

	// ErrOutOfMemory is retained for API parity with the arena-allocation
	// failure mode of the algorithm's origin. Go reports allocation
	// failure via a runtime panic rather than a recoverable error, so
	// Compute never returns this sentinel; it exists so callers that
	// switch on all three historical error kinds still compile.
	ErrOutOfMemory = errors.New("triconn: out of memory")
)

// IsMalformed reports whether err is or wraps ErrMalformedInput.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsInconsistent reports whether err is or wraps ErrInconsistentUndirected.
func IsInconsistent(err error) bool {
	return errors.Is(err, ErrInconsistentUndirected)
}
