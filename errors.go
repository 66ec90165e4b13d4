// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"errors"
)

var (
	// ErrInvalidCapacity is returned when a negative capacity or length
	// is requested.
	ErrInvalidCapacity = errors.New("vector: negative capacity")

	// ErrCapacityOverflow is returned when the requested capacity would
	// overflow the addressable size of a single allocation.
	ErrCapacityOverflow = errors.New("vector: capacity overflow")

	// ErrMoveOnly is returned by duplicating operations (Clone, CopyFrom,
	// FromSlice) when the element type implements Disposer but not Cloner:
	// duplicating such a value bitwise would dispose the same resource twice.
	ErrMoveOnly = errors.New("vector: element type is move-only")
)
