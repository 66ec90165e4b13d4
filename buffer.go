// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"math"
	"unsafe"
)

// Buffer is raw, fixed-capacity slot storage for values of type T. It owns a
// single contiguous allocation sized for Cap() slots and knows nothing about
// which slots hold live values: it never clones, disposes, or otherwise
// inspects element contents. Lifecycle bookkeeping is the owner's job, and
// the owner must destroy any live values before releasing the Buffer.
//
// The zero value is an empty Buffer with capacity 0 and no allocation.
// A Buffer must not be copied after first use; ownership of the backing
// storage moves only through MoveFrom and Swap.
type Buffer[T any] struct {
	slots []T // backing allocation, len == capacity, nil when capacity is 0
}

// NewBuffer allocates storage for capacity slots of type T. A capacity of
// zero allocates nothing. It returns ErrInvalidCapacity for a negative
// capacity and ErrCapacityOverflow when capacity slots would exceed the
// addressable size of a single allocation.
func NewBuffer[T any](capacity int) (Buffer[T], error) {
	if capacity < 0 {
		return Buffer[T]{}, ErrInvalidCapacity
	}
	if capacity == 0 {
		return Buffer[T]{}, nil
	}
	var x T
	if size := unsafe.Sizeof(x); size > 0 && uintptr(capacity) > math.MaxInt/size {
		return Buffer[T]{}, ErrCapacityOverflow
	}
	return Buffer[T]{slots: make([]T, capacity)}, nil
}

// Cap returns the number of slots the Buffer can hold. This is storage
// capacity, not a count of live values.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Slot returns the address of slot i. It panics unless 0 <= i < Cap().
// Whether the slot holds a live value is for the owner to know.
func (b *Buffer[T]) Slot(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic("vector: buffer slot out of range")
	}
	return &b.slots[i]
}

// Swap exchanges the backing storage and capacity with other. Never fails.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// MoveFrom releases the receiver's own storage, takes over other's storage
// and capacity, and leaves other empty. It returns the updated receiver.
// Never fails.
func (b *Buffer[T]) MoveFrom(other *Buffer[T]) *Buffer[T] {
	if b == other {
		return b
	}
	b.slots = other.slots
	other.slots = nil
	return b
}

// Release drops the backing allocation. The Buffer returns to its zero
// state and may be reused.
func (b *Buffer[T]) Release() {
	b.slots = nil
}
