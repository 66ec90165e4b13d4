// SPDX-License-Identifier: Apache-2.0

// Package vector implements a growable contiguous sequence of typed
// elements built from first principles: a raw fixed-capacity Buffer that
// owns storage but no element lifetimes, and a Vector on top of it that
// owns construction, destruction, and growth. Element types may opt into
// deep copies, destructors, and bitwise relocation through the Cloner,
// Disposer, and Relocatable interfaces.
package vector

import (
	"iter"
)

// Vector is a growable contiguous sequence of T. Slots [0, Len()) of the
// backing Buffer hold live values; slots [Len(), Cap()) are kept at the
// zero value. The zero Vector is empty and ready to use.
//
// A Vector has exactly one owner. Concurrent structural mutation without
// external synchronization is a contract violation, not a supported mode.
type Vector[T any] struct {
	data Buffer[T]
	size int
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithLen returns a vector of n zero-value elements with capacity
// exactly n.
func NewWithLen[T any](n int) (*Vector[T], error) {
	buf, err := NewBuffer[T](n)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{data: buf, size: n}, nil
}

// FromSlice returns a vector holding a copy of s with capacity exactly
// len(s). Cloner elements are cloned one by one; if a clone fails partway,
// the clones already made are disposed, the new storage is discarded, and
// the error is returned with s untouched. Move-only element types report
// ErrMoveOnly.
func FromSlice[T any](s []T) (*Vector[T], error) {
	c := capsOf[T]()
	buf, err := buildCopy(s, c)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{data: buf, size: len(s)}, nil
}

// buildCopy copies src into a fresh buffer of exactly len(src) slots,
// disposing the partially built prefix if a clone fails.
func buildCopy[T any](src []T, c caps) (Buffer[T], error) {
	if c.moveOnly() {
		return Buffer[T]{}, ErrMoveOnly
	}
	buf, err := NewBuffer[T](len(src))
	if err != nil {
		return Buffer[T]{}, err
	}
	if !c.clone {
		copy(buf.slots, src)
		return buf, nil
	}
	for i := range src {
		val, err := cloneSlot(&src[i])
		if err != nil {
			disposeRange(buf.slots[:i], c)
			buf.Release()
			return Buffer[T]{}, err
		}
		buf.slots[i] = val
	}
	return buf, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements the vector can hold before it must
// reallocate.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// live returns the slots holding live values.
func (v *Vector[T]) live() []T {
	return v.data.slots[:v.size]
}

// At returns the address of element i. It panics unless 0 <= i < Len().
// The pointer is invalidated by any structural mutation (growth, Insert,
// Erase, Resize).
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vector: index out of range")
	}
	return &v.data.slots[i]
}

// Data returns the live elements as a slice view over the vector's own
// storage. The view is invalidated by any structural mutation.
func (v *Vector[T]) Data() []T {
	return v.live()
}

// All returns an iterator over index/element pairs of the live range.
// The sequence is restartable. Structurally mutating the vector while
// iterating invalidates the iterator.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.slots[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order. The sequence
// is restartable; the same invalidation rule as All applies.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.slots[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the vector with capacity exactly
// Len(). Strong guarantee: if cloning an element fails, everything built
// so far is destroyed and the receiver is untouched. Move-only element
// types report ErrMoveOnly.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := capsOf[T]()
	buf, err := buildCopy(v.live(), c)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{data: buf, size: v.size}, nil
}

// CopyFrom replaces the receiver's contents with a copy of rhs.
//
// When rhs does not fit in the current storage, a full copy of rhs is
// built first and then swapped in, so a failure leaves the receiver
// untouched. When it does fit, the common prefix is overwritten slot by
// slot and the tail is either clone-extended or destroyed; a clone failure
// on this path leaves an already-overwritten prefix behind (the size is
// unchanged and every slot still holds a live value).
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	c := capsOf[T]()
	if c.moveOnly() {
		return ErrMoveOnly
	}

	if rhs.size > v.data.Cap() {
		buf, err := buildCopy(rhs.live(), c)
		if err != nil {
			return err
		}
		tmp := Vector[T]{data: buf, size: rhs.size}
		v.Swap(&tmp)
		tmp.Release()
		return nil
	}

	n := min(v.size, rhs.size)
	for i := 0; i < n; i++ {
		if err := assignSlot(&v.data.slots[i], &rhs.data.slots[i], c); err != nil {
			return err
		}
	}
	if rhs.size > v.size {
		for i := v.size; i < rhs.size; i++ {
			val, err := cloneSlot(&rhs.data.slots[i])
			if err != nil {
				disposeRange(v.data.slots[v.size:i], c)
				return err
			}
			v.data.slots[i] = val
		}
	} else {
		disposeRange(v.data.slots[rhs.size:v.size], c)
	}
	v.size = rhs.size
	return nil
}

// assignSlot overwrites the live value at dst with a copy of src. The copy
// is made before the old value is destroyed, so a clone failure leaves dst
// intact.
func assignSlot[T any](dst, src *T, c caps) error {
	if !c.clone {
		*dst = *src
		return nil
	}
	val, err := cloneSlot(src)
	if err != nil {
		return err
	}
	if c.dispose {
		disposeSlot(dst)
	}
	*dst = val
	return nil
}

// Swap exchanges contents with other in O(1). Never fails. Swapping with
// an empty vector is the move idiom: the receiver takes other's elements
// and other ends up with whatever the receiver held.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Reset destroys all live elements but keeps the storage for reuse.
func (v *Vector[T]) Reset() {
	disposeRange(v.live(), capsOf[T]())
	v.size = 0
}

// Release destroys all live elements and drops the storage. The vector
// returns to its zero state and may be reused.
func (v *Vector[T]) Release() {
	disposeRange(v.live(), capsOf[T]())
	v.size = 0
	v.data.Release()
}
