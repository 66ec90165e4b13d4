// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"math"
)

// growCapacity returns the capacity to allocate when the vector must grow
// beyond its current storage: doubling, with a floor of one slot.
func growCapacity(current int) int {
	if current == 0 {
		return 1
	}
	if current > math.MaxInt/2 {
		return math.MaxInt
	}
	return current * 2
}

// relocate transfers the live values in src into dst, which must be at
// least as long. In clone mode a failure disposes the clones already
// placed in dst and returns the error with src fully intact; in bitwise
// mode the transfer cannot fail and ownership of the values travels with
// the bits.
func relocate[T any](dst, src []T, c caps) error {
	if !c.relocateByClone() {
		copy(dst, src)
		return nil
	}
	for i := range src {
		val, err := cloneSlot(&src[i])
		if err != nil {
			disposeRange(dst[:i], c)
			return err
		}
		dst[i] = val
	}
	return nil
}

// discardOld finishes a successful relocation. Cloned sources still hold
// live values and are disposed; bitwise-moved sources are not, their
// ownership went with the bits.
func discardOld[T any](src []T, c caps) {
	if c.relocateByClone() {
		disposeRange(src, c)
	}
}

// Reserve grows the storage to hold at least capacity elements. It is a
// no-op when capacity does not exceed Cap(); element addresses are then
// untouched. On growth every element is relocated into fresh storage;
// if relocation fails the new storage is discarded and the vector is
// exactly as it was.
func (v *Vector[T]) Reserve(capacity int) error {
	if capacity <= v.data.Cap() {
		return nil
	}
	c := capsOf[T]()
	buf, err := NewBuffer[T](capacity)
	if err != nil {
		return err
	}
	if err := relocate(buf.slots[:v.size], v.live(), c); err != nil {
		buf.Release()
		return err
	}
	discardOld(v.live(), c)
	v.data.Swap(&buf)
	buf.Release()
	return nil
}

// Resize sets the length to n. Shrinking destroys the elements beyond n;
// growing reserves storage and exposes zero-value elements.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return ErrInvalidCapacity
	}
	if n <= v.size {
		disposeRange(v.data.slots[n:v.size], capsOf[T]())
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	// Slots beyond the live range are kept zeroed, so the newly exposed
	// elements already hold the zero value.
	v.size = n
	return nil
}

// PushBack appends value and returns its address. The vector owns the
// value on success; on error the vector is unchanged and the caller keeps
// ownership of value.
func (v *Vector[T]) PushBack(value T) (*T, error) {
	if v.size < v.data.Cap() {
		v.data.slots[v.size] = value
		v.size++
		return &v.data.slots[v.size-1], nil
	}

	c := capsOf[T]()
	buf, err := NewBuffer[T](growCapacity(v.size))
	if err != nil {
		return nil, err
	}
	// Stage the new element at its final slot before touching the old
	// elements: a failed relocation then leaves the old storage unread
	// and unmodified.
	buf.slots[v.size] = value
	if err := relocate(buf.slots[:v.size], v.live(), c); err != nil {
		// The staged element still belongs to the caller, so it is
		// cleared, not disposed.
		clear(buf.slots[v.size : v.size+1])
		buf.Release()
		return nil, err
	}
	discardOld(v.live(), c)
	v.data.Swap(&buf)
	buf.Release()
	v.size++
	return &v.data.slots[v.size-1], nil
}

// PopBack destroys the last element. It panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	disposeRange(v.data.slots[v.size-1:v.size], capsOf[T]())
	v.size--
}

// Insert places value before position i and returns its address. i may be
// any index in [0, Len()]; i == Len() appends. Ownership follows the
// PushBack rule: on error the vector is unchanged and the caller keeps
// value.
func (v *Vector[T]) Insert(i int, value T) (*T, error) {
	if i < 0 || i > v.size {
		panic("vector: insert position out of range")
	}
	if i == v.size {
		return v.PushBack(value)
	}

	if v.size < v.data.Cap() {
		// Room available: shift [i, size) one slot right and drop the
		// value in. The shifts are bitwise and cannot fail, so the array
		// is never left with a gap or a duplicate.
		slots := v.data.slots
		copy(slots[i+1:v.size+1], slots[i:v.size])
		slots[i] = value
		v.size++
		return &slots[i], nil
	}

	c := capsOf[T]()
	// size > 0 here: size == 0 forces i == size, the append case above,
	// so the doubled capacity needs no floor.
	buf, err := NewBuffer[T](growCapacity(v.size))
	if err != nil {
		return nil, err
	}
	buf.slots[i] = value
	if err := relocate(buf.slots[:i], v.data.slots[:i], c); err != nil {
		clear(buf.slots[i : i+1])
		buf.Release()
		return nil, err
	}
	if err := relocate(buf.slots[i+1:v.size+1], v.data.slots[i:v.size], c); err != nil {
		// Only the clone path can fail, so the relocated prefix holds
		// vector-owned clones; the staged element stays the caller's.
		disposeRange(buf.slots[:i], c)
		clear(buf.slots[i : i+1])
		buf.Release()
		return nil, err
	}
	discardOld(v.live(), c)
	v.data.Swap(&buf)
	buf.Release()
	v.size++
	return &v.data.slots[i], nil
}

// Erase destroys the element at position i and shifts the elements after
// it one slot left, so the element that followed the erased one ends up at
// index i. It panics unless 0 <= i < Len().
func (v *Vector[T]) Erase(i int) {
	if i < 0 || i >= v.size {
		panic("vector: erase position out of range")
	}
	c := capsOf[T]()
	if c.dispose {
		disposeSlot(&v.data.slots[i])
	}
	copy(v.data.slots[i:v.size-1], v.data.slots[i+1:v.size])
	clear(v.data.slots[v.size-1 : v.size])
	v.size--
}
