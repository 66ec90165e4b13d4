// SPDX-License-Identifier: Apache-2.0

package vector

// Cloner is implemented by element types whose values must be deep-copied
// when a vector duplicates them (Clone, CopyFrom, FromSlice, and relocation
// to new storage unless the type is also Relocatable). Clone returns an
// independent copy of the value, or an error if the copy cannot be made;
// the error propagates unchanged out of whichever vector operation
// triggered the copy. Value and pointer receivers are both honored.
//
// Types that do not implement Cloner are duplicated bitwise.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Disposer is implemented by element types that own external resources.
// Dispose is called exactly once for each live value a vector destroys:
// on Erase, PopBack, shrinking Resize, Reset, Release, and for values that
// were copied (not moved) to new storage during relocation.
//
// A type that implements Disposer but not Cloner is move-only: duplicating
// operations report ErrMoveOnly instead of aliasing the resource.
type Disposer interface {
	Dispose()
}

// Relocatable tags element types whose values may be transferred bitwise
// between storage buffers even though the type implements Cloner. Without
// the tag, a Cloner is relocated by Clone so that a failed copy leaves the
// old storage fully intact; the tag asserts the cheaper transfer is safe
// because it cannot fail and the value holds no self-referential state.
type Relocatable interface {
	Relocatable()
}

// caps records which lifecycle operations the element type supports,
// resolved once per structural operation.
type caps struct {
	clone   bool
	dispose bool
	tagged  bool
}

func capsOf[T any]() caps {
	var z T
	var c caps
	if _, ok := any(z).(Cloner[T]); ok {
		c.clone = true
	} else if _, ok := any(&z).(Cloner[T]); ok {
		c.clone = true
	}
	if _, ok := any(&z).(Disposer); ok {
		c.dispose = true
	} else if _, ok := any(z).(Disposer); ok {
		c.dispose = true
	}
	if _, ok := any(z).(Relocatable); ok {
		c.tagged = true
	} else if _, ok := any(&z).(Relocatable); ok {
		c.tagged = true
	}
	return c
}

// moveOnly reports whether values can be destroyed but not duplicated.
func (c caps) moveOnly() bool {
	return c.dispose && !c.clone
}

// relocateByClone reports whether relocation between buffers must go
// through Clone. Bitwise transfer is used when the type cannot be cloned
// at all (moving is the only option) or when the Relocatable tag declares
// it safe; a clone-capable type without the tag is never moved bitwise.
func (c caps) relocateByClone() bool {
	return c.clone && !c.tagged
}

func cloneSlot[T any](p *T) (T, error) {
	if c, ok := any(*p).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(p).(Cloner[T]); ok {
		return c.Clone()
	}
	return *p, nil
}

func disposeSlot[T any](p *T) {
	if d, ok := any(p).(Disposer); ok {
		d.Dispose()
		return
	}
	if d, ok := any(*p).(Disposer); ok {
		d.Dispose()
	}
}

// disposeRange destroys the live values in s and zeroes the slots so a
// retained buffer does not pin their referents.
func disposeRange[T any](s []T, c caps) {
	if c.dispose {
		for i := range s {
			disposeSlot(&s[i])
		}
	}
	clear(s)
}
