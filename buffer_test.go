// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBufferZeroCapacity(t *testing.T) {
	buf, err := NewBuffer[int](0)
	require.NoError(t, err)
	require.Equal(t, 0, buf.Cap())

	// The zero value behaves the same
	var zero Buffer[int]
	require.Equal(t, 0, zero.Cap())
}

func TestNewBufferNegativeCapacity(t *testing.T) {
	_, err := NewBuffer[int](-1)
	require.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestNewBufferOverflow(t *testing.T) {
	type wide struct {
		_ [1 << 20]byte
	}
	_, err := NewBuffer[wide](math.MaxInt/(1<<20) + 1)
	require.ErrorIs(t, err, ErrCapacityOverflow)
}

func TestNewBufferZeroSizedElement(t *testing.T) {
	buf, err := NewBuffer[struct{}](4)
	require.NoError(t, err)
	require.Equal(t, 4, buf.Cap())
}

func TestBufferSlot(t *testing.T) {
	buf, err := NewBuffer[int](3)
	require.NoError(t, err)
	require.Equal(t, 3, buf.Cap())

	*buf.Slot(0) = 10
	*buf.Slot(2) = 30
	require.Equal(t, 10, *buf.Slot(0))
	require.Equal(t, 30, *buf.Slot(2))

	require.PanicsWithValue(t, "vector: buffer slot out of range", func() {
		buf.Slot(3)
	})
	require.PanicsWithValue(t, "vector: buffer slot out of range", func() {
		buf.Slot(-1)
	})
}

func TestBufferSwap(t *testing.T) {
	a, err := NewBuffer[int](2)
	require.NoError(t, err)
	b, err := NewBuffer[int](5)
	require.NoError(t, err)
	*a.Slot(0) = 1
	*b.Slot(0) = 2

	a.Swap(&b)
	require.Equal(t, 5, a.Cap())
	require.Equal(t, 2, b.Cap())
	require.Equal(t, 2, *a.Slot(0))
	require.Equal(t, 1, *b.Slot(0))
}

func TestBufferMoveFrom(t *testing.T) {
	src, err := NewBuffer[int](4)
	require.NoError(t, err)
	*src.Slot(1) = 42

	var dst Buffer[int]
	got := dst.MoveFrom(&src)
	require.Same(t, &dst, got)
	require.Equal(t, 4, dst.Cap())
	require.Equal(t, 42, *dst.Slot(1))
	require.Equal(t, 0, src.Cap())
}

func TestBufferMoveFromReplacesOwnStorage(t *testing.T) {
	dst, err := NewBuffer[int](2)
	require.NoError(t, err)
	src, err := NewBuffer[int](8)
	require.NoError(t, err)

	dst.MoveFrom(&src)
	require.Equal(t, 8, dst.Cap())
	require.Equal(t, 0, src.Cap())
}

func TestBufferMoveFromSelf(t *testing.T) {
	buf, err := NewBuffer[int](3)
	require.NoError(t, err)
	*buf.Slot(0) = 7

	buf.MoveFrom(&buf)
	require.Equal(t, 3, buf.Cap())
	require.Equal(t, 7, *buf.Slot(0))
}

func TestBufferRelease(t *testing.T) {
	buf, err := NewBuffer[int](4)
	require.NoError(t, err)
	buf.Release()
	require.Equal(t, 0, buf.Cap())
}
