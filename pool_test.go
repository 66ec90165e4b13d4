// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolAcquireRelease(t *testing.T) {
	p := NewPool[int]()

	it := p.Acquire(1)
	require.Equal(t, uint64(1), it.Key)
	_, err := it.Vec.PushBack(42)
	require.NoError(t, err)
	capBefore := it.Vec.Cap()

	p.Release(it)

	it2 := p.Acquire(2)
	require.Same(t, it, it2)
	require.Equal(t, uint64(2), it2.Key)
	// Release reset the vector but kept its storage
	require.Equal(t, 0, it2.Vec.Len())
	require.Equal(t, capBefore, it2.Vec.Cap())

	runtime.KeepAlive(it)
}

func TestPoolSizesFreshVectorsByKey(t *testing.T) {
	p := NewPool[int]()

	it := p.Acquire(7)
	require.NoError(t, it.Vec.Reserve(64))
	p.Release(it)

	// Drain the pooled item, then force a fresh allocation for the key.
	pooled := p.Acquire(7)
	fresh := p.Acquire(7)
	require.NotSame(t, pooled, fresh)
	require.Equal(t, 64, fresh.Vec.Cap())

	runtime.KeepAlive(it)
	runtime.KeepAlive(pooled)
}

func TestPoolFreshVectorWithoutHistory(t *testing.T) {
	p := NewPool[int]()
	it := p.Acquire(99)
	require.Equal(t, 0, it.Vec.Cap())
}

func TestPoolReleaseMany(t *testing.T) {
	p := NewPool[string]()

	a := p.Acquire(1)
	b := p.Acquire(1)
	require.NotSame(t, a, b)

	p.ReleaseMany([]*Item[string]{a, b})
	require.Equal(t, uint64(0), a.Key)
	require.Equal(t, uint64(0), b.Key)

	x := p.Acquire(1)
	y := p.Acquire(1)
	require.NotSame(t, x, y)
	// Both pooled items came back out
	require.Contains(t, []*Item[string]{a, b}, x)
	require.Contains(t, []*Item[string]{a, b}, y)

	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
}

func TestPoolDisposesOnRelease(t *testing.T) {
	lc := &lifecycle{}
	p := NewPool[resource]()

	it := p.Acquire(1)
	_, err := it.Vec.PushBack(resource{id: 1, lc: lc})
	require.NoError(t, err)
	p.Release(it)

	require.Equal(t, 1, lc.disposes)
	runtime.KeepAlive(it)
}
