package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_InsertGet(t *testing.T) {
	a := New[string](4)

	k1 := a.Insert("one")
	k2 := a.Insert("two")

	v, ok := a.Get(k1)
	require.True(t, ok)
	assert.Equal(t, "one", *v)

	v, ok = a.Get(k2)
	require.True(t, ok)
	assert.Equal(t, "two", *v)

	assert.Equal(t, 2, a.Len())
	assert.NotEqual(t, k1, k2)
}

func TestArena_ZeroKeyNeverResolves(t *testing.T) {
	a := New[int](0)
	a.Insert(1)

	_, ok := a.Get(Key(0))
	assert.False(t, ok)
}

func TestArena_RemoveInvalidatesKey(t *testing.T) {
	type tc struct {
		reinsert bool
	}

	tests := map[string]tc{
		"slot left empty": {reinsert: false},
		"slot reused":     {reinsert: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := New[int](0)
			k := a.Insert(7)

			v, ok := a.Remove(k)
			require.True(t, ok)
			assert.Equal(t, 7, v)

			if tt.reinsert {
				k2 := a.Insert(8)
				assert.Equal(t, k.Index(), k2.Index(), "slot should be reused")
				assert.NotEqual(t, k.Generation(), k2.Generation())
				assert.True(t, a.Contains(k2))
			}

			assert.False(t, a.Contains(k))
			_, ok = a.Remove(k)
			assert.False(t, ok, "double remove should fail")
		})
	}
}

func TestArena_Clear(t *testing.T) {
	a := New[int](0)
	keys := []Key{a.Insert(1), a.Insert(2), a.Insert(3)}

	a.Clear()
	assert.Equal(t, 0, a.Len())
	for _, k := range keys {
		assert.False(t, a.Contains(k), "key %v should be stale", k)
	}

	k := a.Insert(4)
	assert.Equal(t, uint32(0), k.Index())
	assert.Equal(t, 1, a.Len())
}

func TestArena_All(t *testing.T) {
	a := New[int](0)
	k1 := a.Insert(10)
	k2 := a.Insert(20)
	k3 := a.Insert(30)
	a.Remove(k2)

	got := map[Key]int{}
	for k, v := range a.All() {
		got[k] = *v
	}

	assert.Equal(t, map[Key]int{k1: 10, k3: 30}, got)
}
