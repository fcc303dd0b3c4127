package set_test

import (
	"testing"

	"github.com/nhosoya/setflow/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_KeepIfDeleteIf(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	t.Run("keep if retains matching elements in order", func(t *testing.T) {
		s := set.New(1, 2, 3, 4, 5, 6)

		s.KeepIf(even)

		assert.Equal(t, []int{2, 4, 6}, s.Items())
	})

	t.Run("delete if removes matching elements in order", func(t *testing.T) {
		s := set.New(1, 2, 3, 4, 5, 6)

		s.DeleteIf(even)

		assert.Equal(t, []int{1, 3, 5}, s.Items())
	})

	t.Run("nx variants report whether anything changed", func(t *testing.T) {
		s := set.New(2, 4)

		assert.False(t, s.KeepIfNX(even))
		assert.Equal(t, 2, s.Len())

		assert.True(t, s.DeleteIfNX(even))
		assert.True(t, s.IsEmpty())
		assert.False(t, s.DeleteIfNX(even))
	})
}

func TestSet_TransformInPlace(t *testing.T) {
	t.Run("transform collapses elements that became equivalent", func(t *testing.T) {
		s := set.New(1, 2, 3)

		s.TransformInPlace(func(v int) int { return v % 2 })

		assert.Equal(t, []int{1, 0}, s.Items())
		assert.Equal(t, 2, s.Len())
	})

	t.Run("lookups work against the transformed elements", func(t *testing.T) {
		s := set.New("a", "b")

		s.TransformInPlace(func(v string) string { return v + "!" })

		assert.True(t, s.Has("a!"))
		assert.False(t, s.Has("a"))
	})
}

func TestSet_Reindex(t *testing.T) {
	type record struct{ id int }

	byID := set.Equivalence[*record]{
		Hash:  func(r *record) uint64 { return uint64(r.id) },
		Equal: func(a, b *record) bool { return a.id == b.id },
	}

	t.Run("out-of-band element mutation requires an explicit reindex", func(t *testing.T) {
		first := &record{id: 1}
		second := &record{id: 2}
		s := set.NewWith(byID, first, second)

		// The index cannot see this happen.
		second.id = 9

		assert.False(t, s.Has(&record{id: 9}))

		s.Reindex()

		assert.True(t, s.Has(&record{id: 9}))
		assert.False(t, s.Has(&record{id: 2}))
	})

	t.Run("reindex collapses elements mutated into equivalence", func(t *testing.T) {
		first := &record{id: 1}
		second := &record{id: 2}
		s := set.NewWith(byID, first, second)

		second.id = 1
		s.Reindex()

		require.Equal(t, 1, s.Len())
		assert.Equal(t, []*record{first}, s.Items())
	})
}
