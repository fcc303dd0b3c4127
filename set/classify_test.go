package set_test

import (
	"testing"

	"github.com/nhosoya/setflow/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("groups by classifier result", func(t *testing.T) {
		s := set.New(1, 2, 3, 4)

		groups := set.Classify(s, func(v int) int { return v % 2 })

		require.Equal(t, 2, groups.Len())
		assert.Equal(t, []int{1, 3}, groups.MustGet(1).Items())
		assert.Equal(t, []int{2, 4}, groups.MustGet(0).Items())
	})

	t.Run("classifier values iterate in first-occurrence order", func(t *testing.T) {
		s := set.New("ant", "bee", "cow", "asp")

		groups := set.Classify(s, func(v string) byte { return v[0] })

		assert.Equal(t, []byte{'a', 'b', 'c'}, groups.Keys())
		assert.Equal(t, []string{"ant", "asp"}, groups.MustGet('a').Items())
	})

	t.Run("the source set is unchanged", func(t *testing.T) {
		s := set.New(1, 2, 3)

		set.Classify(s, func(v int) bool { return v > 1 })

		assert.Equal(t, []int{1, 2, 3}, s.Items())
	})
}

func TestSet_Divide(t *testing.T) {
	adjacent := func(a, b int) bool {
		d := a - b
		return d == 1 || d == -1
	}

	t.Run("partitions by the transitive closure of the relation", func(t *testing.T) {
		s := set.New(1, 3, 4, 6, 9, 10, 11)

		parts := set.Divide(s, adjacent)

		require.Equal(t, 4, parts.Len())

		var got [][]int
		parts.ForEach(func(part *set.Set[int], _ int) {
			got = append(got, part.Items())
		})
		assert.Equal(t, [][]int{{1}, {3, 4}, {6}, {9, 10, 11}}, got)
	})

	t.Run("partitions cover the source exactly", func(t *testing.T) {
		s := set.New(1, 3, 4, 6)

		parts := set.Divide(s, adjacent)

		total := 0
		recombined := set.New[int]()
		parts.ForEach(func(part *set.Set[int], _ int) {
			total += part.Len()
			recombined.Merge(part)
		})

		assert.Equal(t, s.Len(), total)
		assert.True(t, recombined.Equal(s))
		assert.Equal(t, []int{1, 3, 4, 6}, s.Items())
	})

	t.Run("a never-true relation yields singletons", func(t *testing.T) {
		s := set.New("a", "b", "c")

		parts := set.Divide(s, func(string, string) bool { return false })

		assert.Equal(t, 3, parts.Len())
	})

	t.Run("an always-true relation yields one partition", func(t *testing.T) {
		s := set.New(1, 2, 3)

		parts := set.Divide(s, func(int, int) bool { return true })

		require.Equal(t, 1, parts.Len())
		parts.ForEach(func(part *set.Set[int], _ int) {
			assert.Equal(t, []int{1, 2, 3}, part.Items())
		})
	})
}

func TestDivideBy(t *testing.T) {
	t.Run("unary form groups by key like classify", func(t *testing.T) {
		s := set.New(1, 2, 3, 4, 5)

		parts := set.DivideBy(s, func(v int) int { return v % 3 })

		require.Equal(t, 3, parts.Len())

		var got [][]int
		parts.ForEach(func(part *set.Set[int], _ int) {
			got = append(got, part.Items())
		})
		assert.Equal(t, [][]int{{1, 4}, {2, 5}, {3}}, got)
	})
}
