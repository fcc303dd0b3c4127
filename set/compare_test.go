package set_test

import (
	"strings"
	"testing"

	"github.com/nhosoya/setflow/set"
	"github.com/stretchr/testify/assert"
)

func TestSet_Containment(t *testing.T) {
	t.Run("subset and superset", func(t *testing.T) {
		small := set.New(1, 2)
		big := set.New(1, 2, 3)

		assert.True(t, small.SubsetOf(big))
		assert.True(t, small.ProperSubsetOf(big))
		assert.True(t, big.SupersetOf(small))
		assert.True(t, big.ProperSupersetOf(small))

		assert.False(t, big.SubsetOf(small))
		assert.False(t, small.SupersetOf(big))
	})

	t.Run("a set is an improper subset of itself", func(t *testing.T) {
		s := set.New("a", "b")

		assert.True(t, s.SubsetOf(s))
		assert.True(t, s.SupersetOf(s))
		assert.False(t, s.ProperSubsetOf(s))
		assert.False(t, s.ProperSupersetOf(s))
	})

	t.Run("a set is a subset of its union with anything", func(t *testing.T) {
		a := set.New(1, 5)
		b := set.New(2, 6)

		assert.True(t, a.SubsetOf(a.Union(b)))
	})
}

func TestSet_Disjoint(t *testing.T) {
	t.Run("disjoint iff the intersection is empty", func(t *testing.T) {
		a := set.New(1, 2)
		b := set.New(3, 4)
		c := set.New(2, 3)

		assert.True(t, a.DisjointFrom(b))
		assert.True(t, a.Intersection(b).IsEmpty())

		assert.False(t, a.DisjointFrom(c))
		assert.False(t, a.Intersection(c).IsEmpty())
	})

	t.Run("intersects is the complement of disjoint", func(t *testing.T) {
		a := set.New("x")
		b := set.New("x", "y")

		assert.True(t, a.Intersects(b))
		assert.False(t, a.DisjointFrom(b))
		assert.False(t, a.Intersects(set.New("z")))
	})

	t.Run("the empty set is disjoint from everything", func(t *testing.T) {
		assert.True(t, set.New[int]().DisjointFrom(set.New(1)))
		assert.True(t, set.New[int]().DisjointFrom(set.New[int]()))
	})
}

func TestSet_Equal(t *testing.T) {
	t.Run("order of insertion is irrelevant", func(t *testing.T) {
		assert.True(t, set.New(1, 2, 3).Equal(set.New(3, 1, 2)))
	})

	t.Run("size mismatch is unequal", func(t *testing.T) {
		assert.False(t, set.New(1, 2).Equal(set.New(1, 2, 3)))
	})

	t.Run("containment is judged by the receiver's relation", func(t *testing.T) {
		caseInsensitive := set.Equivalence[string]{
			Hash:  func(v string) uint64 { return uint64(len(v)) },
			Equal: strings.EqualFold,
		}

		loose := set.NewWith(caseInsensitive, "go")
		strict := set.New("GO")

		assert.True(t, loose.Equal(strict))
		assert.False(t, strict.Equal(loose))
	})
}
