package hashset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSet is a map-backed model of a set, used to check Set against.
type mapSet[T comparable] struct {
	data map[T]struct{}
}

func newMapSet[T comparable]() *mapSet[T] {
	return &mapSet[T]{data: make(map[T]struct{})}
}

func (s *mapSet[T]) add(value T) {
	s.data[value] = struct{}{}
}

func (s *mapSet[T]) contains(value T) bool {
	_, exists := s.data[value]
	return exists
}

// remove deletes value and reports whether it was present.
func (s *mapSet[T]) remove(value T) bool {
	if !s.contains(value) {
		return false
	}
	delete(s.data, value)
	return true
}

func (s *mapSet[T]) values() []T {
	values := make([]T, 0, len(s.data))
	for v := range s.data {
		values = append(values, v)
	}
	return values
}

func TestAgainstMapModel(t *testing.T) {
	for _, capacity := range []int{1, 3, DefaultCapacity} {
		rng := rand.New(rand.NewSource(int64(capacity)))
		s := NewWithCapacity(Ints(), capacity)
		model := newMapSet[int]()

		for step := 0; step < 2000; step++ {
			v := rng.Intn(64) - 32
			if rng.Intn(3) == 0 {
				require.Equal(t, model.remove(v), s.Remove(v), "remove %d at step %d", v, step)
			} else {
				model.add(v)
				s.Insert(v)
			}
			require.Equal(t, len(model.data), s.Size(), "size at step %d", step)
		}

		for v := -32; v < 32; v++ {
			assert.Equal(t, model.contains(v), s.Contains(v), "contains %d", v)
		}
		assert.ElementsMatch(t, model.values(), s.Values())
	}
}
