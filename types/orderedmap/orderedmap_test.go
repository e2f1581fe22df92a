package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		om := New[string, int]()

		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)

		om.Set("two", 22)
		val, exists = om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 22, val)

		_, exists = om.Get("four")
		assert.False(t, exists)
		assert.True(t, om.Has("one"))
		assert.False(t, om.Has("four"))
	})

	t.Run("overwrite keeps insertion order", func(t *testing.T) {
		om := New[string, int]()
		om.Set("a", 1)
		om.Set("b", 2)
		om.Set("c", 3)
		om.Set("b", 22)

		assert.Equal(t, []string{"a", "b", "c"}, om.Keys())
	})

	t.Run("deletion", func(t *testing.T) {
		om := New[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Delete("one")
		om.Delete("missing")

		assert.Equal(t, 1, om.Len())
		assert.Equal(t, []string{"two"}, om.Keys())
	})

	t.Run("iteration order", func(t *testing.T) {
		om := New[string, int]()
		om.Set("first", 1)
		om.Set("second", 2)
		om.Set("third", 3)

		var keys []string
		var values []int
		for e := om.Front(); e != nil; e = e.Next() {
			keys = append(keys, e.Key)
			values = append(values, e.Value)
		}
		assert.Equal(t, []string{"first", "second", "third"}, keys)
		assert.Equal(t, []int{1, 2, 3}, values)

		keys = keys[:0]
		for e := om.Back(); e != nil; e = e.Prev() {
			keys = append(keys, e.Key)
		}
		assert.Equal(t, []string{"third", "second", "first"}, keys)
	})

	t.Run("empty map iteration", func(t *testing.T) {
		om := New[string, int]()
		assert.Nil(t, om.Front())
		assert.Nil(t, om.Back())
		assert.Equal(t, 0, om.Len())
	})
}
