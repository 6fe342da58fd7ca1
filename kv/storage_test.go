package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(s *Storage) (pairs []Pair) {
	for key, value := range s.Pairs() {
		pairs = append(pairs, Pair{key, value})
	}

	return pairs
}

func TestStorage(t *testing.T) {
	getStorage := func() *Storage {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum")
	}

	t.Run("get", func(t *testing.T) {
		kv := getStorage()
		value, found := kv.Get("Hello")
		require.True(t, found)
		require.Equal(t, "World", value)
	})

	t.Run("case sensitive", func(t *testing.T) {
		kv := getStorage()
		_, found := kv.Get("hello")
		require.False(t, found)
		_, found = kv.Get("FOO")
		require.False(t, found)
	})

	t.Run("value or", func(t *testing.T) {
		kv := getStorage()
		require.Equal(t, "anonymous", kv.ValueOr("name", "anonymous"))
		require.Equal(t, "ipsum", kv.ValueOr("Lorem", "anonymous"))
		require.Empty(t, kv.Value("name"))
	})

	t.Run("set keeps position", func(t *testing.T) {
		kv := getStorage().Set("Hello", "Pavlo")

		want := []Pair{
			{"Foo", "bar"},
			{"Hello", "Pavlo"},
			{"Lorem", "ipsum"},
		}

		require.Equal(t, want, collect(kv))
	})

	t.Run("set appends new", func(t *testing.T) {
		kv := getStorage().Set("name", "Ada")
		require.Equal(t, 4, kv.Len())
		require.Equal(t, Pair{"name", "Ada"}, collect(kv)[3])
	})

	t.Run("add keeps duplicates", func(t *testing.T) {
		kv := getStorage().Add("Foo", "baz")
		require.Equal(t, 4, kv.Len())
		require.Equal(t, "bar", kv.Value("Foo"))
	})

	t.Run("pairs break", func(t *testing.T) {
		var n int
		for range getStorage().Pairs() {
			n++
			break
		}

		require.Equal(t, 1, n)
	})

	t.Run("empty", func(t *testing.T) {
		require.True(t, New().Empty())
		require.True(t, NewPrealloc(8).Empty())
		require.False(t, getStorage().Empty())
	})
}
