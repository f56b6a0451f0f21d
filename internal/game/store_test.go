package game

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertCodeShape(t *testing.T) {
	t.Parallel()

	s := NewStore()
	for i := 0; i < 100; i++ {
		r := &Room{}
		s.Insert(r)
		require.Len(t, r.Code, 6)
		for _, c := range r.Code {
			assert.True(t, strings.ContainsRune(codeAlphabet, c), "code %s", r.Code)
		}
		// none of the lookalike characters
		assert.NotContains(t, r.Code, "0")
		assert.NotContains(t, r.Code, "O")
		assert.NotContains(t, r.Code, "1")
		assert.NotContains(t, r.Code, "I")

		got, ok := s.Get(r.Code)
		require.True(t, ok, "insert registers the room under its code")
		assert.Same(t, r, got)
	}
}

func TestInsertConcurrentCreates(t *testing.T) {
	t.Parallel()

	s := NewStore()
	const n = 64
	rooms := make([]*Room, n)
	for i := range rooms {
		rooms[i] = &Room{}
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(r *Room) {
			defer wg.Done()
			s.Insert(r)
		}(rooms[i])
	}
	wg.Wait()

	require.Len(t, s.Rooms(), n, "no insert may overwrite another room")
	seen := map[string]bool{}
	for _, r := range rooms {
		got, ok := s.Get(r.Code)
		require.True(t, ok)
		assert.Same(t, r, got)
		assert.False(t, seen[r.Code], "code %s minted twice", r.Code)
		seen[r.Code] = true
	}
}

func TestStoreLookup(t *testing.T) {
	t.Parallel()

	s := NewStore()
	r := &Room{Code: "ABCDEF"}
	s.Put(r)
	s.Bind("player-1", "ABCDEF")

	got, ok := s.Get("abcdef")
	require.True(t, ok, "codes are case-insensitive on lookup")
	assert.Same(t, r, got)

	got, ok = s.ByPlayer("player-1")
	require.True(t, ok)
	assert.Same(t, r, got)

	s.Remove("ABCDEF")
	_, ok = s.Get("ABCDEF")
	assert.False(t, ok)
	_, ok = s.ByPlayer("player-1")
	assert.False(t, ok, "removal clears player bindings")
}
