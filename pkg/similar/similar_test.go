package similar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	t.Parallel()

	commands := []string{"list-orders", "get-order", "cache-stats", "cache-clear", "cache-invalidate"}

	t.Run("close typo", func(t *testing.T) {
		t.Parallel()
		got := Rank("get-ordr", commands, 3)
		assert.Contains(t, got, "get-order")
	})
	t.Run("prefix outranks distance", func(t *testing.T) {
		t.Parallel()
		got := Rank("cache", commands, 3)
		assert.Len(t, got, 3)
		for _, name := range got {
			assert.Contains(t, name, "cache")
		}
	})
	t.Run("unrelated input yields nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Rank("zzzzzzzzzz", commands, 3))
	})
	t.Run("limit respected", func(t *testing.T) {
		t.Parallel()
		got := Rank("cache-", commands, 2)
		assert.Len(t, got, 2)
	})
	t.Run("empty target", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Rank("", commands, 3))
	})
	t.Run("stable ordering on ties", func(t *testing.T) {
		t.Parallel()
		got := Rank("cache", commands, 5)
		assert.Equal(t, []string{"cache-clear", "cache-invalidate", "cache-stats"}, got)
	})
}
