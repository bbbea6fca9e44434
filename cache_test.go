package cliq

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cachingClient implements every cache capability.
type cachingClient struct {
	entries     map[string]string
	cleared     int
	invalidated []string
}

func (c *cachingClient) CacheStats(context.Context) (any, error) {
	return map[string]any{"entries": len(c.entries)}, nil
}

func (c *cachingClient) ClearCache(context.Context) error {
	c.cleared++
	c.entries = map[string]string{}
	return nil
}

func (c *cachingClient) InvalidateCache(_ context.Context, key string) error {
	c.invalidated = append(c.invalidated, key)
	delete(c.entries, key)
	return nil
}

func newCacheApp(client *cachingClient) (*App[*cachingClient], *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	app := New[*cachingClient]("orders", "")
	app.Stdout = stdout
	app.Stderr = stderr
	app.NewClient = func(context.Context) (*cachingClient, error) { return client, nil }
	RegisterCacheCommands(app)
	return app, stdout, stderr
}

func TestCacheCommands(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stats", func(t *testing.T) {
		t.Parallel()
		client := &cachingClient{entries: map[string]string{"a": "1", "b": "2"}}
		app, stdout, _ := newCacheApp(client)
		code := app.Run(ctx, []string{"cache-stats"})
		require.Equal(t, ExitSuccess, code)
		assert.JSONEq(t, `{"entries": 2}`, stdout.String())
	})
	t.Run("clear", func(t *testing.T) {
		t.Parallel()
		client := &cachingClient{entries: map[string]string{"a": "1"}}
		app, stdout, _ := newCacheApp(client)
		code := app.Run(ctx, []string{"cache-clear"})
		require.Equal(t, ExitSuccess, code)
		assert.Equal(t, 1, client.cleared)
		assert.JSONEq(t, `{"cleared": true}`, stdout.String())
	})
	t.Run("invalidate", func(t *testing.T) {
		t.Parallel()
		client := &cachingClient{entries: map[string]string{"a": "1"}}
		app, stdout, _ := newCacheApp(client)
		code := app.Run(ctx, []string{"cache-invalidate", "--key", "a"})
		require.Equal(t, ExitSuccess, code)
		assert.Equal(t, []string{"a"}, client.invalidated)
		assert.JSONEq(t, `{"invalidated": "a"}`, stdout.String())
	})
	t.Run("invalidate requires a key", func(t *testing.T) {
		t.Parallel()
		client := &cachingClient{}
		app, _, stderr := newCacheApp(client)
		code := app.Run(ctx, []string{"cache-invalidate"})
		require.Equal(t, ExitFailure, code)
		assert.Contains(t, stderr.String(), "--key: missing required value")
		assert.Empty(t, client.invalidated)
	})
	t.Run("client without the capability", func(t *testing.T) {
		t.Parallel()
		stdout, stderr := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
		app := New[struct{}]("orders", "")
		app.Stdout = stdout
		app.Stderr = stderr
		RegisterCacheCommands(app)
		code := app.Run(ctx, []string{"cache-stats"})
		require.Equal(t, ExitFailure, code)
		assert.Contains(t, stderr.String(), "does not expose cache statistics")
	})
}
