package cliq

import (
	"context"
	"fmt"

	"github.com/cliqkit/cliq/schema"
)

// Optional client capabilities for the cache command bundle. The bundle works
// with any client type; a client lacking a capability yields an execution
// error for that command rather than a registration-time constraint.

// CacheStatser reports cache statistics.
type CacheStatser interface {
	CacheStats(ctx context.Context) (any, error)
}

// CacheClearer empties the cache.
type CacheClearer interface {
	ClearCache(ctx context.Context) error
}

// CacheInvalidator removes a single cache entry.
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context, key string) error
}

// RegisterCacheCommands adds the cache management bundle: cache-stats,
// cache-clear and cache-invalidate. Included as a convenience; nothing in the
// engine depends on it.
func RegisterCacheCommands[C any](app *App[C]) {
	app.Register("cache-stats", &Command[C]{
		Description: "Show cache statistics.",
		Schema:      schema.Object(),
		Exec: func(ctx context.Context, _ Args, client C, _ Globals) (any, error) {
			cs, ok := any(client).(CacheStatser)
			if !ok {
				return nil, fmt.Errorf("client does not expose cache statistics")
			}
			return cs.CacheStats(ctx)
		},
	})

	app.Register("cache-clear", &Command[C]{
		Description: "Remove every entry from the cache.",
		Schema:      schema.Object(),
		Exec: func(ctx context.Context, _ Args, client C, _ Globals) (any, error) {
			cc, ok := any(client).(CacheClearer)
			if !ok {
				return nil, fmt.Errorf("client does not expose cache clearing")
			}
			if err := cc.ClearCache(ctx); err != nil {
				return nil, err
			}
			return map[string]any{"cleared": true}, nil
		},
	})

	app.Register("cache-invalidate", &Command[C]{
		Description: "Remove a single cache entry by key.",
		Schema: schema.Object(
			schema.Field{Name: "key", Type: schema.String(), Desc: "Cache key to invalidate."},
		),
		Exec: func(ctx context.Context, args Args, client C, _ Globals) (any, error) {
			ci, ok := any(client).(CacheInvalidator)
			if !ok {
				return nil, fmt.Errorf("client does not expose cache invalidation")
			}
			key, _ := args.String("key")
			if err := ci.InvalidateCache(ctx, key); err != nil {
				return nil, err
			}
			return map[string]any{"invalidated": key}, nil
		},
	})
}
