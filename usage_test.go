package cliq

import (
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliqkit/cliq/schema"
)

func newHelpApp() *App[struct{}] {
	app := New[struct{}]("orders", "Inspect and manage a demo order book.")
	app.Version = "v0.3.1"
	app.Register("list-orders", &Command[struct{}]{
		Description: "List orders, newest first.",
		Schema: schema.Object(
			schema.Field{
				Name: "status",
				Type: schema.Optional(schema.Enum("open", "shipped", "cancelled")),
				Desc: "Only orders with this status.",
			},
			schema.Field{Name: "limit", Type: schema.Limit(50, 250), Desc: "Maximum rows returned."},
		),
		Exec: func(context.Context, Args, struct{}, Globals) (any, error) { return nil, nil },
	})
	app.Register("get-order", &Command[struct{}]{
		Description: "Fetch a single order.",
		Schema: schema.Object(
			schema.Field{Name: "orderId", Type: schema.String(), Desc: "Order identifier."},
		),
		Exec: func(context.Context, Args, struct{}, Globals) (any, error) { return nil, nil },
	})
	return app
}

func TestRenderFullHelp(t *testing.T) {
	color.NoColor = true

	app := newHelpApp()
	help := app.renderFullHelp()

	t.Run("banner", func(t *testing.T) {
		assert.Contains(t, help, "orders v0.3.1")
		assert.Contains(t, help, "Inspect and manage a demo order book.")
		assert.Contains(t, help, "orders <command> [--flags]")
	})
	t.Run("fixed global flags block", func(t *testing.T) {
		assert.Contains(t, help, "--help")
		assert.Contains(t, help, "--no-cache")
		assert.Contains(t, help, "--verbose")
	})
	t.Run("commands in registration order", func(t *testing.T) {
		first := strings.Index(help, "list-orders")
		second := strings.Index(help, "get-order")
		require.GreaterOrEqual(t, first, 0)
		require.GreaterOrEqual(t, second, 0)
		assert.Less(t, first, second)
	})
	t.Run("field rows", func(t *testing.T) {
		assert.Contains(t, help, "--status")
		assert.Contains(t, help, "open|shipped|cancelled")
		assert.Contains(t, help, "(optional)")
		assert.Contains(t, help, "--limit")
		assert.Contains(t, help, "(default: 50)")
		assert.Contains(t, help, "--order-id")
		assert.Contains(t, help, "<string>")
		assert.Contains(t, help, "(required)")
		assert.Contains(t, help, "Order identifier.")
	})
}

func TestRenderCommandHelp(t *testing.T) {
	color.NoColor = true

	app := newHelpApp()
	out := app.renderCommandHelp("get-order", app.lookup("get-order"))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  get-order", lines[0])
	assert.Equal(t, "    Fetch a single order.", lines[1])
	assert.Contains(t, lines[2], "--order-id")
	assert.Contains(t, lines[2], "<string>")
	assert.Contains(t, lines[2], "(required)")
	assert.Contains(t, lines[2], "Order identifier.")
}

func TestFormatIssues(t *testing.T) {
	t.Parallel()

	issues := []schema.Issue{
		{Path: "orderId", Kind: schema.KindRequired},
		{Path: "limit", Kind: schema.KindTooBig, Max: 250},
		{Path: "count", Kind: schema.KindTooSmall, Min: 1},
		{Path: "status", Kind: schema.KindInvalidEnum, Allowed: []string{"open", "closed"}},
		{Path: "orderId", Kind: schema.KindInvalidType, Expected: "string", Received: "true"},
		{Path: "", Kind: schema.KindCustom, Message: "expected object, received \"x\""},
	}
	got := FormatIssues(issues)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "  --order-id: missing required value", lines[0])
	assert.Equal(t, "  --limit: must be at most 250", lines[1])
	assert.Equal(t, "  --count: must be at least 1", lines[2])
	assert.Equal(t, "  --status: must be one of: open, closed", lines[3])
	assert.Equal(t, "  --order-id: expected string, received true", lines[4])
	assert.Equal(t, `  input: expected object, received "x"`, lines[5])
}
