package cliq

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/cliqkit/cliq/pkg/similar"
	"github.com/cliqkit/cliq/schema"
)

// Exec is a command handler. It receives the validated, typed arguments, the
// per-run client and the global flags, and returns a result to serialize or
// an error. The handler is the one place a run may block on external work.
type Exec[C any] func(ctx context.Context, args Args, client C, flags Globals) (any, error)

// Command describes a single registered command: the argument schema it
// validates against and the handler it dispatches to. Commands are immutable
// after registration.
type Command[C any] struct {
	// Schema validates the raw arguments. A nil schema accepts anything and
	// passes the raw mapping through unchanged.
	Schema schema.Type

	// Exec runs the command.
	Exec Exec[C]

	// Description is a short line shown in help text.
	Description string
}

// App is the command dispatcher: a named registry of commands plus the knobs
// for a run (client construction, IO streams, logging). Construct with [New],
// add commands with Register, then call Run once per process invocation.
type App[C any] struct {
	// Name and Description head the help banner. Version, when set, is shown
	// alongside the name.
	Name        string
	Description string
	Version     string

	// NewClient constructs the per-run execution context after validation
	// succeeds. When nil the zero value of C is used. The client is owned by
	// the single run that created it.
	NewClient func(ctx context.Context) (C, error)

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer

	// Logger, when set, overrides the logger derived from the --verbose flag.
	Logger hclog.Logger

	names    []string
	commands map[string]*Command[C]
}

// New returns an App for the given program name and description.
func New[C any](name, description string) *App[C] {
	return &App[C]{
		Name:        name,
		Description: description,
		commands:    make(map[string]*Command[C]),
	}
}

// Register adds a command under the name typed on the command line.
// Registration order is preserved in help output; registering the same name
// twice replaces the earlier definition.
func (a *App[C]) Register(name string, cmd *Command[C]) {
	if a.commands == nil {
		a.commands = make(map[string]*Command[C])
	}
	if _, exists := a.commands[name]; !exists {
		a.names = append(a.names, name)
	}
	a.commands[name] = cmd
}

func (a *App[C]) lookup(name string) *Command[C] {
	return a.commands[name]
}

// CacheDisabler is an optional client capability. A run with --no-cache
// invokes it right after the client is constructed.
type CacheDisabler interface {
	DisableCache()
}

// Disposable is an optional client capability. Teardown runs exactly once
// after the handler returns, whether or not it failed.
type Disposable interface {
	Dispose(ctx context.Context) error
}

// UnknownCommandError is reported when the command token does not match any
// registered name.
type UnknownCommandError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownCommandError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown command %q. Did you mean one of these?\n\t%s",
			e.Name, strings.Join(e.Suggestions, "\n\t"))
	}
	return fmt.Sprintf("unknown command %q", e.Name)
}

func (a *App[C]) unknownCommand(name string) *UnknownCommandError {
	return &UnknownCommandError{
		Name:        name,
		Suggestions: similar.Rank(name, a.names, 3),
	}
}
