package cliq

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-hclog"

	"github.com/cliqkit/cliq/schema"
)

// Exit codes returned by [App.Run]. Help output counts as success.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Run executes a single invocation: tokenize, help short-circuit, lookup,
// validate, construct the client, dispatch, render. argv is the argument list
// without the program name, typically os.Args[1:]. The returned value is the
// process exit code.
//
// Validation always precedes client construction so that configuration or
// connection requirements never block the user from seeing argument errors.
func (a *App[C]) Run(ctx context.Context, argv []string) int {
	stdout := a.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := a.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	args := ParseArgs(argv)
	flags := GlobalsFrom(args)
	logger := a.runLogger(flags, stderr)

	name, ok := CommandToken(argv)
	if flags.Help || !ok || name == "help" {
		fmt.Fprintln(stdout, a.renderFullHelp())
		return ExitSuccess
	}

	cmd := a.lookup(name)
	if cmd == nil {
		a.writeError(stderr, a.unknownCommand(name))
		return ExitFailure
	}
	if cmd.Exec == nil {
		a.writeError(stderr, fmt.Errorf("command %q has no execution function", name))
		return ExitFailure
	}
	logger.Debug("resolved command", "command", name)

	typed, issues := validateArgs(cmd.Schema, args)
	if len(issues) > 0 {
		logger.Debug("validation failed", "command", name, "issues", len(issues))
		a.writeError(stderr, fmt.Errorf("invalid arguments for command %q:\n%s",
			name, FormatIssues(issues)))
		return ExitFailure
	}

	return a.execute(ctx, cmd, typed, flags, logger, stdout, stderr)
}

// execute covers client construction through result rendering. Teardown is
// deferred here so it runs on every path once a client exists, and only then.
func (a *App[C]) execute(
	ctx context.Context,
	cmd *Command[C],
	args Args,
	flags Globals,
	logger hclog.Logger,
	stdout, stderr io.Writer,
) int {
	client, err := a.newClient(ctx)
	if err != nil {
		a.writeError(stderr, err)
		return ExitFailure
	}
	defer func() {
		if d, ok := any(client).(Disposable); ok {
			if derr := d.Dispose(ctx); derr != nil {
				// The outcome has already been written; a teardown failure
				// must not mask it.
				logger.Warn("client teardown failed", "error", derr)
			}
		}
	}()

	if flags.NoCache {
		if cd, ok := any(client).(CacheDisabler); ok {
			logger.Debug("cache disabled for this run")
			cd.DisableCache()
		}
	}

	result, err := cmd.Exec(ctx, args, client, flags)
	if err != nil {
		a.writeError(stderr, err)
		return ExitFailure
	}
	if err := writeJSON(stdout, result); err != nil {
		a.writeError(stderr, fmt.Errorf("serializing result: %w", err))
		return ExitFailure
	}
	return ExitSuccess
}

func (a *App[C]) newClient(ctx context.Context) (C, error) {
	if a.NewClient == nil {
		var zero C
		return zero, nil
	}
	return a.NewClient(ctx)
}

func (a *App[C]) runLogger(flags Globals, w io.Writer) hclog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	if !flags.Verbose {
		return hclog.NewNullLogger()
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   a.Name,
		Level:  hclog.Debug,
		Output: w,
	})
}

// validateArgs runs a command schema against the raw arguments. Execution
// always validates against the schema itself, never against derived field
// metadata, so help rendering can never drift from what is enforced.
func validateArgs(t schema.Type, args Args) (Args, []schema.Issue) {
	if t == nil {
		return args, nil
	}
	value, issues := t.Validate(map[string]any(args))
	if len(issues) > 0 {
		return nil, issues
	}
	typed, ok := value.(map[string]any)
	if !ok {
		typed = map[string]any{}
	}
	return Args(typed), nil
}

// errorEnvelope is the structured failure object written to stderr.
type errorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func (a *App[C]) writeError(w io.Writer, err error) {
	// Envelope marshaling cannot realistically fail; fall back to the bare
	// message if it somehow does.
	if werr := writeJSON(w, errorEnvelope{Error: true, Message: err.Error()}); werr != nil {
		fmt.Fprintln(w, err.Error())
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
