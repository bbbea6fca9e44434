// Package cliq is a reusable engine for building command-line tools. It turns
// raw process arguments into validated, typed data, dispatches to a named
// command handler, and renders consistent help and error output.
//
// A program registers commands on an [App], each pairing a schema from the
// schema package with a handler, then hands os.Args[1:] to [App.Run]. The
// engine tokenizes arguments, applies the reserved global flags, validates
// against the command's schema, constructs a per-run client, and serializes
// the handler's result or error as pretty-printed JSON. Option names are
// compact (camelCase) inside the pipeline and hyphenated on every
// user-facing surface.
package cliq
