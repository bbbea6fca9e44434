package cliq

import "strings"

// optionPrefix introduces a named option token.
const optionPrefix = "--"

// Reserved global flag names, as typed on the command line.
const (
	flagHelp    = "help"
	flagNoCache = "no-cache"
	flagVerbose = "verbose"
)

// Args maps option names in compact form to a raw string or boolean value.
// It is built fresh per invocation by [ParseArgs] and treated as read-only
// from then on.
type Args map[string]any

// String returns the named value when it is a string.
func (a Args) String(name string) (string, bool) {
	s, ok := a[name].(string)
	return s, ok
}

// Bool returns the named value when it is a boolean.
func (a Args) Bool(name string) (bool, bool) {
	b, ok := a[name].(bool)
	return b, ok
}

// ParseArgs converts a flat token list into an option mapping. For each token,
// the first matching rule applies:
//
//  1. tokens without the -- prefix are skipped (the command token is picked
//     up separately by [CommandToken], and option values by rule 4)
//  2. --key=value splits at the first "=", keeping the remainder verbatim
//  3. --no-name sets "name" to false
//  4. --key followed by a non-option token consumes it as the value
//  5. a bare --flag is true
//
// A repeated option keeps its last value. The reserved global --no-cache is a
// flag in its own right, not a negation of "--cache", and yields noCache=true.
func ParseArgs(tokens []string) Args {
	args := Args{}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !strings.HasPrefix(tok, optionPrefix) {
			continue
		}
		body := tok[len(optionPrefix):]

		if key, value, found := strings.Cut(body, "="); found {
			args[KebabToCamel(key)] = value
			continue
		}
		if body == flagNoCache {
			args[KebabToCamel(body)] = true
			continue
		}
		if name, found := strings.CutPrefix(body, "no-"); found {
			args[KebabToCamel(name)] = false
			continue
		}
		if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], optionPrefix) {
			args[KebabToCamel(body)] = tokens[i+1]
			i++
			continue
		}
		args[KebabToCamel(body)] = true
	}
	return args
}

// CommandToken returns the first token that is not an option, which names the
// command to run. The command token itself is never placed in [Args].
func CommandToken(tokens []string) (string, bool) {
	for _, tok := range tokens {
		if !strings.HasPrefix(tok, optionPrefix) {
			return tok, true
		}
	}
	return "", false
}

// Globals is the fixed set of flags recognized across all commands,
// independent of any one command's schema. Derived once per run and passed by
// value into handlers.
type Globals struct {
	NoCache bool
	Help    bool
	Verbose bool
}

// GlobalsFrom derives the global flags from parsed arguments, coercing the
// strings "true"/"false" alongside boolean values.
func GlobalsFrom(args Args) Globals {
	return Globals{
		NoCache: truthy(args[KebabToCamel(flagNoCache)]),
		Help:    truthy(args[flagHelp]),
		Verbose: truthy(args[flagVerbose]),
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	}
	return false
}
