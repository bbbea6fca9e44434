package schema

import (
	"strconv"
	"time"
)

// The helpers below wrap structural nodes in a Preprocess step that
// normalizes raw command-line input (strings and booleans). They only rewrite
// the representation; out-of-range and wrong-type failures still come from
// the structural node so their messages stay intact.

// Int coerces a decimal string to an integer. Empty or absent input resolves
// to no value so Optional and Default wrappers apply. Fractional input is a
// type failure, never a silent truncation.
func Int(opts ...NumberOption) Type {
	return Preprocess(coerceNumber, newNumber(true, opts))
}

// Float coerces a decimal string to a float.
func Float(opts ...NumberOption) Type {
	return Preprocess(coerceNumber, newNumber(false, opts))
}

// Bool coerces the strings "true" and "false"; boolean input passes through.
// Anything else resolves to no value, never to a silent false.
func Bool() Type {
	return Preprocess(coerceBool, boolType{})
}

// Date coerces either an RFC 3339 date-time with an explicit offset or a
// plain YYYY-MM-DD calendar date.
func Date() Type {
	return Preprocess(coerceDate, timeType{})
}

// Limit is a bounded pagination count: an integer in [1, max], defaulting to
// def when absent.
func Limit(def, max int) Type {
	return Default(Int(Min(1), Max(float64(max))), def)
}

func coerceNumber(v any) any {
	s, ok := v.(string)
	if !ok {
		// nil stays no-value; booleans and anything already typed pass
		// through for the structural node to judge.
		return v
	}
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Keep the raw string so the type mismatch reports what was given.
		return v
	}
	return f
}

func coerceBool(v any) any {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch t {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return nil
}

func coerceDate(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return v
}
