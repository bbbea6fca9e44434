// Package schema is a small structural validation layer for command-line
// arguments. A schema is built from a closed set of nodes: structural types
// (string, number, boolean, enum, timestamp), an object of named fields, and
// three wrappers (Optional, Default, Preprocess). Validation takes a raw
// string-or-boolean value and returns the typed result or a list of
// field-level issues; it never stops at the first failure.
package schema

import (
	"math"
	"time"
)

// Type is a validatable schema node. A nil input means no value was provided.
type Type interface {
	Validate(v any) (any, []Issue)
}

// Field is a single named entry in an object schema. Declaration order is
// preserved by validation and introspection.
type Field struct {
	Name string
	Type Type
	Desc string
}

// ObjectType validates a map of raw values against an ordered field list.
type ObjectType struct {
	fields []Field
}

// Object builds an object schema from the given fields.
func Object(fields ...Field) *ObjectType {
	return &ObjectType{fields: fields}
}

// Fields returns the declared fields in order.
func (o *ObjectType) Fields() []Field {
	return o.fields
}

// Validate checks every field and collects all issues. Keys not named by any
// field are dropped from the result. On success the returned value is a
// map[string]any holding typed values; absent optional fields are omitted.
func (o *ObjectType) Validate(v any) (any, []Issue) {
	if v == nil {
		v = map[string]any{}
	}
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, []Issue{invalidTypeIssue("object", v)}
	}

	out := make(map[string]any, len(o.fields))
	var issues []Issue
	for _, f := range o.fields {
		value := raw[f.Name]

		// Peel wrapper nodes so that optional/default handling sees the
		// value after any preprocessing has run.
		t := f.Type
		required := true
		var def func() any
	unwrap:
		for {
			switch n := t.(type) {
			case *optionalType:
				required = false
				t = n.inner
			case *defaultType:
				required = false
				def = n.produce
				t = n.inner
			case *preprocessType:
				value = n.fn(value)
				t = n.inner
			default:
				break unwrap
			}
		}

		if value == nil {
			switch {
			case def != nil:
				out[f.Name] = def()
			case required:
				issues = append(issues, at(f.Name, requiredIssue()))
			}
			continue
		}

		typed, fieldIssues := t.Validate(value)
		if len(fieldIssues) > 0 {
			for _, is := range fieldIssues {
				issues = append(issues, at(f.Name, is))
			}
			continue
		}
		out[f.Name] = typed
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

func at(name string, is Issue) Issue {
	if is.Path == "" {
		is.Path = name
	}
	return is
}

type stringType struct{}

// String matches any string value.
func String() Type { return stringType{} }

func (stringType) Validate(v any) (any, []Issue) {
	if v == nil {
		return nil, []Issue{requiredIssue()}
	}
	s, ok := v.(string)
	if !ok {
		return nil, []Issue{invalidTypeIssue("string", v)}
	}
	return s, nil
}

type numberType struct {
	integer  bool
	min, max *float64
}

// NumberOption constrains a numeric schema node.
type NumberOption func(*numberType)

// Min sets an inclusive lower bound.
func Min(v float64) NumberOption {
	return func(n *numberType) { n.min = &v }
}

// Max sets an inclusive upper bound.
func Max(v float64) NumberOption {
	return func(n *numberType) { n.max = &v }
}

// Number matches an already-numeric value. Command-line input is textual, so
// most callers want the coercing Int or Float helpers instead.
func Number(opts ...NumberOption) Type {
	return newNumber(false, opts)
}

func newNumber(integer bool, opts []NumberOption) *numberType {
	n := &numberType{integer: integer}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *numberType) Validate(v any) (any, []Issue) {
	if v == nil {
		return nil, []Issue{requiredIssue()}
	}
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	default:
		expected := "number"
		if n.integer {
			expected = "integer"
		}
		return nil, []Issue{invalidTypeIssue(expected, v)}
	}
	if n.integer && f != math.Trunc(f) {
		return nil, []Issue{invalidTypeIssue("integer", v)}
	}
	var issues []Issue
	if n.min != nil && f < *n.min {
		issues = append(issues, tooSmallIssue(*n.min))
	}
	if n.max != nil && f > *n.max {
		issues = append(issues, tooBigIssue(*n.max))
	}
	if len(issues) > 0 {
		return nil, issues
	}
	if n.integer {
		return int(f), nil
	}
	return f, nil
}

type boolType struct{}

func (boolType) Validate(v any) (any, []Issue) {
	if v == nil {
		return nil, []Issue{requiredIssue()}
	}
	b, ok := v.(bool)
	if !ok {
		return nil, []Issue{invalidTypeIssue("boolean", v)}
	}
	return b, nil
}

type enumType struct {
	values []string
}

// Enum matches one of a fixed set of string values.
func Enum(values ...string) Type {
	return &enumType{values: values}
}

func (e *enumType) Validate(v any) (any, []Issue) {
	if v == nil {
		return nil, []Issue{requiredIssue()}
	}
	s, ok := v.(string)
	if !ok {
		return nil, []Issue{invalidEnumIssue(e.values, v)}
	}
	for _, allowed := range e.values {
		if s == allowed {
			return s, nil
		}
	}
	return nil, []Issue{invalidEnumIssue(e.values, v)}
}

type timeType struct{}

func (timeType) Validate(v any) (any, []Issue) {
	if v == nil {
		return nil, []Issue{requiredIssue()}
	}
	t, ok := v.(time.Time)
	if !ok {
		return nil, []Issue{invalidTypeIssue("timestamp", v)}
	}
	return t, nil
}

type optionalType struct {
	inner Type
}

// Optional marks a node as not required; an absent value validates to no
// value at all.
func Optional(inner Type) Type {
	return &optionalType{inner: inner}
}

func (o *optionalType) Validate(v any) (any, []Issue) {
	if v == nil {
		return nil, nil
	}
	return o.inner.Validate(v)
}

type defaultType struct {
	inner   Type
	produce func() any
}

// Default supplies a value when none was provided. The default is produced
// lazily so callers may pass values that are expensive to build.
func Default(inner Type, value any) Type {
	return DefaultFunc(inner, func() any { return value })
}

// DefaultFunc is Default with an explicit producer.
func DefaultFunc(inner Type, produce func() any) Type {
	return &defaultType{inner: inner, produce: produce}
}

func (d *defaultType) Validate(v any) (any, []Issue) {
	if v == nil {
		return d.produce(), nil
	}
	return d.inner.Validate(v)
}

type preprocessType struct {
	fn    func(any) any
	inner Type
}

// Preprocess rewrites a raw value before the inner node validates it. The
// function must be pure; returning nil signals that no value was provided.
func Preprocess(fn func(any) any, inner Type) Type {
	return &preprocessType{fn: fn, inner: inner}
}

func (p *preprocessType) Validate(v any) (any, []Issue) {
	return p.inner.Validate(p.fn(v))
}
