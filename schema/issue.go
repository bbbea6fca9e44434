package schema

import (
	"fmt"
	"strconv"
)

// Kind classifies a validation issue.
type Kind int

const (
	// KindCustom is an issue with no dedicated classification; the Message
	// field carries the full explanation.
	KindCustom Kind = iota
	KindRequired
	KindInvalidType
	KindTooSmall
	KindTooBig
	KindInvalidEnum
)

// Issue is a single field-level validation failure. Path is the field name in
// compact form, or empty when the issue applies to the whole input.
type Issue struct {
	Path     string
	Kind     Kind
	Message  string
	Expected string
	Received string
	Min      float64
	Max      float64
	Allowed  []string
}

func requiredIssue() Issue {
	return Issue{Kind: KindRequired, Message: "required"}
}

func invalidTypeIssue(expected string, received any) Issue {
	r := valueLabel(received)
	return Issue{
		Kind:     KindInvalidType,
		Message:  fmt.Sprintf("expected %s, received %s", expected, r),
		Expected: expected,
		Received: r,
	}
}

func tooSmallIssue(min float64) Issue {
	return Issue{
		Kind:    KindTooSmall,
		Message: fmt.Sprintf("must be at least %s", formatNumber(min)),
		Min:     min,
	}
}

func tooBigIssue(max float64) Issue {
	return Issue{
		Kind:    KindTooBig,
		Message: fmt.Sprintf("must be at most %s", formatNumber(max)),
		Max:     max,
	}
}

func invalidEnumIssue(allowed []string, received any) Issue {
	return Issue{
		Kind:     KindInvalidEnum,
		Message:  fmt.Sprintf("invalid value %s", valueLabel(received)),
		Received: valueLabel(received),
		Allowed:  allowed,
	}
}

// valueLabel renders a raw value for inclusion in an error message. Strings
// are quoted so an empty or whitespace value is still visible.
func valueLabel(v any) string {
	switch t := v.(type) {
	case nil:
		return "nothing"
	case string:
		return strconv.Quote(t)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return formatNumber(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
