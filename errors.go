package cliq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cliqkit/cliq/schema"
)

// FormatIssues renders validation issues as flag-shaped messages, one line
// per issue in the order they were collected. Each line is prefixed with the
// hyphenated flag path, or the word "input" when the issue applies to the
// whole argument set.
func FormatIssues(issues []schema.Issue) string {
	lines := make([]string, 0, len(issues))
	for _, is := range issues {
		path := "input"
		if is.Path != "" {
			path = optionPrefix + CamelToKebab(is.Path)
		}
		lines = append(lines, "  "+path+": "+issueMessage(is))
	}
	return strings.Join(lines, "\n")
}

func issueMessage(is schema.Issue) string {
	switch is.Kind {
	case schema.KindRequired:
		return "missing required value"
	case schema.KindInvalidType:
		return fmt.Sprintf("expected %s, received %s", is.Expected, is.Received)
	case schema.KindTooSmall:
		return "must be at least " + formatBound(is.Min)
	case schema.KindTooBig:
		return "must be at most " + formatBound(is.Max)
	case schema.KindInvalidEnum:
		return "must be one of: " + strings.Join(is.Allowed, ", ")
	default:
		return is.Message
	}
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
