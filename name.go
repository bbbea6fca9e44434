package cliq

import "strings"

// KebabToCamel converts a hyphenated option name to its compact form, e.g.
// "include-line-items" to "includeLineItems". Input is expected to already be
// lowercase words joined by single hyphens; only a hyphen followed by a
// lowercase letter collapses.
func KebabToCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '-' && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			b.WriteByte(s[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// CamelToKebab is the inverse of [KebabToCamel]: every uppercase letter is
// replaced by a hyphen and its lowercase form. The two functions round-trip
// exactly for identifiers made of lowercase alphanumeric segments joined by
// single hyphens.
func CamelToKebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			c = c - 'A' + 'a'
		}
		b.WriteByte(c)
	}
	return b.String()
}
