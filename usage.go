package cliq

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/cliqkit/cliq/schema"
)

const helpWidth = 80

var sectionHeader = color.New(color.Bold)

// renderFullHelp builds the complete help text: the program banner, the fixed
// global flags block, then every command's block in registration order.
func (a *App[C]) renderFullHelp() string {
	var b strings.Builder

	banner := a.Name
	if a.Version != "" {
		banner += " " + a.Version
	}
	b.WriteString(sectionHeader.Sprint(banner))
	b.WriteRune('\n')
	if a.Description != "" {
		for _, line := range wrapText(a.Description, helpWidth-2) {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteRune('\n')

	b.WriteString(sectionHeader.Sprint("Usage:"))
	fmt.Fprintf(&b, "\n  %s <command> [--flags]\n\n", a.Name)

	b.WriteString(sectionHeader.Sprint("Global Flags:"))
	b.WriteRune('\n')
	globals := []struct{ name, desc string }{
		{optionPrefix + flagHelp, "show help text"},
		{optionPrefix + flagNoCache, "bypass the client cache for this run"},
		{optionPrefix + flagVerbose, "enable verbose logging"},
	}
	maxLen := 0
	for _, g := range globals {
		if len(g.name) > maxLen {
			maxLen = len(g.name)
		}
	}
	for _, g := range globals {
		fmt.Fprintf(&b, "  %s%s%s\n", g.name, strings.Repeat(" ", maxLen-len(g.name)+4), g.desc)
	}
	b.WriteRune('\n')

	b.WriteString(sectionHeader.Sprint("Commands:"))
	b.WriteRune('\n')
	for _, name := range a.names {
		b.WriteRune('\n')
		b.WriteString(a.renderCommandHelp(name, a.commands[name]))
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderCommandHelp builds one command's block: the name line, an optional
// description, and an aligned row per schema field with its hyphenated flag
// name, type annotation, requiredness or default, and description.
func (a *App[C]) renderCommandHelp(name string, cmd *Command[C]) string {
	var b strings.Builder

	b.WriteString("  " + name + "\n")
	if cmd.Description != "" {
		for _, line := range wrapText(cmd.Description, helpWidth-4) {
			b.WriteString("    " + line + "\n")
		}
	}

	fields := schema.Describe(cmd.Schema)
	if len(fields) == 0 {
		return b.String()
	}

	type row struct {
		flag, typ, presence, desc string
	}
	rows := make([]row, 0, len(fields))
	maxFlag, maxType, maxPresence := 0, 0, 0
	for _, f := range fields {
		r := row{
			flag:     optionPrefix + CamelToKebab(f.Name),
			typ:      typeAnnotation(f),
			presence: presenceAnnotation(f),
			desc:     f.Description,
		}
		maxFlag = max(maxFlag, len(r.flag))
		maxType = max(maxType, len(r.typ))
		maxPresence = max(maxPresence, len(r.presence))
		rows = append(rows, r)
	}

	for _, r := range rows {
		line := fmt.Sprintf("    %-*s  %-*s  %-*s", maxFlag, r.flag, maxType, r.typ, maxPresence, r.presence)
		if r.desc != "" {
			line += "  " + r.desc
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return b.String()
}

func typeAnnotation(f schema.FieldMeta) string {
	if f.Type == "enum" && len(f.EnumValues) > 0 {
		return strings.Join(f.EnumValues, "|")
	}
	return "<" + f.Type + ">"
}

func presenceAnnotation(f schema.FieldMeta) string {
	switch {
	case f.Default != nil:
		return fmt.Sprintf("(default: %v)", f.Default)
	case f.Required:
		return "(required)"
	default:
		return "(optional)"
	}
}

func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	return strings.Split(wordwrap.WrapString(text, uint(width)), "\n")
}
