package display

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/clamstew/siteprompt/internal/registry"
)

// ListFormat selects how ShowCommands prints the registry
type ListFormat string

const (
	ListTable    ListFormat = "table"
	ListMarkdown ListFormat = "markdown"
	ListPlain    ListFormat = "plain"
)

// ParseListFormat validates a --format value
func ParseListFormat(s string) (ListFormat, error) {
	switch f := ListFormat(strings.ToLower(s)); f {
	case ListTable, ListMarkdown, ListPlain:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q. Use 'table', 'markdown' or 'plain'", s)
	}
}

// ShowCommands prints every registered command in the given format
func (p *Printer) ShowCommands(entries []registry.Entry, format ListFormat) error {
	switch format {
	case ListMarkdown:
		rendered, err := RenderMarkdown(commandsMarkdown(entries))
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		fmt.Fprint(p.out, rendered)
	case ListPlain:
		for _, e := range entries {
			fmt.Fprintf(p.out, "%s\t%s\n", e.Name, target(e))
		}
	default:
		table := tablewriter.NewWriter(p.out)
		table.Header("Command", "Action", "Target")
		for _, e := range entries {
			_ = table.Append([]string{e.Name, e.Action.String(), target(e)})
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}
	return nil
}

func commandsMarkdown(entries []registry.Entry) string {
	var sb strings.Builder
	sb.WriteString("# Commands\n\n")
	for _, e := range entries {
		if e.Action == registry.ActionNavigate {
			fmt.Fprintf(&sb, "- **%s** opens <%s>\n", e.Name, e.URL)
		} else {
			fmt.Fprintf(&sb, "- **%s** %s\n", e.Name, target(e))
		}
	}
	return sb.String()
}

func target(e registry.Entry) string {
	if e.Action == registry.ActionNavigate {
		return e.URL
	}
	return "(built-in)"
}
