// Package display renders prompt output to the terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Output styles
var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// Suggestion box text
const (
	SuggestionsHeader = "Commands to try:"
	NoMatches         = "No matching commands. Try again."
)

// Printer writes styled prompt output to a writer
type Printer struct {
	out    io.Writer
	render bool
}

// Stdout is the printer used by the package-level helpers
var Stdout = NewPrinter(os.Stdout)

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// SetRender enables markdown rendering of multi-line output
func (p *Printer) SetRender(render bool) {
	p.render = render
}

// ShowBanner prints the title and how to use the prompt
func (p *Printer) ShowBanner(title, placeholder string) {
	fmt.Fprintln(p.out, titleStyle.Render(title))
	fmt.Fprintln(p.out, hintStyle.Render(placeholder+" (Tab to complete, Esc to clear, Ctrl+D to quit)"))
	fmt.Fprintln(p.out)
}

// ShowResult prints a submission's error or output; at most one is set
func (p *Printer) ShowResult(errMsg, output string) {
	switch {
	case errMsg != "":
		fmt.Fprintln(p.out, styleLines(errorStyle, errMsg))
	case output != "":
		if p.render && strings.Contains(output, "\n") {
			if rendered, err := RenderMarkdown(asMarkdownList(output)); err == nil {
				fmt.Fprint(p.out, rendered)
				return
			}
		}
		fmt.Fprintln(p.out, styleLines(outputStyle, output))
	}
}

// styleLines styles each line on its own; a multi-line Render would pad
// lines to a common width
func styleLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

// ShowSuggestions prints the suggestion box for the current input
func (p *Printer) ShowSuggestions(names []string) {
	if len(names) == 0 {
		fmt.Fprintln(p.out, NoMatches)
		return
	}
	fmt.Fprintln(p.out, SuggestionsHeader)
	for _, n := range names {
		fmt.Fprintf(p.out, "  - %s\n", n)
	}
}

// ShowError prints an application error in the error style
func (p *Printer) ShowError(msg string) {
	fmt.Fprintln(p.out, errorStyle.Render("Error: "+msg))
}

// ShowError prints an application error to stdout
func ShowError(msg string) {
	Stdout.ShowError(msg)
}

func asMarkdownList(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = "1. `" + l + "`"
	}
	return strings.Join(lines, "\n")
}
