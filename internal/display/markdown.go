package display

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the terminal
func RenderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
