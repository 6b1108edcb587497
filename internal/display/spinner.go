package display

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress while a navigation is pending
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner on stderr with message as its suffix
func NewSpinner(message string) *Spinner {
	return newSpinner(os.Stderr, message)
}

func newSpinner(w io.Writer, message string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	return &Spinner{s: s}
}

// Start starts the spinner
func (sp *Spinner) Start() { sp.s.Start() }

// Stop stops the spinner and clears its line
func (sp *Spinner) Stop() { sp.s.Stop() }
