// Package navigator provides the implementations of console.Navigator:
// the system browser and a dry-run printer.
package navigator

import (
	"fmt"
	"io"
	"sync"

	"github.com/pkg/browser"

	"github.com/clamstew/siteprompt/internal/console"
	"github.com/clamstew/siteprompt/internal/logging"
)

// Ensure concrete types implement the interface
var (
	_ console.Navigator = (*Browser)(nil)
	_ console.Navigator = (*DryRun)(nil)
)

// Browser opens URLs with the platform's default browser.
// Failures are logged, never returned: navigation is fire-and-forget.
type Browser struct {
	log  *logging.FieldLogger
	open func(url string) error
}

// NewBrowser creates a navigator that opens the system browser
func NewBrowser(logger *logging.Logger) *Browser {
	if logger == nil {
		logger = logging.DefaultLogger
	}
	// Keep the launcher's own chatter off the prompt.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Browser{
		log:  logger.WithFields(logging.Fields{"component": "navigator"}),
		open: browser.OpenURL,
	}
}

// Navigate opens url
func (b *Browser) Navigate(url string) {
	if err := b.open(url); err != nil {
		b.log.Error("Could not open browser", err, logging.Fields{"url": url})
		return
	}
	b.log.Info("Opened browser", logging.Fields{"url": url})
}

// DryRun writes the URL it would open instead of opening it
type DryRun struct {
	mu  sync.Mutex
	out io.Writer
}

// NewDryRun creates a navigator that prints to out
func NewDryRun(out io.Writer) *DryRun {
	return &DryRun{out: out}
}

// Navigate prints "would open <url>"
func (d *DryRun) Navigate(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "would open %s\n", url)
}
