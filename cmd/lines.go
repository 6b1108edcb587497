package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/clamstew/siteprompt/internal/console"
	"github.com/clamstew/siteprompt/internal/logging"
)

// runLines reads commands from a non-terminal stdin, one per line, and
// prints each result. Blank lines are skipped.
func (app *App) runLines(ctx context.Context, c *console.Console) error {
	logging.Debug("Line session started", logging.Fields{"session": c.SessionID()})

	scanner := bufio.NewScanner(app.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		c.InputChanged(line)
		c.KeyDown(console.KeyEvent{Key: console.KeyEnter})

		snap := c.Snapshot()
		app.printer.ShowResult(snap.Error, snap.Output)
		c.TryAgain()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return app.waitForNavigation(ctx, c)
}
