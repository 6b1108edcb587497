package cmd

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clamstew/siteprompt/internal/console"
	"github.com/clamstew/siteprompt/internal/display"
	"github.com/clamstew/siteprompt/internal/logging"
)

func (app *App) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <command...>",
		Short: "Run one command and exit",
		Long: `Run a single command as if it had been typed at the prompt.

Arguments are joined with spaces, so multi-word commands need no quoting.
Exits with status 1 when the command is not found.

Examples:
  siteprompt run github
  siteprompt run hire me
  siteprompt run --no-browser notes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runOnce(cmd.Context(), strings.Join(args, " "))
		},
	}
}

// runOnce submits one command, showing a spinner until its navigation runs
func (app *App) runOnce(ctx context.Context, command string) error {
	if err := app.setup(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := app.newConsole()
	c.InputChanged(command)
	suggestions := c.Suggestions()
	c.KeyDown(console.KeyEvent{Key: console.KeyEnter})

	snap := c.Snapshot()
	app.printer.ShowResult(snap.Error, snap.Output)
	if snap.Error != "" {
		app.printer.ShowSuggestions(suggestions)
		return errCommandNotFound
	}

	// Debug lines would break the spinner's line
	if app.isTerminal != nil && app.isTerminal() && !app.logger.Enabled(logging.LevelDebug) {
		spin := display.NewSpinner("Opening browser...")
		spin.Start()
		defer spin.Stop()
	}

	logging.Debug("Waiting for navigation", logging.Fields{"command": command})
	return app.waitForNavigation(ctx, c)
}
