package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/clamstew/siteprompt/internal/config"
	"github.com/clamstew/siteprompt/internal/console"
	"github.com/clamstew/siteprompt/internal/display"
	"github.com/clamstew/siteprompt/internal/logging"
	"github.com/clamstew/siteprompt/internal/navigator"
)

// errCommandNotFound is returned by run when the command did not resolve.
// The message has already been printed, so Execute only sets the exit code.
var errCommandNotFound = errors.New("command not found")

// navigationGrace is added to the configured delay when waiting for a
// pending navigation before exiting
const navigationGrace = time.Second

// App holds the application state
type App struct {
	cfg     *config.Config
	logger  *logging.Logger
	printer *display.Printer

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// Overrides for tests; nil means decide from the environment
	navigator  console.Navigator
	isTerminal func() bool
}

// NewApp creates a new App instance with default configuration
func NewApp() *App {
	return &App{
		cfg:    config.NewConfig(),
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// Execute runs the root command
func Execute() {
	app := NewApp()
	if err := app.newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errCommandNotFound) {
			display.ShowError(err.Error())
		}
		os.Exit(1)
	}
}

func (app *App) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "siteprompt",
		Short: "A shell-style prompt that opens your links",
		Long: `siteprompt is a simulated command prompt. Type a command, pick one of the
suggestions and press Enter to open the site it names.

Commands and their URLs come from the config file; run 'siteprompt init'
to create one. Type 'history' to see what you ran in this session.

Examples:
  siteprompt                          # Interactive prompt
  siteprompt run github               # Open one site and exit
  echo twitter | siteprompt           # Read commands from stdin
  siteprompt list --format markdown   # Show the command table`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.cfg.ConfigFile, "config", "", "Config file (default: search .siteprompt/ and the user config dir)")
	flags.BoolVarP(&app.cfg.Verbose, "verbose", "v", false, "Enable debug logging")
	flags.DurationVarP(&app.cfg.NavigationDelay, "delay", "d", 0, "Pause before opening the browser (default 600ms)")
	flags.BoolVarP(&app.cfg.NoBrowser, "no-browser", "n", false, "Print URLs instead of opening them")
	flags.BoolVarP(&app.cfg.Render, "render", "r", false, "Render multi-line output as markdown")
	flags.StringVar(&app.cfg.LogFormat, "log-format", "", "Log format: text or json")

	rootCmd.AddCommand(app.newRunCmd())
	rootCmd.AddCommand(app.newListCmd())
	rootCmd.AddCommand(app.newInitCmd())

	return rootCmd
}

// setup validates the config and builds the logger and printer
func (app *App) setup() error {
	if err := app.cfg.Validate(); err != nil {
		return err
	}

	// Packages that fall back to logging.DefaultLogger follow the flags too
	logging.SetLevel(logging.ParseLevel(app.cfg.LogLevel))
	logging.SetFormat(logging.ParseFormat(app.cfg.LogFormat))
	logging.SetOutput(app.errOut)
	app.logger = logging.DefaultLogger
	app.printer = display.NewPrinter(app.out)
	app.printer.SetRender(app.cfg.Render)

	logging.Debug("Config loaded", logging.Fields{
		"commands":  app.cfg.GetCommandNamesString(),
		"delay":     app.cfg.NavigationDelay.String(),
		"browser":   !app.cfg.NoBrowser,
		"log_level": app.logger.Level().String(),
	})
	return nil
}

// newConsole creates a console session wired to the configured navigator
func (app *App) newConsole() *console.Console {
	nav := app.navigator
	if nav == nil {
		if app.cfg.NoBrowser {
			nav = navigator.NewDryRun(app.out)
		} else {
			nav = navigator.NewBrowser(app.logger)
		}
	}

	return console.New(app.cfg.Registry(), console.Options{
		Navigator:       nav,
		NavigationDelay: app.cfg.NavigationDelay,
		Logger:          app.logger,
	})
}

func (app *App) run(ctx context.Context) error {
	if err := app.setup(); err != nil {
		return err
	}

	c := app.newConsole()
	if app.isTerminal != nil && app.isTerminal() {
		app.runInteractive(c)
		return app.waitForNavigation(ctx, c)
	}
	return app.runLines(ctx, c)
}

// waitForNavigation lets a navigation scheduled just before exit complete
func (app *App) waitForNavigation(ctx context.Context, c *console.Console) error {
	ctx, cancel := context.WithTimeout(ctx, app.cfg.NavigationDelay+navigationGrace)
	defer cancel()

	if err := c.Wait(ctx); err != nil {
		logging.Warn("Pending navigation did not finish", logging.Fields{"error": err.Error()})
	}
	return nil
}
