package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clamstew/siteprompt/internal/display"
)

func (app *App) newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available commands",
		Long: `List every command in suggestion order with what it does.

Examples:
  siteprompt list
  siteprompt list --format markdown
  siteprompt list --format plain | cut -f1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := display.ParseListFormat(format)
			if err != nil {
				return err
			}
			if err := app.setup(); err != nil {
				return err
			}
			return app.printer.ShowCommands(app.cfg.Registry().Entries(), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(display.ListTable), "Output format: table, markdown or plain")
	return cmd
}
