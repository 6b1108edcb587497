package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clamstew/siteprompt/internal/config"
	"github.com/clamstew/siteprompt/internal/logging"
)

func (app *App) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a starter config file",
		Long: `Write a commented config file with the default commands to the user
config directory. An existing file is left untouched.

Examples:
  siteprompt init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfigFile(app.cfg.Fs)
			if err != nil {
				return err
			}
			logging.Info("Config file created", logging.Fields{"path": path})
			fmt.Fprintf(app.out, "Created config file at %s\n", path)
			return nil
		},
	}
}
