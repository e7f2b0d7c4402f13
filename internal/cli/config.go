package cli

import (
	"aboutliner/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the global config (~/.aboutliner/config.json)",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.Config
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"options":      c.Options(),
					"exportFormat": c.ExportFormat(),
					"tuiStyle":     c.TUIStyle(),
					"maxCellWidth": c.MaxCellWidth(),
				},
				"meta": map[string]any{"file": c, "keys": config.Keys},
			})
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one key and save the config",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.Set(args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			if err := config.Save(app.Config); err != nil {
				return writeErr(cmd, err)
			}
			app.Logger.Info("config saved", "key", args[0])
			return writeOut(cmd, app, map[string]any{"data": app.Config})
		},
	}

	cmd.AddCommand(pathCmd, showCmd, setCmd)
	return cmd
}
