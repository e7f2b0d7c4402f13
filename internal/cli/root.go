package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"aboutliner/internal/config"
	"aboutliner/internal/format"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool
	Format     string
	LogLevel   string

	Config *config.Config
	Logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "aboutliner",
		Short:        "Convert between outline text and sectioned tables",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Outline text -> section model (JSON)
  aboutliner import notes.md > doc.json

  # Section model -> outline text, TSV, HTML, ASCII, Cucumber or XLSX
  aboutliner export --to tsv doc.json
  aboutliner export --to xlsx --out doc.xlsx doc.json

  # Straight conversion
  aboutliner convert --from tsv --to outline sheet.tsv

  # Browse a document interactively (shortcut for: aboutliner view <file>)
  aboutliner notes.md
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !format.Valid(app.Format) {
				return writeErr(cmd, fmt.Errorf("unknown --format %q (expected %s)", app.Format, strings.Join(format.Names, "|")))
			}
			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.TrimSpace(app.LogLevel))); err != nil {
				return writeErr(cmd, fmt.Errorf("invalid --log-level %q", app.LogLevel))
			}
			app.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			cfg, err := config.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			app.Config = cfg
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr(config.EnvFormat, "json"), "Output format (json|yaml|edn)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr(config.EnvLogLevel, "warn"), "Log level (debug|info|warn|error)")

	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newConvertCmd(app))
	cmd.AddCommand(newSectionsCmd(app))
	cmd.AddCommand(newQuickfillCmd(app))
	cmd.AddCommand(newMoveCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newIDsCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
