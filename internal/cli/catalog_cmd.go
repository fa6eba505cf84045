package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/courseplan/internal/cli/formatter"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import and inspect the course catalog",
	}
	cmd.AddCommand(newCatalogImportCmd(app), newCatalogListCmd(app))
	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored catalog with a JSON or CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Catalog.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if app.CatalogCache != nil {
				app.CatalogCache.Invalidate()
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}

func newCatalogListCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog courses and their sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Catalog.List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), courses)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseList(courses))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print courses as JSON")
	return cmd
}
