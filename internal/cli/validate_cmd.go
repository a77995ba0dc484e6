package cli

import (
	"fmt"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/cli/formatter"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a catalog file (default: the --catalog file or built-in catalog)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cat    *catalog.Catalog
				source string
				err    error
			)
			if len(args) == 1 {
				source = args[0]
				cat, err = catalog.LoadFile(source)
			} else {
				source = app.CatalogPath
				cat, err = app.Catalog()
			}
			if source == "" {
				source = "built-in catalog"
			}
			if err != nil {
				return fmt.Errorf("invalid: %w", err)
			}

			counts := cat.CountByType()
			rows := make([][]string, 0, len(models.ResourceTypes))
			for _, t := range catalog.HubOrder {
				rows = append(rows, []string{string(t), fmt.Sprintf("%d", counts[t])})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: ok, %d resources\n\n", source, cat.Len())
			fmt.Fprint(out, formatter.RenderTable([]string{"TYPE", "COUNT"}, rows))
			return nil
		},
	}
}
