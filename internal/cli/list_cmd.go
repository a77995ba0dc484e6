package cli

import (
	"fmt"

	"github.com/dalemusser/wellnesshub/internal/cli/formatter"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var typeNames []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog resources, optionally filtered by type",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			resources := cat.All()
			if len(typeNames) > 0 {
				types := make([]models.ResourceType, 0, len(typeNames))
				for _, name := range typeNames {
					t, err := models.ParseResourceType(name)
					if err != nil {
						return err
					}
					types = append(types, t)
				}
				resources = cat.ByType(types...)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResources(resources))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&typeNames, "type", nil, "Resource type to include (repeatable or comma-separated)")

	return cmd
}
