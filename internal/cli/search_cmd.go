package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/cli/formatter"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	var typeName string
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Run a catalog search the way the lookup tool does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			opts := catalog.SearchOptions{Limit: limit}
			if typeName != "" {
				t, err := models.ParseResourceType(typeName)
				if err != nil {
					return err
				}
				opts.Type = t
			}

			query := strings.Join(args, " ")
			res := cat.Lookup(query, opts)

			if asJSON {
				out := make([]models.ToolResource, 0, len(res.Resources))
				for _, r := range res.Resources {
					out = append(out, r.ToolView())
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSearch(query, res))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "Only return resources of this type")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results (default: catalog default)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the lookup tool JSON output")

	return cmd
}
