// Package cli implements catalogctl, the operator tool for inspecting and
// validating resource catalogs without running the server.
package cli

import (
	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/spf13/cobra"
)

// App holds state shared by every catalogctl command.
type App struct {
	// CatalogPath is a YAML or TOML catalog file; empty means the built-in catalog.
	CatalogPath string

	cat *catalog.Catalog
}

// Catalog loads the selected catalog on first use.
func (a *App) Catalog() (*catalog.Catalog, error) {
	if a.cat != nil {
		return a.cat, nil
	}
	c, err := catalog.Load(a.CatalogPath)
	if err != nil {
		return nil, err
	}
	a.cat = c
	return c, nil
}

// NewRootCmd creates the top-level "catalogctl" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Inspect and validate wellness resource catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&app.CatalogPath, "catalog", "", "YAML or TOML catalog file (default: built-in catalog)")

	root.AddCommand(
		newSearchCmd(app),
		newListCmd(app),
		newGroupsCmd(app),
		newValidateCmd(app),
	)

	return root
}
