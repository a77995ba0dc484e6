// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/app/system/timeouts"
	"github.com/dalemusser/wellnesshub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// servingCatalog is the catalog loaded in Startup and handed to every
// feature handler in BuildHandler.
var servingCatalog *catalog.Catalog

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It applies
// the configured timeouts and site name and loads the resource catalog, so a
// bad catalog file stops the server before it accepts traffic.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
	})
	viewdata.SetSiteName(appCfg.SiteName)

	cat, err := loadCatalog(appCfg, logger)
	if err != nil {
		return err
	}
	servingCatalog = cat
	return nil
}

// loadCatalog loads the configured catalog (or the built-in one) with the
// configured search limits.
func loadCatalog(appCfg AppConfig, logger *zap.Logger) (*catalog.Catalog, error) {
	cat, err := catalog.Load(appCfg.CatalogPath,
		catalog.WithLimits(appCfg.SearchDefaultLimit, appCfg.SearchMaxLimit))
	if err != nil {
		logger.Error("catalog load failed",
			zap.String("catalog_path", appCfg.CatalogPath),
			zap.Error(err))
		return nil, err
	}

	source := appCfg.CatalogPath
	if source == "" {
		source = "built-in"
	}
	logger.Info("resource catalog loaded",
		zap.String("source", source),
		zap.Int("resources", cat.Len()),
		zap.Int("default_limit", cat.DefaultLimit()),
		zap.Int("max_limit", cat.MaxLimit()))
	return cat, nil
}
