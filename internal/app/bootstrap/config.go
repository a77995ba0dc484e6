// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the wellness hub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, catalog_path, etc.
//   - Environment variables: WELLNESS_MONGO_URI, WELLNESS_CATALOG_PATH, etc.
//   - Command-line flags: --mongo_uri, --catalog_path, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "wellness_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Catalog
	{Name: "catalog_path", Default: "", Desc: "YAML or TOML resource catalog file (blank uses the built-in catalog)"},
	{Name: "search_default_limit", Default: catalog.DefaultLimit, Desc: "Results returned when a search gives no limit"},
	{Name: "search_max_limit", Default: catalog.MaxLimit, Desc: "Maximum results any search may return"},

	// Analytics
	{Name: "lookup_logging", Default: true, Desc: "Record anonymized lookup events for the dashboard"},
	{Name: "dashboard_window_days", Default: 30, Desc: "Default dashboard window in days (1-365)"},

	// API
	{Name: "api_rate_limit", Default: 120, Desc: "Requests per minute per client IP on /api (0 disables)"},
	{Name: "metrics_enabled", Default: true, Desc: "Serve Prometheus metrics at /metrics"},

	{Name: "site_name", Default: "Wellness Hub", Desc: "Site name shown in page headers"},

	// Handler timeouts
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for single-document operations (e.g., 5s)"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for dashboard aggregations (e.g., 10s)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// WELLNESS_* environment variables, and flags with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "WELLNESS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		CatalogPath:        appValues.String("catalog_path"),
		SearchDefaultLimit: appValues.Int("search_default_limit"),
		SearchMaxLimit:     appValues.Int("search_max_limit"),

		LookupLogging:       appValues.Bool("lookup_logging"),
		DashboardWindowDays: appValues.Int("dashboard_window_days"),

		APIRateLimit:   appValues.Int("api_rate_limit"),
		MetricsEnabled: appValues.Bool("metrics_enabled"),

		SiteName: appValues.String("site_name"),

		TimeoutShort:  appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	return validateAppConfig(appCfg)
}

// validateAppConfig checks the settings that do not depend on WAFFLE.
func validateAppConfig(appCfg AppConfig) error {
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	if appCfg.SearchDefaultLimit < 1 {
		return fmt.Errorf("search_default_limit must be at least 1, got %d", appCfg.SearchDefaultLimit)
	}
	if appCfg.SearchMaxLimit < appCfg.SearchDefaultLimit {
		return fmt.Errorf("search_max_limit (%d) must be at least search_default_limit (%d)",
			appCfg.SearchMaxLimit, appCfg.SearchDefaultLimit)
	}
	if appCfg.DashboardWindowDays < 1 || appCfg.DashboardWindowDays > 365 {
		return fmt.Errorf("dashboard_window_days must be between 1 and 365, got %d", appCfg.DashboardWindowDays)
	}
	if appCfg.APIRateLimit < 0 {
		return fmt.Errorf("api_rate_limit must not be negative, got %d", appCfg.APIRateLimit)
	}
	if appCfg.TimeoutShort < 0 || appCfg.TimeoutMedium < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}
