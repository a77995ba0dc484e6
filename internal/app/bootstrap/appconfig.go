// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging, CORS); everything specific
// to the wellness hub lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Catalog
	CatalogPath        string // YAML or TOML catalog override; empty uses the embedded seed
	SearchDefaultLimit int    // results when the caller gives no limit
	SearchMaxLimit     int    // cap on any caller-supplied limit

	// Analytics
	LookupLogging       bool // record anonymized lookup events
	DashboardWindowDays int  // default dashboard window

	// API
	APIRateLimit   int  // requests per minute per client IP on /api; 0 disables
	MetricsEnabled bool // serve Prometheus metrics at /metrics

	// Site
	SiteName string

	// Handler timeouts (zero keeps the package defaults)
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}
