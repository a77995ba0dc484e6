// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	dashboardfeature "github.com/dalemusser/wellnesshub/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/wellnesshub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/wellnesshub/internal/app/features/health"
	homefeature "github.com/dalemusser/wellnesshub/internal/app/features/home"
	resourcesfeature "github.com/dalemusser/wellnesshub/internal/app/features/resources"
	"github.com/dalemusser/wellnesshub/internal/app/store/lookups"
	"github.com/dalemusser/wellnesshub/internal/app/system/ratelimit"
	"github.com/dalemusser/wellnesshub/internal/app/system/telemetry"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// apiLimiter throttles /api; nil when api_rate_limit is 0.
var apiLimiter *ratelimit.Limiter

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. It boots the template engine and mounts
// the feature routers: home, the resource hub, the analytics dashboard, and
// the JSON API (search, list, findResources tool, dashboard aggregates).
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	cat := servingCatalog
	if cat == nil {
		var err error
		if cat, err = loadCatalog(appCfg, logger); err != nil {
			return nil, err
		}
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// A nil Recorder turns lookup recording off. Keep the interface nil
	// rather than wrapping a nil *lookups.Store.
	var recorder resourcesfeature.Recorder
	if appCfg.LookupLogging && deps.MongoDatabase != nil {
		recorder = lookups.New(deps.MongoDatabase)
	} else {
		logger.Info("lookup recording disabled")
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, cat, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus scrape endpoint
	if appCfg.MetricsEnabled {
		r.Handle("/metrics", telemetry.Handler())
	}

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(cat, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	resourcesHandler := resourcesfeature.NewHandler(cat, recorder, logger)
	r.Mount("/resources", resourcesfeature.Routes(resourcesHandler))

	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, cat, appCfg.DashboardWindowDays, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// JSON API, rate limited per client IP
	if appCfg.APIRateLimit > 0 {
		apiLimiter = ratelimit.New(appCfg.APIRateLimit, time.Minute)
	}
	r.Route("/api", func(api chi.Router) {
		api.Use(ratelimit.Middleware(apiLimiter, logger))
		api.Mount("/dashboard", dashboardfeature.APIRoutes(dashboardHandler))
		api.Mount("/", resourcesfeature.APIRoutes(resourcesHandler))
	})

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	return r, nil
}
