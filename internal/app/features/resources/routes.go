// internal/app/features/resources/routes.go
package resources

import "github.com/go-chi/chi/v5"

// Routes mounts the resource hub page under whatever base path the caller
// chooses (typically "/resources" from bootstrap).
//
//	h := resources.NewHandler(cat, lookupStore, logger)
//	r.Mount("/resources", resources.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeHub)
	return r
}

// APIRoutes mounts the JSON endpoints (typically under "/api").
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/resources", h.ServeList)
	r.Get("/resources/search", h.ServeSearch)

	// findResources tool: definition + call
	r.Get("/tools/find-resources", h.ServeToolDefinition)
	r.Post("/tools/find-resources", h.HandleTool)

	return r
}
