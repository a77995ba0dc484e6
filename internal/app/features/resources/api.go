// internal/app/features/resources/api.go
package resources

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
)

// ServeSearch handles GET /api/resources/search?q=&type=&limit=.
//
// type must be empty or a known resource type; limit must be empty or an
// integer. Anything else is a 400. A query that matches nothing is a 200
// with an empty list.
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	opts := catalog.SearchOptions{}

	if raw := query.Get(r, "type"); raw != "" {
		t, err := models.ParseResourceType(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		opts.Type = t
	}
	if raw := query.Get(r, "limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		opts.Limit = n
	}

	res := h.Catalog.Lookup(query.Get(r, "q"), opts)
	callID := h.record(r.Context(), models.LookupSourceSearch, string(opts.Type), res)

	writeJSON(w, http.StatusOK, searchResponse{
		CallID:    callID,
		Outcome:   res.Outcome(),
		Crisis:    res.Crisis,
		Count:     len(res.Resources),
		Resources: toResourceJSON(res.Resources),
	})
}

// ServeList handles GET /api/resources?type=music&type=video.
//
// Repeated or comma-separated type values select several types; no type
// returns the whole catalog in catalog order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	var types []models.ResourceType
	for _, v := range r.URL.Query()["type"] {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			t, err := models.ParseResourceType(part)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			types = append(types, t)
		}
	}

	var rs []models.Resource
	if len(types) == 0 {
		rs = h.Catalog.All()
	} else {
		rs = h.Catalog.ByType(types...)
	}
	writeJSON(w, http.StatusOK, listResponse{Count: len(rs), Resources: toResourceJSON(rs)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
