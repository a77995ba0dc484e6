// internal/app/features/resources/hub.go
package resources

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/wellnesshub/internal/app/system/viewdata"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
)

// ServeHub handles GET /resources.
//
// Without ?q= it renders every resource in hub section order. With ?q= it
// renders the search results, grouped the same way, and records the lookup.
func (h *Handler) ServeHub(w http.ResponseWriter, r *http.Request) {
	q := htmlsanitize.CleanQuery(query.Get(r, "q"))
	data, res := h.buildHub(r, q)
	if data.Searching {
		h.record(r.Context(), models.LookupSourceHub, "", res)
	}
	templates.Render(w, r, "resources_hub", data)
}

func (h *Handler) buildHub(r *http.Request, q string) (hubData, catalog.SearchResult) {
	data := hubData{
		BaseVM: viewdata.NewBaseVM(r, "Wellness Resources", "/"),
		Query:  q,
	}
	if q == "" {
		all := h.Catalog.All()
		data.Count = len(all)
		data.Sections = toSections(all)
		return data, catalog.SearchResult{}
	}

	res := h.Catalog.Lookup(q, catalog.SearchOptions{Limit: h.Catalog.MaxLimit()})
	data.Searching = true
	data.Crisis = res.Crisis
	data.Count = len(res.Resources)
	data.NoResults = len(res.Resources) == 0
	data.Sections = toSections(res.Resources)
	return data, res
}
