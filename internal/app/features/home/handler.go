package home

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/app/system/viewdata"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Log:     logger,
	}
}

type categoryVM struct {
	Type  string
	Label string
	Count int
}

type homeData struct {
	viewdata.BaseVM

	Categories []categoryVM
	Helpline   *models.Resource // first helpline, featured on the landing page
	HelpHref   template.URL // tel: link or resolved URL
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "home", h.buildHome(r))
}

func (h *Handler) buildHome(r *http.Request) homeData {
	data := homeData{BaseVM: viewdata.NewBaseVM(r, "Welcome", "/")}

	counts := h.Catalog.CountByType()
	for _, t := range catalog.HubOrder {
		if counts[t] == 0 {
			continue
		}
		data.Categories = append(data.Categories, categoryVM{Type: string(t), Label: t.Label(), Count: counts[t]})
	}
	if hl := h.Catalog.ByType(models.ResourceTypeHelpline); len(hl) > 0 {
		data.Helpline = &hl[0]
		data.HelpHref = template.URL(catalog.ResolveLink(hl[0]))
	}
	return data
}
