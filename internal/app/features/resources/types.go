// internal/app/features/resources/types.go
package resources

import (
	"html/template"
	"strings"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/app/system/viewdata"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
)

// ============================== HUB VIEW MODELS =============================

// cardVM is one resource card on the hub page.
type cardVM struct {
	Title       string
	Description string
	Href        template.URL // resolved link; catalog-controlled, so tel: is allowed
	Type        string
	IsPhone     bool // helpline with a tel: link
}

// sectionVM is one titled group of cards.
type sectionVM struct {
	Type  string
	Title string
	Cards []cardVM
}

// hubData provides template data for the hub page and its search results.
type hubData struct {
	viewdata.BaseVM

	Query     string
	Searching bool
	Crisis    bool
	NoResults bool
	Count     int
	Sections  []sectionVM
}

func toCard(r models.Resource) cardVM {
	href := catalog.ResolveLink(r)
	return cardVM{
		Title:       r.Title,
		Description: r.Description,
		Href:        template.URL(href),
		Type:        string(r.Type),
		IsPhone:     r.Type == models.ResourceTypeHelpline && strings.HasPrefix(href, "tel:"),
	}
}

func toSections(resources []models.Resource) []sectionVM {
	secs := catalog.HubSections(resources)
	out := make([]sectionVM, 0, len(secs))
	for _, s := range secs {
		vm := sectionVM{Type: string(s.Type), Title: s.Title}
		for _, r := range s.Resources {
			vm.Cards = append(vm.Cards, toCard(r))
		}
		out = append(out, vm)
	}
	return out
}

// ============================== JSON PAYLOADS ===============================

// resourceJSON is a catalog resource plus its resolved URL.
type resourceJSON struct {
	models.Resource
	URL string `json:"url"`
}

func toResourceJSON(rs []models.Resource) []resourceJSON {
	out := make([]resourceJSON, 0, len(rs))
	for _, r := range rs {
		out = append(out, resourceJSON{Resource: r, URL: catalog.ResolveLink(r)})
	}
	return out
}

// searchResponse is the body of GET /api/resources/search.
type searchResponse struct {
	CallID    string         `json:"call_id,omitempty"`
	Outcome   string         `json:"outcome"`
	Crisis    bool           `json:"crisis"`
	Count     int            `json:"count"`
	Resources []resourceJSON `json:"resources"`
}

// listResponse is the body of GET /api/resources.
type listResponse struct {
	Count     int            `json:"count"`
	Resources []resourceJSON `json:"resources"`
}

// errorResponse is the body of every JSON error.
type errorResponse struct {
	Error string `json:"error"`
}
