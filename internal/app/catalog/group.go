package catalog

import "github.com/dalemusser/wellnesshub/internal/domain/models"

// HubOrder is the order resource sections appear on the hub page.
var HubOrder = []models.ResourceType{
	models.ResourceTypeHelpline,
	models.ResourceTypeExercise,
	models.ResourceTypeApp,
	models.ResourceTypeVideo,
	models.ResourceTypeMusic,
	models.ResourceTypePodcast,
	models.ResourceTypeArticle,
	models.ResourceTypeBook,
}

// Section is one titled group of resources on the hub page.
type Section struct {
	Type      models.ResourceType
	Title     string
	Resources []models.Resource
}

// ByType returns the catalog resources whose type is any of types, in
// catalog order. No types means no resources.
func (c *Catalog) ByType(types ...models.ResourceType) []models.Resource {
	want := make(map[models.ResourceType]struct{}, len(types))
	for _, t := range types {
		want[t] = struct{}{}
	}
	out := []models.Resource{}
	for _, r := range c.resources {
		if _, ok := want[r.Type]; ok {
			out = append(out, r.Clone())
		}
	}
	return out
}

// GroupByType partitions resources by type, keeping input order within each
// group. Every input element lands in exactly one group.
func GroupByType(resources []models.Resource) map[models.ResourceType][]models.Resource {
	out := make(map[models.ResourceType][]models.Resource)
	for _, r := range resources {
		out[r.Type] = append(out[r.Type], r)
	}
	return out
}

// HubSections groups resources in HubOrder, skipping empty sections.
func HubSections(resources []models.Resource) []Section {
	groups := GroupByType(resources)
	var out []Section
	for _, t := range HubOrder {
		rs := groups[t]
		if len(rs) == 0 {
			continue
		}
		out = append(out, Section{Type: t, Title: t.Label(), Resources: rs})
	}
	return out
}
