package models

// Resource is a single recommendable wellness item from the catalog.
//
// Link is opaque: a tel: URI, a direct URL, or a provider search query that
// is turned into a URL at render time. Keywords are lowercase retrieval
// tokens and are never displayed.
type Resource struct {
	Title       string       `json:"title" bson:"title" validate:"required"`
	Description string       `json:"description" bson:"description"`
	Link        string       `json:"link" bson:"link" validate:"required"`
	Type        ResourceType `json:"type" bson:"type" validate:"resourcetype"`
	Keywords    []string     `json:"keywords,omitempty" bson:"keywords,omitempty" validate:"omitempty,dive,required,lowercase"`
}

// ToolResource is the shape returned across the lookup tool boundary.
// It deliberately omits Keywords.
type ToolResource struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Link        string       `json:"link"`
	Type        ResourceType `json:"type"`
}

// ToolView projects r onto the tool output shape.
func (r Resource) ToolView() ToolResource {
	return ToolResource{
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
		Type:        r.Type,
	}
}

// Clone returns a copy of r that shares no slices with it.
func (r Resource) Clone() Resource {
	if r.Keywords != nil {
		kw := make([]string, len(r.Keywords))
		copy(kw, r.Keywords)
		r.Keywords = kw
	}
	return r
}
