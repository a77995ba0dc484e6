// internal/app/features/resources/tool.go
package resources

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/app/system/limits"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"github.com/xeipuuv/gojsonschema"
)

// ToolName is the name the chat assistant uses to call the lookup tool.
const ToolName = "findResources"

const toolDescription = "Find wellness resources (helplines, videos, articles, podcasts, books, music, " +
	"exercises, apps) matching a free-text query. Crisis words always return helplines."

const toolInputSchema = `{
  "type": "object",
  "properties": {
    "query": {
      "type": "string",
      "description": "Keywords describing what the user needs, e.g. \"sleep anxiety\"."
    },
    "resourceType": {
      "type": "string",
      "description": "Optional resource type: helpline, video, article, podcast, book, music, exercise, or app."
    }
  },
  "required": ["query"]
}`

const toolOutputSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "title": {"type": "string"},
      "description": {"type": "string"},
      "link": {"type": "string"},
      "type": {"type": "string"}
    },
    "required": ["title", "description", "link", "type"]
  }
}`

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func inputSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(toolInputSchema))
	})
	return schema, schemaErr
}

// ToolInput is the decoded findResources argument object.
type ToolInput struct {
	Query        string `json:"query"`
	ResourceType string `json:"resourceType,omitempty"`
}

// ToolDefinition describes findResources for registration with the chat
// assistant.
type ToolDefinition struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	InputSchema  json.RawMessage `json:"input_schema"`
	OutputSchema json.RawMessage `json:"output_schema"`
}

// Definition returns the findResources tool definition.
func Definition() ToolDefinition {
	return ToolDefinition{
		Name:         ToolName,
		Description:  toolDescription,
		InputSchema:  json.RawMessage(toolInputSchema),
		OutputSchema: json.RawMessage(toolOutputSchema),
	}
}

// DecodeToolInput validates body against the input schema and decodes it.
func DecodeToolInput(body []byte) (ToolInput, error) {
	s, err := inputSchema()
	if err != nil {
		return ToolInput{}, err
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return ToolInput{}, errors.New("request body is not valid JSON")
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return ToolInput{}, errors.New(strings.Join(msgs, "; "))
	}

	var in ToolInput
	if err := json.Unmarshal(body, &in); err != nil {
		return ToolInput{}, errors.New("request body is not valid JSON")
	}
	return in, nil
}

// FindResources runs the tool against cat. resourceType is a free string
// here: empty means no filter, and a value that is not a known type matches
// nothing (a crisis query still returns helplines).
func FindResources(cat *catalog.Catalog, in ToolInput) ([]models.ToolResource, catalog.SearchResult) {
	opts := catalog.SearchOptions{Type: models.ResourceType(normalizeType(in.ResourceType))}
	res := cat.Lookup(in.Query, opts)

	out := make([]models.ToolResource, 0, len(res.Resources))
	for _, r := range res.Resources {
		out = append(out, r.ToolView())
	}
	return out, res
}

func normalizeType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ServeToolDefinition handles GET /api/tools/find-resources.
func (h *Handler) ServeToolDefinition(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Definition())
}

// HandleTool handles POST /api/tools/find-resources.
//
// Malformed JSON or a schema violation is a 400; every valid call is a 200
// with a (possibly empty) array.
func (h *Handler) HandleTool(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limits.MaxToolBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "request body too large")
		return
	}
	in, err := DecodeToolInput(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, res := FindResources(h.Catalog, in)
	if callID := h.record(r.Context(), models.LookupSourceTool, normalizeType(in.ResourceType), res); callID != "" {
		w.Header().Set("X-Lookup-Call-ID", callID)
	}
	writeJSON(w, http.StatusOK, out)
}
