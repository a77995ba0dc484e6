// internal/domain/models/resourcetypes.go
package models

import (
	"fmt"
	"strings"
)

// ResourceType is the closed set of wellness resource categories.
//
// These values appear in the catalog seed file, in JSON responses, and in
// lookup analytics. They are stable, language-agnostic keys; human-facing
// labels come from ResourceTypeLabel.
type ResourceType string

const (
	ResourceTypeHelpline ResourceType = "helpline"
	ResourceTypeVideo    ResourceType = "video"
	ResourceTypePodcast  ResourceType = "podcast"
	ResourceTypeArticle  ResourceType = "article"
	ResourceTypeBook     ResourceType = "book"
	ResourceTypeMusic    ResourceType = "music"
	ResourceTypeExercise ResourceType = "exercise"
	ResourceTypeApp      ResourceType = "app"
)

// ResourceTypes is the full set of allowed resource type identifiers.
//
// This slice should be treated as the single source of truth for validation
// and schema enums. Any new type must be added here to be considered valid.
var ResourceTypes = []ResourceType{
	ResourceTypeHelpline,
	ResourceTypeVideo,
	ResourceTypePodcast,
	ResourceTypeArticle,
	ResourceTypeBook,
	ResourceTypeMusic,
	ResourceTypeExercise,
	ResourceTypeApp,
}

var resourceTypeLabels = map[ResourceType]string{
	ResourceTypeHelpline: "Helplines",
	ResourceTypeVideo:    "Videos & Meditations",
	ResourceTypePodcast:  "Podcasts",
	ResourceTypeArticle:  "Articles",
	ResourceTypeBook:     "Books",
	ResourceTypeMusic:    "Music & Calming Sounds",
	ResourceTypeExercise: "Exercises",
	ResourceTypeApp:      "Apps",
}

// Valid reports whether t is one of ResourceTypes.
func (t ResourceType) Valid() bool {
	_, ok := resourceTypeLabels[t]
	return ok
}

func (t ResourceType) String() string { return string(t) }

// Label returns the display heading for t, or "Resources" for unknown values.
func (t ResourceType) Label() string {
	if l, ok := resourceTypeLabels[t]; ok {
		return l
	}
	return "Resources"
}

// ParseResourceType normalizes s (trim + lowercase) and returns the matching
// type, or an error if s is not a known type.
func ParseResourceType(s string) (ResourceType, error) {
	t := ResourceType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown resource type %q", s)
	}
	return t, nil
}

// UnmarshalText rejects unknown types so invalid records fail at decode time.
// encoding/json (and therefore sigs.k8s.io/yaml) uses this for string values.
func (t *ResourceType) UnmarshalText(b []byte) error {
	parsed, err := ParseResourceType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t ResourceType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}
