// internal/domain/models/lookupevent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lookup sources.
const (
	LookupSourceTool   = "tool"   // findResources tool call from the chat assistant
	LookupSourceSearch = "search" // JSON search API
	LookupSourceHub    = "hub"    // resource hub page search box
	LookupSourceCLI    = "cli"
)

// Lookup outcomes.
const (
	LookupOutcomeResolved   = "resolved"
	LookupOutcomeCrisis     = "crisis"
	LookupOutcomeNotFound   = "not_found"
	LookupOutcomeEmptyQuery = "empty_query"
)

// LookupEvent is an anonymized record of one catalog lookup.
//
// The query text itself is never stored; only its shape (token count,
// requested type) and what came back.
type LookupEvent struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CallID       string             `bson:"call_id" json:"call_id"`
	Source       string             `bson:"source" json:"source"`
	Outcome      string             `bson:"outcome" json:"outcome"`
	ResourceType string             `bson:"resource_type,omitempty" json:"resource_type,omitempty"`
	TokenCount   int                `bson:"token_count" json:"token_count"`
	ResultCount  int                `bson:"result_count" json:"result_count"`
	ResultTypes  []string           `bson:"result_types,omitempty" json:"result_types,omitempty"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}
