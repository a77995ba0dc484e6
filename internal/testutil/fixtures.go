package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateLookupEvent inserts a lookup event with the given source and outcome
// at the given time. resultTypes become both ResultTypes and ResultCount.
func (f *Fixtures) CreateLookupEvent(ctx context.Context, source, outcome string, at time.Time, resultTypes ...models.ResourceType) models.LookupEvent {
	f.t.Helper()

	ev := models.LookupEvent{
		ID:          primitive.NewObjectID(),
		CallID:      uuid.NewString(),
		Source:      source,
		Outcome:     outcome,
		TokenCount:  1,
		ResultCount: len(resultTypes),
		Timestamp:   at.UTC(),
	}
	for _, rt := range resultTypes {
		ev.ResultTypes = append(ev.ResultTypes, string(rt))
	}

	if _, err := f.db.Collection("lookup_events").InsertOne(ctx, ev); err != nil {
		f.t.Fatalf("failed to create lookup event: %v", err)
	}
	return ev
}

// SampleResources returns a small, valid resource list covering several
// types, in a fixed order.
func SampleResources() []models.Resource {
	return []models.Resource{
		{Title: "Night Line", Description: "Talk to someone tonight.", Link: "tel:100", Type: models.ResourceTypeHelpline, Keywords: []string{"helpline", "crisis"}},
		{Title: "Box Breathing", Description: "Slow your breath.", Link: "box breathing", Type: models.ResourceTypeExercise, Keywords: []string{"breathing", "anxiety"}},
		{Title: "Rain Sounds", Description: "Rainfall for sleep.", Link: "rain sounds", Type: models.ResourceTypeMusic, Keywords: []string{"sleep", "calm"}},
		{Title: "Piano Calm", Description: "Soft piano.", Link: "soft piano", Type: models.ResourceTypeMusic, Keywords: []string{"piano", "calm"}},
		{Title: "Sleep Story", Description: "A guided story.", Link: "https://example.com/story", Type: models.ResourceTypeVideo, Keywords: []string{"sleep", "anxiety"}},
	}
}
