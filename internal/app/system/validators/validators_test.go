package validators_test

import (
	"testing"
	"time"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/app/store/lookups"
	"github.com/dalemusser/wellnesshub/internal/app/system/validators"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"github.com/dalemusser/wellnesshub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	// Second call should also succeed (idempotent)
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesCollection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{"name": lookups.Collection})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("expected collection %q to exist, got %v", lookups.Collection, names)
	}
}

func validEvent() bson.M {
	return bson.M{
		"call_id":      "call-1",
		"source":       models.LookupSourceTool,
		"outcome":      models.LookupOutcomeResolved,
		"token_count":  2,
		"result_count": 1,
		"result_types": bson.A{"music"},
		"timestamp":    time.Now().UTC(),
	}
}

func TestLookupEventsValidator_ValidEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	if _, err := db.Collection(lookups.Collection).InsertOne(ctx, validEvent()); err != nil {
		t.Errorf("Insert valid event failed: %v", err)
	}
}

func TestLookupEventsValidator_StoreEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Events written by the store must pass the validator, including an
	// unknown requested type from the tool boundary.
	res := catalog.MustDefault().Lookup("calm music", catalog.SearchOptions{})
	if _, err := lookups.New(db).Record(ctx, models.LookupSourceTool, "podcasts", res); err != nil {
		t.Errorf("Record failed validation: %v", err)
	}
}

func TestLookupEventsValidator_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(bson.M)
	}{
		{"missing call_id", func(m bson.M) { delete(m, "call_id") }},
		{"missing timestamp", func(m bson.M) { delete(m, "timestamp") }},
		{"unknown source", func(m bson.M) { m["source"] = "email" }},
		{"unknown outcome", func(m bson.M) { m["outcome"] = "maybe" }},
		{"negative token count", func(m bson.M) { m["token_count"] = -1 }},
		{"unknown result type", func(m bson.M) { m["result_types"] = bson.A{"vlog"} }},
		{"query text present", func(m bson.M) { m["query"] = "i feel sad" }},
	}

	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validEvent()
			tt.mutate(doc)
			if _, err := db.Collection(lookups.Collection).InsertOne(ctx, doc); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
