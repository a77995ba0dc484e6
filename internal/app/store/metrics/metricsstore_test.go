package metricsstore_test

import (
	"testing"
	"time"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	metricsstore "github.com/dalemusser/wellnesshub/internal/app/store/metrics"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"github.com/dalemusser/wellnesshub/internal/testutil"
)

func countFor(tcs []metricsstore.TypeCount, t models.ResourceType) int64 {
	for _, tc := range tcs {
		if tc.Type == t {
			return tc.Count
		}
	}
	return -1
}

func TestFetchDashboard_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d := metricsstore.FetchDashboard(ctx, db, time.Now().AddDate(0, 0, -30), catalog.MustDefault())

	if d.Lookups != 0 || d.Crisis != 0 || d.NotFound != 0 {
		t.Errorf("expected zero counters, got lookups=%d crisis=%d not_found=%d", d.Lookups, d.Crisis, d.NotFound)
	}
	if len(d.PerDay) != 0 {
		t.Errorf("expected empty per-day series, got %v", d.PerDay)
	}
	if d.CatalogSize != 42 {
		t.Errorf("CatalogSize: got %d, want 42", d.CatalogSize)
	}
	if len(d.ResultTypes) != len(catalog.HubOrder) || len(d.CatalogTypes) != len(catalog.HubOrder) {
		t.Errorf("expected one entry per type, got %d/%d", len(d.ResultTypes), len(d.CatalogTypes))
	}
	if got := countFor(d.CatalogTypes, models.ResourceTypeHelpline); got != 7 {
		t.Errorf("catalog helplines: got %d, want 7", got)
	}
}

func TestFetchDashboard_WithData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	fixtures.CreateLookupEvent(ctx, models.LookupSourceTool, models.LookupOutcomeCrisis, now, models.ResourceTypeHelpline, models.ResourceTypeHelpline)
	fixtures.CreateLookupEvent(ctx, models.LookupSourceSearch, models.LookupOutcomeResolved, now, models.ResourceTypeMusic)
	fixtures.CreateLookupEvent(ctx, models.LookupSourceHub, models.LookupOutcomeNotFound, now)
	fixtures.CreateLookupEvent(ctx, models.LookupSourceTool, models.LookupOutcomeResolved, now.AddDate(0, 0, -90), models.ResourceTypeBook)

	d := metricsstore.FetchDashboard(ctx, db, now.AddDate(0, 0, -30), catalog.MustDefault())

	if d.Lookups != 3 {
		t.Errorf("Lookups: got %d, want 3", d.Lookups)
	}
	if d.Crisis != 1 {
		t.Errorf("Crisis: got %d, want 1", d.Crisis)
	}
	if d.NotFound != 1 {
		t.Errorf("NotFound: got %d, want 1", d.NotFound)
	}
	if d.BySource[models.LookupSourceTool] != 1 {
		t.Errorf("BySource[tool]: got %d, want 1", d.BySource[models.LookupSourceTool])
	}
	if got := countFor(d.ResultTypes, models.ResourceTypeHelpline); got != 2 {
		t.Errorf("helpline results: got %d, want 2", got)
	}
	if got := countFor(d.ResultTypes, models.ResourceTypeBook); got != 0 {
		t.Errorf("book results: got %d, want 0", got)
	}
}

func TestFetchDashboard_NilCatalog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d := metricsstore.FetchDashboard(ctx, db, time.Now().AddDate(0, 0, -1), nil)
	if d.CatalogSize != 0 {
		t.Errorf("CatalogSize: got %d, want 0", d.CatalogSize)
	}
	if got := countFor(d.CatalogTypes, models.ResourceTypeVideo); got != 0 {
		t.Errorf("catalog videos: got %d, want 0", got)
	}
}
