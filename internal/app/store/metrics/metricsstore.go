package metricsstore

import (
	"context"
	"time"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/app/store/lookups"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// TypeCount pairs a resource type with a count, in display order.
type TypeCount struct {
	Type  models.ResourceType `json:"type"`
	Label string              `json:"label"`
	Count int64               `json:"count"`
}

// Dashboard is the set of aggregates shown on the analytics dashboard.
type Dashboard struct {
	Since        time.Time          `json:"since"`
	Lookups      int64              `json:"lookups"`
	Crisis       int64              `json:"crisis"`
	NotFound     int64              `json:"not_found"`
	ByOutcome    map[string]int64   `json:"by_outcome"`
	BySource     map[string]int64   `json:"by_source"`
	ResultTypes  []TypeCount        `json:"result_types"`
	PerDay       []lookups.DayCount `json:"per_day"`
	CatalogTypes []TypeCount        `json:"catalog_types"`
	CatalogSize  int                `json:"catalog_size"`
}

// FetchDashboard returns the lookup aggregates since the given time plus the
// composition of cat. Intentionally tolerant: on error a counter reads 0
// and a series is empty.
func FetchDashboard(ctx context.Context, db *mongo.Database, since time.Time, cat *catalog.Catalog) Dashboard {
	store := lookups.New(db)
	out := Dashboard{
		Since:     since.UTC(),
		ByOutcome: map[string]int64{},
		BySource:  map[string]int64{},
		PerDay:    []lookups.DayCount{},
	}

	if m, err := store.CountByOutcome(ctx, since); err == nil {
		out.ByOutcome = m
	}
	for _, n := range out.ByOutcome {
		out.Lookups += n
	}
	out.Crisis = out.ByOutcome[models.LookupOutcomeCrisis]
	out.NotFound = out.ByOutcome[models.LookupOutcomeNotFound]

	if m, err := store.CountBySource(ctx, since); err == nil {
		out.BySource = m
	}

	resultTypes := map[string]int64{}
	if m, err := store.CountByResultType(ctx, since); err == nil {
		resultTypes = m
	}
	if days, err := store.CountByDay(ctx, since); err == nil && days != nil {
		out.PerDay = days
	}

	composition := map[models.ResourceType]int{}
	if cat != nil {
		composition = cat.CountByType()
		out.CatalogSize = cat.Len()
	}

	for _, t := range catalog.HubOrder {
		out.ResultTypes = append(out.ResultTypes, TypeCount{Type: t, Label: t.Label(), Count: resultTypes[string(t)]})
		out.CatalogTypes = append(out.CatalogTypes, TypeCount{Type: t, Label: t.Label(), Count: int64(composition[t])})
	}
	return out
}
