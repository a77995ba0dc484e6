// internal/app/store/lookups/store.go
package lookups

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the MongoDB collection holding lookup events.
const Collection = "lookup_events"

// ErrDuplicateCallID is returned when an event with the same CallID exists.
var ErrDuplicateCallID = errors.New("lookup event with this call id already exists")

// Store manages anonymized catalog lookup events.
type Store struct {
	c *mongo.Collection
}

// New creates a new lookups Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// EventFromResult builds the event for one search. The query text is not
// part of the event.
func EventFromResult(source string, requestedType string, res catalog.SearchResult) models.LookupEvent {
	ev := models.LookupEvent{
		CallID:       uuid.NewString(),
		Source:       source,
		Outcome:      res.Outcome(),
		ResourceType: requestedType,
		TokenCount:   res.TokenCount,
		ResultCount:  len(res.Resources),
	}
	for _, r := range res.Resources {
		ev.ResultTypes = append(ev.ResultTypes, string(r.Type))
	}
	return ev
}

// Create records a lookup event, filling in ID, CallID, and Timestamp when
// they are unset.
func (s *Store) Create(ctx context.Context, ev models.LookupEvent) error {
	if ev.ID.IsZero() {
		ev.ID = primitive.NewObjectID()
	}
	if ev.CallID == "" {
		ev.CallID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, ev); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateCallID
		}
		return err
	}
	return nil
}

// Record stores the event for one search and returns its CallID.
func (s *Store) Record(ctx context.Context, source, requestedType string, res catalog.SearchResult) (string, error) {
	ev := EventFromResult(source, requestedType, res)
	return ev.CallID, s.Create(ctx, ev)
}

// Recent returns the newest events first.
func (s *Store) Recent(ctx context.Context, limit int64) ([]models.LookupEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.LookupEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CountByOutcome returns event counts keyed by outcome since the given time.
func (s *Store) CountByOutcome(ctx context.Context, since time.Time) (map[string]int64, error) {
	return s.countGrouped(ctx, since, "$outcome", false)
}

// CountBySource returns event counts keyed by source since the given time.
func (s *Store) CountBySource(ctx context.Context, since time.Time) (map[string]int64, error) {
	return s.countGrouped(ctx, since, "$source", false)
}

// CountByResultType returns how many returned resources carried each type
// since the given time.
func (s *Store) CountByResultType(ctx context.Context, since time.Time) (map[string]int64, error) {
	return s.countGrouped(ctx, since, "$result_types", true)
}

// DayCount is one point of a per-day series.
type DayCount struct {
	Day   string `bson:"_id" json:"day"` // YYYY-MM-DD, UTC
	Count int64  `bson:"count" json:"count"`
}

// CountByDay returns per-day event totals since the given time, oldest first.
func (s *Store) CountByDay(ctx context.Context, since time.Time) ([]DayCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$timestamp"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []DayCount
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) countGrouped(ctx context.Context, since time.Time, field string, unwind bool) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
	}
	if unwind {
		pipeline = append(pipeline, bson.D{{Key: "$unwind", Value: field}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.M{
		"_id":   field,
		"count": bson.M{"$sum": 1},
	}}})

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Count
	}
	return out, nil
}
