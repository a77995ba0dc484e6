// internal/app/features/dashboard/handler.go
package dashboard

import (
	"strconv"
	"time"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Window bounds for ?days=.
const (
	DefaultWindowDays = 30
	MaxWindowDays     = 365
)

// Handler serves the lookup analytics dashboard.
type Handler struct {
	DB         *mongo.Database
	Catalog    *catalog.Catalog
	WindowDays int // default window when ?days= is absent or invalid
	Log        *zap.Logger
}

// NewHandler constructs a dashboard Handler. A non-positive windowDays uses
// DefaultWindowDays.
func NewHandler(db *mongo.Database, cat *catalog.Catalog, windowDays int, logger *zap.Logger) *Handler {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Handler{
		DB:         db,
		Catalog:    cat,
		WindowDays: clampDays(windowDays),
		Log:        logger,
	}
}

// windowDays parses ?days=, falling back to def for missing or
// non-numeric values, and clamps to 1..MaxWindowDays.
func windowDays(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return clampDays(n)
}

func clampDays(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxWindowDays:
		return MaxWindowDays
	}
	return n
}

// windowStart returns midnight UTC days-1 days before now, so a one-day
// window is "today".
func windowStart(now time.Time, days int) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(days - 1))
}
