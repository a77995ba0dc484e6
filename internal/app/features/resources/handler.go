// internal/app/features/resources/handler.go
package resources

import (
	"context"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/app/system/telemetry"
	"github.com/dalemusser/wellnesshub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Recorder stores one anonymized lookup event and returns its call ID.
// *lookups.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, source, requestedType string, res catalog.SearchResult) (string, error)
}

// Handler owns the resource hub page, the JSON search and list endpoints,
// and the findResources tool endpoint.
//
// It is constructed once at startup in bootstrap with the serving catalog,
// an optional lookup recorder, and the logger.
type Handler struct {
	Catalog *catalog.Catalog
	Lookups Recorder // nil disables lookup recording
	Log     *zap.Logger
}

// NewHandler constructs a Handler. rec may be nil.
func NewHandler(cat *catalog.Catalog, rec Recorder, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Lookups: rec,
		Log:     logger,
	}
}

// record stores the lookup event. Failures are logged and never surface to
// the caller.
func (h *Handler) record(ctx context.Context, source, requestedType string, res catalog.SearchResult) string {
	telemetry.ObserveLookup(source, res.Outcome(), len(res.Resources))
	if h.Lookups == nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.Short())
	defer cancel()

	callID, err := h.Lookups.Record(ctx, source, requestedType, res)
	if err != nil {
		telemetry.RecordFailures.Inc()
		h.Log.Warn("record lookup failed",
			zap.String("source", source),
			zap.String("outcome", res.Outcome()),
			zap.Error(err))
		return ""
	}
	return callID
}
