// internal/app/features/dashboard/serve.go
package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	metricsstore "github.com/dalemusser/wellnesshub/internal/app/store/metrics"
	"github.com/dalemusser/wellnesshub/internal/app/system/timeouts"
	"github.com/dalemusser/wellnesshub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

type dashboardData struct {
	viewdata.BaseVM
	metricsstore.Dashboard

	Days        int
	CrisisShare string // "12.5%" of lookups in the window
	Bars        []dayBar
	DayOptions  []int
}

// dayBar is one row of the per-day table; Pct scales the bar to the busiest day.
type dayBar struct {
	Day   string
	Count int64
	Pct   int
}

// dashboardJSON is the chart-ready body of GET /api/dashboard.
type dashboardJSON struct {
	WindowDays int `json:"window_days"`
	metricsstore.Dashboard
}

func (h *Handler) fetch(r *http.Request) (int, metricsstore.Dashboard) {
	days := windowDays(query.Get(r, "days"), h.WindowDays)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "dashboard aggregates")
	defer cancel()

	return days, metricsstore.FetchDashboard(ctx, h.DB, windowStart(time.Now(), days), h.Catalog)
}

// ServeDashboard handles GET /dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	days, d := h.fetch(r)

	data := dashboardData{
		BaseVM:     viewdata.NewBaseVM(r, "Resource Lookup Dashboard", "/"),
		Dashboard:  d,
		Days:       days,
		DayOptions: []int{7, 30, 90, 365},
	}
	data.CrisisShare = share(d.Crisis, d.Lookups)
	data.Bars = bars(d)

	h.Log.Debug("dashboard served", zap.Int("days", days), zap.Int64("lookups", d.Lookups))

	templates.Render(w, r, "dashboard", data)
}

// ServeJSON handles GET /api/dashboard.
func (h *Handler) ServeJSON(w http.ResponseWriter, r *http.Request) {
	days, d := h.fetch(r)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dashboardJSON{WindowDays: days, Dashboard: d})
}

func share(part, total int64) string {
	if total == 0 {
		return "0%"
	}
	return strconv.FormatFloat(float64(part)*100/float64(total), 'f', 1, 64) + "%"
}

func bars(d metricsstore.Dashboard) []dayBar {
	var max int64
	for _, p := range d.PerDay {
		if p.Count > max {
			max = p.Count
		}
	}
	out := make([]dayBar, 0, len(d.PerDay))
	for _, p := range d.PerDay {
		b := dayBar{Day: p.Day, Count: p.Count}
		if max > 0 {
			b.Pct = int(p.Count * 100 / max)
		}
		out = append(out, b)
	}
	return out
}
