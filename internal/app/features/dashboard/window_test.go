package dashboard

import (
	"testing"
	"time"

	metricsstore "github.com/dalemusser/wellnesshub/internal/app/store/metrics"
	"github.com/dalemusser/wellnesshub/internal/app/store/lookups"
)

func TestWindowDays(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 30},
		{"abc", 30},
		{"7", 7},
		{"0", 1},
		{"-5", 1},
		{"365", 365},
		{"1000", 365},
	}
	for _, tt := range tests {
		if got := windowDays(tt.raw, 30); got != tt.want {
			t.Errorf("windowDays(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestNewHandler_WindowDefault(t *testing.T) {
	if h := NewHandler(nil, nil, 0, nil); h.WindowDays != DefaultWindowDays {
		t.Errorf("WindowDays: got %d, want %d", h.WindowDays, DefaultWindowDays)
	}
	if h := NewHandler(nil, nil, 9999, nil); h.WindowDays != MaxWindowDays {
		t.Errorf("WindowDays: got %d, want %d", h.WindowDays, MaxWindowDays)
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)

	if got := windowStart(now, 1); !got.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("1 day: got %v", got)
	}
	if got := windowStart(now, 30); !got.Equal(time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("30 days: got %v", got)
	}
}

func TestShare(t *testing.T) {
	if got := share(0, 0); got != "0%" {
		t.Errorf("share(0,0) = %q", got)
	}
	if got := share(1, 8); got != "12.5%" {
		t.Errorf("share(1,8) = %q", got)
	}
}

func TestBars(t *testing.T) {
	d := metricsstore.Dashboard{PerDay: []lookups.DayCount{
		{Day: "2026-03-01", Count: 2},
		{Day: "2026-03-02", Count: 8},
		{Day: "2026-03-03", Count: 0},
	}}
	got := bars(d)
	want := []int{25, 100, 0}
	if len(got) != len(want) {
		t.Fatalf("expected %d bars, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Pct != w {
			t.Errorf("bar %d: got %d%%, want %d%%", i, got[i].Pct, w)
		}
	}
}
