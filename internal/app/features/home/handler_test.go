package home

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	cat, err := catalog.New(testutil.SampleResources())
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return NewHandler(cat, zap.NewNop())
}

func TestBuildHome_Categories(t *testing.T) {
	h := newTestHandler(t)
	data := h.buildHome(httptest.NewRequest("GET", "/", nil))

	want := []categoryVM{
		{Type: "helpline", Label: "Helplines", Count: 1},
		{Type: "exercise", Label: "Exercises", Count: 1},
		{Type: "video", Label: "Videos & Meditations", Count: 1},
		{Type: "music", Label: "Music & Calming Sounds", Count: 2},
	}
	if len(data.Categories) != len(want) {
		t.Fatalf("categories: got %+v", data.Categories)
	}
	for i := range want {
		if data.Categories[i] != want[i] {
			t.Errorf("category %d: got %+v, want %+v", i, data.Categories[i], want[i])
		}
	}
}

func TestBuildHome_FeaturesFirstHelpline(t *testing.T) {
	h := NewHandler(catalog.MustDefault(), zap.NewNop())
	data := h.buildHome(httptest.NewRequest("GET", "/", nil))

	if data.Helpline == nil {
		t.Fatal("expected a featured helpline")
	}
	if data.Helpline.Title != "KIRAN - Mental Health Helpline (India)" {
		t.Errorf("Helpline: got %q", data.Helpline.Title)
	}
	if string(data.HelpHref) != "tel:1800-599-0019" {
		t.Errorf("HelpHref: got %q", data.HelpHref)
	}
}

func TestServeRoot(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	// Handler will try to render a template which may panic without initialized templates
	func() {
		defer func() { _ = recover() }()
		h.ServeRoot(rec, req)
	}()
}
