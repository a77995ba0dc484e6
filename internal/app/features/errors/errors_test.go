package errors

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotFound_Status(t *testing.T) {
	h := NewHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)

	// Rendering may panic without a booted template engine; the status is
	// written first.
	func() {
		defer func() { _ = recover() }()
		h.NotFound(rec, req)
	}()

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestMethodNotAllowed_Status(t *testing.T) {
	h := NewHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/resources", nil)

	func() {
		defer func() { _ = recover() }()
		h.MethodNotAllowed(rec, req)
	}()

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
