// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/wellnesshub/internal/app/system/viewdata"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page that still points the
// visitor at the resource hub.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found", "/"),
		Message: "We couldn't find that page.",
	}
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}

// MethodNotAllowed renders the same page with a 405 status.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Not allowed", "/"),
		Message: "That action isn't available here.",
	}
	w.WriteHeader(http.StatusMethodNotAllowed)
	templates.Render(w, r, "error_not_found", data)
}
