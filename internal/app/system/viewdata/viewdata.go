// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is shown in page headers when no name is configured.
const DefaultSiteName = "Wellness Hub"

var (
	mu       sync.RWMutex
	siteName = DefaultSiteName
)

// SetSiteName sets the name shown in every page header.
// Call this once at startup from bootstrap.
func SetSiteName(name string) {
	mu.Lock()
	defer mu.Unlock()
	if name == "" {
		name = DefaultSiteName
	}
	siteName = name
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName    string
	Title       string
	BackURL     string
	CurrentPath string
}

// NewBaseVM creates a populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	mu.RLock()
	name := siteName
	mu.RUnlock()

	return BaseVM{
		SiteName:    name,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
}
