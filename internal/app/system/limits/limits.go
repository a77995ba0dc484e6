// internal/app/system/limits/limits.go
package limits

// Request body size limits for the JSON endpoints.
const (
	// MaxToolBodySize is the maximum size of a findResources tool call body.
	MaxToolBodySize = 16 << 10 // 16 KB
)
