// Package catalog holds the static wellness resource catalog and the
// retrieval logic behind the chat assistant's lookup tool, the resource hub,
// and the search API.
//
// A Catalog is immutable once built. Every accessor returns copies, so any
// number of request handlers may read it concurrently without locking.
package catalog

import (
	"embed"
	"fmt"
	"sync"

	"github.com/dalemusser/wellnesshub/internal/domain/models"
)

// Result-size bounds used when a Catalog is built without explicit limits.
const (
	DefaultLimit = 5
	MaxLimit     = 15
)

//go:embed data/wellness.yaml
var seedFS embed.FS

const seedPath = "data/wellness.yaml"

// Catalog is an ordered, read-only list of resources. Order matters: it is
// the tie-break order for ranking and the within-group order for grouping.
type Catalog struct {
	resources    []models.Resource
	defaultLimit int
	maxLimit     int
}

// Option configures a Catalog at construction time.
type Option func(*Catalog)

// WithLimits sets the default result size (used when a caller passes a
// non-positive limit) and the hard maximum any caller may request.
// Non-positive values keep the package defaults.
func WithLimits(defaultLimit, maxLimit int) Option {
	return func(c *Catalog) {
		if maxLimit > 0 {
			c.maxLimit = maxLimit
		}
		if defaultLimit > 0 {
			c.defaultLimit = defaultLimit
		}
	}
}

// New validates resources and builds a Catalog from a private copy of them.
func New(resources []models.Resource, opts ...Option) (*Catalog, error) {
	if err := Validate(resources); err != nil {
		return nil, err
	}
	c := &Catalog{
		resources:    cloneAll(resources),
		defaultLimit: DefaultLimit,
		maxLimit:     MaxLimit,
	}
	for _, o := range opts {
		o(c)
	}
	if c.defaultLimit > c.maxLimit {
		c.defaultLimit = c.maxLimit
	}
	return c, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the process-wide catalog built from the embedded seed file.
// It is decoded and validated once; later calls return the same instance.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		b, err := seedFS.ReadFile(seedPath)
		if err != nil {
			defaultErr = fmt.Errorf("read embedded catalog: %w", err)
			return
		}
		defaultCat, defaultErr = Parse(b)
	})
	return defaultCat, defaultErr
}

// MustDefault is Default for tests and wiring code where a broken embedded
// seed file is a programming error.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// All returns every resource in catalog order.
func (c *Catalog) All() []models.Resource {
	return cloneAll(c.resources)
}

// Len returns the number of resources in the catalog.
func (c *Catalog) Len() int { return len(c.resources) }

// DefaultLimit returns the result size used for non-positive limits.
func (c *Catalog) DefaultLimit() int { return c.defaultLimit }

// MaxLimit returns the largest result size a caller can get.
func (c *Catalog) MaxLimit() int { return c.maxLimit }

// CountByType returns how many catalog resources carry each type.
// Types with no resources are present with a zero count.
func (c *Catalog) CountByType() map[models.ResourceType]int {
	out := make(map[models.ResourceType]int, len(models.ResourceTypes))
	for _, t := range models.ResourceTypes {
		out[t] = 0
	}
	for _, r := range c.resources {
		out[r.Type]++
	}
	return out
}

// effectiveLimit clamps a caller-supplied limit into [1, maxLimit].
func (c *Catalog) effectiveLimit(limit int) int {
	if limit <= 0 {
		limit = c.defaultLimit
	}
	if limit > c.maxLimit {
		limit = c.maxLimit
	}
	return limit
}

func cloneAll(in []models.Resource) []models.Resource {
	out := make([]models.Resource, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
