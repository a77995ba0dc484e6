package catalog

import (
	"sort"
	"strings"

	"github.com/dalemusser/wellnesshub/internal/domain/models"
)

// crisisTokens short-circuit retrieval to helplines. A query containing any
// of them never gets topical content ahead of a helpline.
var crisisTokens = map[string]struct{}{
	"crisis":    {},
	"suicide":   {},
	"help":      {},
	"emergency": {},
	"die":       {},
}

// SearchOptions narrows a search.
type SearchOptions struct {
	// Type, when set, keeps only resources of exactly this type. An unknown
	// value matches nothing. Ignored when the crisis override applies.
	Type models.ResourceType

	// Limit caps the result size. Non-positive means the catalog default;
	// values above the catalog maximum are clamped.
	Limit int
}

// SearchResult is a search outcome plus the metadata analytics records.
type SearchResult struct {
	Resources  []models.Resource
	TokenCount int
	Crisis     bool
}

// Outcome classifies the result as one of the models.LookupOutcome* values.
func (sr SearchResult) Outcome() string {
	switch {
	case sr.TokenCount == 0:
		return models.LookupOutcomeEmptyQuery
	case sr.Crisis:
		return models.LookupOutcomeCrisis
	case len(sr.Resources) == 0:
		return models.LookupOutcomeNotFound
	default:
		return models.LookupOutcomeResolved
	}
}

// Tokenize lowercases query and splits it on runs of whitespace. Empty
// tokens are dropped and repeats collapse to their first occurrence.
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]struct{}, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// IsCrisis reports whether any token is a crisis trigger.
func IsCrisis(tokens []string) bool {
	for _, t := range tokens {
		if _, ok := crisisTokens[t]; ok {
			return true
		}
	}
	return false
}

// Search returns the ranked, size-bounded resources matching query.
//
// A token matches a resource when it occurs as a substring of the resource's
// lowercased title, lowercased description, or any lowercased keyword, so
// "anxious" does not match "anxiety" but "anxi" matches both. The score is
// the number of distinct query tokens that match. Zero-score resources are
// dropped, and equal scores keep catalog order.
//
// Search never fails: an empty or unmatched query yields an empty slice.
func (c *Catalog) Search(query string, opts SearchOptions) []models.Resource {
	return c.Lookup(query, opts).Resources
}

// Lookup is Search with the token count and crisis flag reported alongside.
func (c *Catalog) Lookup(query string, opts SearchOptions) SearchResult {
	tokens := Tokenize(query)
	res := SearchResult{TokenCount: len(tokens), Resources: []models.Resource{}}
	if len(tokens) == 0 {
		return res
	}
	limit := c.effectiveLimit(opts.Limit)

	if IsCrisis(tokens) {
		res.Crisis = true
		for _, r := range c.resources {
			if r.Type != models.ResourceTypeHelpline {
				continue
			}
			res.Resources = append(res.Resources, r.Clone())
			if len(res.Resources) == limit {
				break
			}
		}
		return res
	}

	type scored struct {
		idx   int
		score int
	}
	var hits []scored
	for i, r := range c.resources {
		if opts.Type != "" && r.Type != opts.Type {
			continue
		}
		if s := score(r, tokens); s > 0 {
			hits = append(hits, scored{idx: i, score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	for _, h := range hits {
		res.Resources = append(res.Resources, c.resources[h.idx].Clone())
	}
	return res
}

// score counts the tokens found anywhere in r's searchable text.
func score(r models.Resource, tokens []string) int {
	corpus := make([]string, 0, len(r.Keywords)+2)
	corpus = append(corpus, strings.ToLower(r.Title), strings.ToLower(r.Description))
	for _, k := range r.Keywords {
		corpus = append(corpus, strings.ToLower(k))
	}

	n := 0
	for _, t := range tokens {
		for _, field := range corpus {
			if strings.Contains(field, t) {
				n++
				break
			}
		}
	}
	return n
}
