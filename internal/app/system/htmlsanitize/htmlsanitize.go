// Package htmlsanitize cleans user-supplied text before it is searched or
// echoed back in a page.
package htmlsanitize

import (
	"html"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// MaxQueryRunes caps the length of a cleaned query.
const MaxQueryRunes = 200

var (
	strictOnce sync.Once
	strict     *bluemonday.Policy
)

func strictPolicy() *bluemonday.Policy {
	strictOnce.Do(func() {
		strict = bluemonday.StrictPolicy()
	})
	return strict
}

// StripTags removes all markup from s and returns plain text. Entities
// are decoded so the result can be passed to html/template without being
// escaped twice.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strictPolicy().Sanitize(s))
}

// CleanQuery strips markup, collapses whitespace, and truncates to
// MaxQueryRunes.
func CleanQuery(q string) string {
	q = strings.Join(strings.Fields(StripTags(q)), " ")
	if utf8.RuneCountInString(q) <= MaxQueryRunes {
		return q
	}
	r := []rune(q)
	return strings.TrimSpace(string(r[:MaxQueryRunes]))
}

// IsPlainText reports whether s contains no HTML tags.
func IsPlainText(s string) bool {
	if s == "" {
		return true
	}
	return !strings.ContainsAny(s, "<>") || StripTags(s) == html.UnescapeString(s)
}
