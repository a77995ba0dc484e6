package formatter

import (
	"fmt"
	"strings"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
)

const descWidth = 48

// FormatResources renders resources as a numbered table with resolved links.
func FormatResources(resources []models.Resource) string {
	if len(resources) == 0 {
		return StyleDim.Render("No matching resources.") + "\n"
	}
	rows := make([][]string, 0, len(resources))
	for i, r := range resources {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			TypeStyle(r.Type).Render(string(r.Type)),
			r.Title,
			Truncate(r.Description, descWidth),
			catalog.ResolveLink(r),
		})
	}
	return RenderTable([]string{"#", "TYPE", "TITLE", "DESCRIPTION", "LINK"}, rows)
}

// FormatSearch renders a search result with a one-line summary above it.
func FormatSearch(query string, res catalog.SearchResult) string {
	var b strings.Builder
	switch {
	case res.Crisis:
		b.WriteString(StyleRed.Render("Crisis terms detected: showing helplines."))
	case res.TokenCount == 0:
		b.WriteString(StyleDim.Render("Empty query."))
	default:
		fmt.Fprintf(&b, "%d result(s) for %q", len(res.Resources), query)
	}
	b.WriteString("\n\n")
	b.WriteString(FormatResources(res.Resources))
	return b.String()
}

// FormatSections renders hub sections one after another, each under its
// heading with a count.
func FormatSections(sections []catalog.Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render(s.Title), StyleDim.Render(fmt.Sprintf("(%d)", len(s.Resources))))
		for _, r := range s.Resources {
			fmt.Fprintf(&b, "  • %s\n", r.Title)
		}
	}
	return b.String()
}
