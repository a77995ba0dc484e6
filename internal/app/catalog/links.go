package catalog

import (
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
)

// Provider search endpoints used to turn a search-query link into a URL.
const (
	youtubeSearchURL = "https://www.youtube.com/results?search_query="
	spotifySearchURL = "https://open.spotify.com/search/"
	playStoreURL     = "https://play.google.com/store/search?q="
	webSearchURL     = "https://www.google.com/search?q="
)

// ResolveLink turns a resource's opaque link into something a browser can
// open. Absolute http(s) URLs pass through; tel: links pass through for
// helplines; anything else is treated as a search query for the provider
// that suits the resource type.
func ResolveLink(r models.Resource) string {
	link := strings.TrimSpace(r.Link)
	if urlutil.IsValidAbsHTTPURL(link) {
		return link
	}

	switch r.Type {
	case models.ResourceTypeVideo:
		return youtubeSearchURL + url.QueryEscape(link)
	case models.ResourceTypeMusic, models.ResourceTypePodcast:
		return spotifySearchURL + url.PathEscape(link)
	case models.ResourceTypeApp:
		return playStoreURL + url.QueryEscape(link) + "&c=apps"
	case models.ResourceTypeHelpline:
		if strings.HasPrefix(strings.ToLower(link), "tel:") {
			return link
		}
	}
	return webSearchURL + url.QueryEscape(link)
}
