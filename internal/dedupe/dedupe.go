// Package dedupe collapses exact-URL and near-duplicate-title articles
// inside one region's candidate pool.
package dedupe

import (
	"net/url"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"bevintel/internal/enrich"
)

// similarityThreshold rejects titles whose normalized similarity ratio
// exceeds it against any previously accepted title.
const similarityThreshold = 0.8

// Collapse runs the two passes in arrival order, first-seen wins: exact
// normalized-URL match first, then near-duplicate titles. Both passes compare
// only against previously accepted articles. The title pass is O(n²) against
// accepted titles; candidate volumes are bounded upstream, so that stays
// cheap.
func Collapse(articles []enrich.Article) []enrich.Article {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false

	seenURLs := make(map[string]struct{}, len(articles))
	acceptedTitles := make([]string, 0, len(articles))
	accepted := make([]enrich.Article, 0, len(articles))

	for _, art := range articles {
		key := NormalizeURL(art.URL)
		if _, dup := seenURLs[key]; dup {
			continue
		}

		// Only accepted articles register their URL and title; a rejected
		// duplicate must not block later articles that happen to share its
		// URL but survive both passes on their own.
		title := strings.ToLower(art.Title)
		if similarTitle(title, acceptedTitles, lev) {
			continue
		}

		seenURLs[key] = struct{}{}
		acceptedTitles = append(acceptedTitles, title)
		accepted = append(accepted, art)
	}

	return accepted
}

func similarTitle(title string, accepted []string, lev *metrics.Levenshtein) bool {
	for _, prev := range accepted {
		if strutil.Similarity(title, prev, lev) > similarityThreshold {
			return true
		}
	}
	return false
}

// NormalizeURL reduces a link to scheme+host+path with the trailing slash
// stripped; query string and fragment are discarded, so tracking parameters
// never defeat the duplicate check. Unparseable input falls back to the raw
// string.
func NormalizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), "/")
	}
	normalized := strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + u.Path
	return strings.TrimSuffix(normalized, "/")
}
