// Package region assigns articles to geographic regions and buckets them.
package region

import (
	"strings"

	"bevintel/internal/enrich"
	"bevintel/internal/feeds"
	"bevintel/internal/relevance"
)

// Global is the sentinel meaning "no specific region matched; broadcast to
// all regions" during bucketing.
const Global = feeds.GlobalRegion

// Definition is one immutable configured region.
type Definition struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Currency string   `yaml:"currency"`
	Keywords []string `yaml:"keywords"`
	// NegativeKeywords disambiguate homonyms: one hit blocks the region
	// match even when positive keywords are present (austria vs australia).
	NegativeKeywords []string `yaml:"negative_keywords"`
}

// Matches reports whether the text names this region: at least one positive
// keyword and no negative keyword.
func (d Definition) Matches(text string) bool {
	if relevance.ContainsAny(text, d.NegativeKeywords) {
		return false
	}
	return relevance.ContainsAny(text, d.Keywords)
}

// Hits counts positive-keyword matches; the window scorer maps this count to
// region-match strength.
func (d Definition) Hits(text string) int {
	return relevance.CountMatches(text, d.Keywords)
}

// Assigner performs multi-label region classification with a global fallback.
type Assigner struct {
	defs []Definition
}

func NewAssigner(defs []Definition) *Assigner {
	return &Assigner{defs: defs}
}

// Definitions returns the configured regions in declaration order.
func (a *Assigner) Definitions() []Definition {
	return a.defs
}

// Assign returns the regions an article belongs to. Keyword matches win; a
// miss falls back to the feed's declared regions, and articles from
// global-scope feeds that match nothing get the global sentinel instead of
// being discarded.
func (a *Assigner) Assign(text string, feedRegions []string) []string {
	text = strings.ToLower(text)

	matched := make([]string, 0, 2)
	for _, def := range a.defs {
		if def.Matches(text) {
			matched = append(matched, def.ID)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	if len(feedRegions) > 0 && !(len(feedRegions) == 1 && feedRegions[0] == Global) {
		return feedRegions
	}
	return []string{Global}
}

// Bucket fans articles out into per-region candidate pools, preserving
// arrival order. Globally tagged articles are additive intelligence for all
// regions, so they land in every pool; whether they carry genuine
// region-specific signal is tracked separately via region-match strength.
func (a *Assigner) Bucket(articles []enrich.Article) map[string][]enrich.Article {
	buckets := make(map[string][]enrich.Article, len(a.defs))
	for _, def := range a.defs {
		buckets[def.ID] = nil
	}

	for _, art := range articles {
		for _, id := range art.Regions {
			if id == Global {
				for _, def := range a.defs {
					buckets[def.ID] = append(buckets[def.ID], art)
				}
				break
			}
			if _, ok := buckets[id]; ok {
				buckets[id] = append(buckets[id], art)
			}
		}
	}

	return buckets
}
