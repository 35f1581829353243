package briefing

import (
	"fmt"
	"strings"
	"time"

	"bevintel/internal/enrich"
	"bevintel/internal/region"
)

// Condensed is the short morning-briefing document consumed by a separate
// lightweight display surface. Its field shape is a backward-compatibility
// contract; do not rename fields.
type Condensed struct {
	GeneratedAt   string            `json:"generated_at"`
	GeneratedDate string            `json:"generated_date"`
	Briefing      string            `json:"briefing"`
	Signals       map[string]string `json:"signals"`
	Meta          CondensedMeta     `json:"meta"`
}

// CondensedMeta carries the analysis totals and the top-topic histogram.
type CondensedMeta struct {
	TotalArticlesAnalyzed int            `json:"total_articles_analyzed"`
	Method                string         `json:"method"`
	TopTopics             map[string]int `json:"top_topics"`
}

var themePhrases = map[enrich.Category]string{
	enrich.CategoryLaunch:     "product launches",
	enrich.CategoryRegulation: "regulatory developments",
	enrich.CategoryPricing:    "pricing shifts",
	enrich.CategoryTrend:      "consumer trends",
	enrich.CategoryMarket:     "market developments",
}

// Condense builds the headline sentence, one-line per-region signals and the
// top-topic histogram from the full accepted corpus plus the per-region
// selections.
func Condense(defs []region.Definition, all []enrich.Article, perRegion map[string][]enrich.Article, now time.Time) Condensed {
	active := 0
	for _, arts := range perRegion {
		if len(arts) > 0 {
			active++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tracking %d beverage intelligence items across %d regions.", len(all), active)

	if themes := topThemes(all, 3); len(themes) > 0 {
		fmt.Fprintf(&b, " Top themes: %s.", strings.Join(themes, ", "))
	}
	if newest := newestOf(all); newest != nil {
		fmt.Fprintf(&b, " Latest: %s.", truncate(newest.Title, 100))
	}

	signals := make(map[string]string, len(defs))
	for _, def := range defs {
		signals[def.ID] = regionSignal(def, perRegion[def.ID])
	}

	topTopics := make(map[string]int, 10)
	for _, tc := range capKeywordCounts(countTags(all), 10) {
		topTopics[tc.key] = tc.count
	}

	return Condensed{
		GeneratedAt:   now.Format(time.RFC3339),
		GeneratedDate: now.Format("Monday, 02 January 2006"),
		Briefing:      b.String(),
		Signals:       signals,
		Meta: CondensedMeta{
			TotalArticlesAnalyzed: len(all),
			Method:                "rss-analysis",
			TopTopics:             topTopics,
		},
	}
}

// regionSignal is the one-line per-region summary string.
func regionSignal(def region.Definition, articles []enrich.Article) string {
	if len(articles) == 0 {
		return fmt.Sprintf("Expanding sources for %s.", def.Name)
	}

	if tags := countTags(articles); len(tags) > 0 {
		top := strings.ReplaceAll(tags[0].key, "_", " ")
		return fmt.Sprintf("%s leading. %d items tracked.", titleCase(top), len(articles))
	}
	cats := countCategories(articles)
	return fmt.Sprintf("%s activity. %d items tracked.", titleCase(cats[0].key), len(articles))
}

func topThemes(articles []enrich.Article, n int) []string {
	themes := make([]string, 0, n)
	for _, cc := range capKeywordCounts(countCategories(articles), n) {
		phrase := themePhrases[enrich.Category(cc.key)]
		if phrase == "" {
			phrase = cc.key
		}
		themes = append(themes, phrase)
	}
	return themes
}

func newestOf(articles []enrich.Article) *enrich.Article {
	var newest *enrich.Article
	for i := range articles {
		if newest == nil || articles[i].Published.After(newest.Published) {
			newest = &articles[i]
		}
	}
	return newest
}
