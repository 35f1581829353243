package briefing

import (
	"fmt"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bevintel/internal/enrich"
	"bevintel/internal/feeds"
	"bevintel/internal/region"
)

var testDef = region.Definition{ID: "germany", Name: "Germany"}

func testArticle(title string, cat enrich.Category, tags ...string) enrich.Article {
	return enrich.Article{
		RawItem: feeds.RawItem{
			Title:     title,
			URL:       "https://example.com/" + title,
			Summary:   "summary of " + title,
			Published: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		},
		Category:     cat,
		ProductTags:  tags,
		WhyItMatters: "why " + string(cat),
		SalesAngles:  []string{"angle for " + string(cat)},
		Confidence:   "high",
	}
}

func TestSynthesizeSectionCaps(t *testing.T) {
	var articles []enrich.Article
	for i := 0; i < 8; i++ {
		articles = append(articles, testArticle(fmt.Sprintf("launch %d", i), enrich.CategoryLaunch))
	}

	b := Synthesize(testDef, articles)

	assert.Len(t, b.ExecutiveSummary, 5)
	assert.Len(t, b.KeyLaunches, 5)
}

func TestSynthesizeSectionMapping(t *testing.T) {
	articles := []enrich.Article{
		testArticle("new energy drink", enrich.CategoryLaunch, "energy"),
		testArticle("price hike announced", enrich.CategoryPricing),
		testArticle("sugar tax vote", enrich.CategoryRegulation),
		testArticle("market share shifts", enrich.CategoryMarket),
	}
	articles[0].Entities.Companies = []string{"Red Bull"}

	b := Synthesize(testDef, articles)

	require.Len(t, b.KeyLaunches, 1)
	assert.Equal(t, "Red Bull", b.KeyLaunches[0].Company)
	assert.Equal(t, "energy", b.KeyLaunches[0].Product)
	assert.Equal(t, "angle for launch", b.KeyLaunches[0].Angle)

	require.Len(t, b.PricingPromotions, 1)
	assert.Equal(t, "why pricing", b.PricingPromotions[0].SalesRiskOrOpportunity)

	require.Len(t, b.RegulatoryWatch, 1)
	require.Len(t, b.CompetitorMoves, 1)
	assert.Equal(t, "market", b.CompetitorMoves[0].MoveType)
}

func TestSynthesizeMissingCompanyIsDash(t *testing.T) {
	b := Synthesize(testDef, []enrich.Article{testArticle("mystery launch", enrich.CategoryLaunch)})

	require.Len(t, b.KeyLaunches, 1)
	assert.Equal(t, "-", b.KeyLaunches[0].Company)
	assert.Equal(t, "beverage", b.KeyLaunches[0].Product)
}

func TestSignalConfidenceTiers(t *testing.T) {
	var articles []enrich.Article
	for i := 0; i < 5; i++ {
		articles = append(articles, testArticle(fmt.Sprintf("energy %d", i), enrich.CategoryTrend, "energy"))
	}
	articles = append(articles,
		testArticle("rtd one", enrich.CategoryTrend, "rtd"),
		testArticle("rtd two", enrich.CategoryTrend, "rtd"),
		testArticle("water only", enrich.CategoryTrend, "water"),
	)

	b := Synthesize(testDef, articles)
	require.NotEmpty(t, b.Signals)

	byTag := make(map[string]Signal)
	for _, s := range b.Signals {
		byTag[s.TopKeywords[0]] = s
	}

	assert.Equal(t, "high", byTag["energy"].Confidence)
	assert.Equal(t, 5, byTag["energy"].SupportCount)
	assert.Equal(t, "medium", byTag["rtd"].Confidence)
	assert.Equal(t, "low", byTag["water"].Confidence)
}

func TestSignalsFallBackToCategories(t *testing.T) {
	articles := []enrich.Article{
		testArticle("untagged a", enrich.CategoryMarket),
		testArticle("untagged b", enrich.CategoryMarket),
	}

	b := Synthesize(testDef, articles)
	require.NotEmpty(t, b.Signals)
	assert.Equal(t, "medium", b.Signals[0].Confidence)
	assert.Equal(t, []string{"market"}, b.Signals[0].TopKeywords)
}

func TestTalkingPointsAndActionsNeverEmpty(t *testing.T) {
	// No launches, no regulation, no functional/energy tags: only the
	// generic fallbacks can fire.
	articles := []enrich.Article{
		testArticle("quiet market note", enrich.CategoryMarket),
	}

	b := Synthesize(testDef, articles)

	require.Len(t, b.TalkingPoints, 1)
	assert.Equal(t, "key_account", b.TalkingPoints[0].CustomerType)
	require.Len(t, b.RecommendedActions, 1)
	assert.Equal(t, "sales", b.RecommendedActions[0].Owner)
}

func TestSynthesizeEmptyRegion(t *testing.T) {
	b := Synthesize(testDef, nil)

	assert.Empty(t, b.ExecutiveSummary)
	assert.Empty(t, b.TalkingPoints)
	assert.Empty(t, b.RecommendedActions)
	assert.Empty(t, b.Signals)
}

func TestTruncateRuneSafe(t *testing.T) {
	got := truncate("Händler überall stocken Säfte auf", 10)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Händler üb", got)

	assert.Equal(t, "kurz", truncate("kurz", 10))
}

func TestSortKeywordCountsDeterministic(t *testing.T) {
	counts := map[string]int{"b": 2, "a": 2, "c": 5}

	got := sortKeywordCounts(counts)

	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].key)
	// Equal counts tie-break alphabetically.
	assert.Equal(t, "a", got[1].key)
	assert.Equal(t, "b", got[2].key)
}

func TestCondense(t *testing.T) {
	defs := []region.Definition{
		{ID: "germany", Name: "Germany"},
		{ID: "austria", Name: "Austria"},
	}
	all := []enrich.Article{
		testArticle("launch one", enrich.CategoryLaunch, "energy"),
		testArticle("launch two", enrich.CategoryLaunch, "energy"),
		testArticle("reg story", enrich.CategoryRegulation),
	}
	perRegion := map[string][]enrich.Article{
		"germany": all,
		"austria": nil,
	}
	now := time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)

	c := Condense(defs, all, perRegion, now)

	assert.Contains(t, c.Briefing, "Tracking 3 beverage intelligence items across 1 regions.")
	assert.Contains(t, c.Briefing, "product launches")
	assert.Equal(t, "Friday, 28 August 2026", c.GeneratedDate)
	assert.Equal(t, "rss-analysis", c.Meta.Method)
	assert.Equal(t, 3, c.Meta.TotalArticlesAnalyzed)
	assert.Equal(t, 2, c.Meta.TopTopics["energy"])

	assert.Contains(t, c.Signals["germany"], "items tracked")
	assert.Equal(t, "Expanding sources for Austria.", c.Signals["austria"])
}
