package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bevintel/internal/feeds"
)

func testDictionaries() Dictionaries {
	return Dictionaries{
		CategoryRules: []CategoryRule{
			{Category: CategoryRegulation, Keywords: []string{"regulation", "nutri-score", "tax", "labelling"}},
			{Category: CategoryPricing, Keywords: []string{"price", "inflation"}},
			{Category: CategoryLaunch, Keywords: []string{"launch", "unveil"}},
			{Category: CategoryTrend, Keywords: []string{"trend", "consumer"}},
			{Category: CategoryMarket, Keywords: []string{"market", "sales"}},
		},
		Companies:   []string{"Coca-Cola", "Red Bull"},
		Ingredients: []string{"caffeine", "stevia"},
		Packaging:   []string{"pet bottle", "aluminium can"},
		Channels:    []string{"retail", "horeca"},
		Tags: []TagRule{
			{Tag: "energy", Keywords: []string{"energy drink", "caffeine"}},
			{Tag: "sugar_free", Keywords: []string{"zero sugar", "stevia"}},
		},
		WhyItMatters: map[Category]string{
			CategoryLaunch:     "launch matters",
			CategoryRegulation: "regulation matters",
		},
		SalesAngles: map[Category][]string{
			CategoryLaunch: {"angle one", "angle two"},
		},
	}
}

func item(title, summary string) feeds.RawItem {
	return feeds.RawItem{Title: title, URL: "https://example.com/a", Summary: summary}
}

func TestClassifyRuleOrderWins(t *testing.T) {
	e := NewEnricher(testDictionaries())

	// Both launch and regulation keywords are present; the regulation rule
	// sits higher in the list, so it wins.
	art := e.Enrich(item("France expands Nutri-Score labelling to new beverage launches", ""), "")
	assert.Equal(t, CategoryRegulation, art.Category)
	assert.Equal(t, "regulation matters", art.WhyItMatters)
}

func TestClassifyFeedDefault(t *testing.T) {
	e := NewEnricher(testDictionaries())

	art := e.Enrich(item("quiet week for the industry", ""), "trend")
	assert.Equal(t, CategoryTrend, art.Category)
}

func TestClassifyFallback(t *testing.T) {
	e := NewEnricher(testDictionaries())

	art := e.Enrich(item("quiet week for the industry", ""), "")
	assert.Equal(t, FallbackCategory, art.Category)
}

func TestEntitiesAndTagsAreMultiLabel(t *testing.T) {
	e := NewEnricher(testDictionaries())

	art := e.Enrich(item(
		"Red Bull unveils zero sugar energy drink",
		"The caffeine-heavy launch targets retail and horeca in a new aluminium can.",
	), "")

	assert.Equal(t, []string{"Red Bull"}, art.Entities.Companies)
	assert.Equal(t, []string{"caffeine"}, art.Entities.Ingredients)
	assert.Equal(t, []string{"aluminium can"}, art.Entities.Packaging)
	assert.Equal(t, []string{"retail", "horeca"}, art.Entities.Channels)
	assert.Equal(t, []string{"energy", "sugar_free"}, art.ProductTags)
}

func TestEntityCasingPreserved(t *testing.T) {
	e := NewEnricher(testDictionaries())

	art := e.Enrich(item("COCA-COLA raises guidance", ""), "")
	require.Len(t, art.Entities.Companies, 1)
	assert.Equal(t, "Coca-Cola", art.Entities.Companies[0])
}

func TestArticleID(t *testing.T) {
	a := ArticleID("https://example.com/story")
	b := ArticleID("https://example.com/story")
	c := ArticleID("https://example.com/other")

	assert.Len(t, a, 12)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
