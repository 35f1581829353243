// Package enrich classifies accepted articles: exactly one category, plus
// independent multi-label entity and product-tag sets.
package enrich

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"bevintel/internal/feeds"
	"bevintel/internal/relevance"
)

// Category is the single classification every article receives.
type Category string

const (
	CategoryRegulation Category = "regulation"
	CategoryPricing    Category = "pricing"
	CategoryLaunch     Category = "launch"
	CategoryTrend      Category = "trend"
	CategoryMarket     Category = "market"
)

// FallbackCategory applies when no rule and no feed default matches.
const FallbackCategory = CategoryMarket

// CategoryRule pairs a category with its trigger keywords. Rule order is a
// prioritization contract: rules are evaluated top to bottom and the first
// hit wins, so regulation outranks pricing outranks launch even when several
// rules' keywords are all present.
type CategoryRule struct {
	Category Category
	Keywords []string
}

// TagRule maps one product tag to its trigger keywords.
type TagRule struct {
	Tag      string
	Keywords []string
}

// Entities are the four non-exclusive dictionary scans. Each set may be empty.
type Entities struct {
	Companies   []string `json:"companies"`
	Ingredients []string `json:"ingredients"`
	Packaging   []string `json:"packaging"`
	Channels    []string `json:"channels"`
}

// Article is a RawItem after enrichment. Regions, strength, confidence and
// score are filled by later stages; an article fanned out to several regions
// is copied per bucket so those fields stay region-specific.
type Article struct {
	feeds.RawItem

	ID           string
	Category     Category
	Entities     Entities
	ProductTags  []string
	WhyItMatters string
	SalesAngles  []string

	Regions    []string
	Strength   string
	Confidence string
	Score      float64
}

// Dictionaries is the immutable keyword configuration the enricher scans.
type Dictionaries struct {
	CategoryRules []CategoryRule
	Companies     []string
	Ingredients   []string
	Packaging     []string
	Channels      []string
	Tags          []TagRule
	WhyItMatters  map[Category]string
	SalesAngles   map[Category][]string
}

// Enricher applies the dictionaries to one article at a time.
type Enricher struct {
	dicts Dictionaries
}

func NewEnricher(dicts Dictionaries) *Enricher {
	return &Enricher{dicts: dicts}
}

// Enrich classifies the item and attaches entities, tags and the
// category-derived sales templates.
func (e *Enricher) Enrich(item feeds.RawItem, feedCategory string) Article {
	text := item.Text()
	cat := e.classify(text, feedCategory)

	return Article{
		RawItem:      item,
		ID:           ArticleID(item.URL),
		Category:     cat,
		Entities:     e.extractEntities(text),
		ProductTags:  e.tagProduct(text),
		WhyItMatters: e.dicts.WhyItMatters[cat],
		SalesAngles:  e.dicts.SalesAngles[cat],
	}
}

// classify walks the ordered rule list; only rule order breaks ties. A miss
// falls back to the feed's declared category, then the fallback. Defaulting
// is a decision, not an error.
func (e *Enricher) classify(text string, feedCategory string) Category {
	for _, rule := range e.dicts.CategoryRules {
		if relevance.ContainsAny(text, rule.Keywords) {
			return rule.Category
		}
	}
	if feedCategory != "" {
		return Category(feedCategory)
	}
	return FallbackCategory
}

func (e *Enricher) extractEntities(text string) Entities {
	return Entities{
		Companies:   scanDictionary(text, e.dicts.Companies),
		Ingredients: scanDictionary(text, e.dicts.Ingredients),
		Packaging:   scanDictionary(text, e.dicts.Packaging),
		Channels:    scanDictionary(text, e.dicts.Channels),
	}
}

func (e *Enricher) tagProduct(text string) []string {
	tags := make([]string, 0, 4)
	for _, rule := range e.dicts.Tags {
		if relevance.ContainsAny(text, rule.Keywords) {
			tags = append(tags, rule.Tag)
		}
	}
	return tags
}

// scanDictionary keeps the dictionary's original casing in the result while
// matching case-insensitively.
func scanDictionary(text string, dict []string) []string {
	found := make([]string, 0, 2)
	for _, term := range dict {
		if term != "" && strings.Contains(text, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return found
}

// ArticleID derives the short stable id used in output documents.
func ArticleID(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])[:12]
}
