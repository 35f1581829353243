// Package window filters a region's deduplicated candidates to a lookback
// window, scores them, and produces the capped ordered list every output
// consumes.
package window

import (
	"math"
	"sort"
	"time"

	"bevintel/internal/enrich"
	"bevintel/internal/region"
)

const (
	PrimaryWindowDays  = 28
	FallbackWindowDays = 42
	MinRegionItems     = 10
	MaxPerRegion       = 50

	// decayK is the recency decay constant in exp(-k * age_days).
	decayK = 0.05
)

// Strength labels for region-match strength.
const (
	StrengthHigh   = "high"
	StrengthMedium = "medium"
	StrengthLow    = "low"
)

// Confidence labels.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

var strengthWeights = map[string]float64{
	StrengthHigh:   1.0,
	StrengthMedium: 0.6,
	StrengthLow:    0.3,
}

// categoryWeights is the fixed per-category priority component.
var categoryWeights = map[enrich.Category]float64{
	enrich.CategoryRegulation: 1.0,
	enrich.CategoryPricing:    0.9,
	enrich.CategoryLaunch:     0.8,
	enrich.CategoryMarket:     0.6,
	enrich.CategoryTrend:      0.5,
}

// tierWeights maps source reliability tier to its score component.
var tierWeights = map[int]float64{
	1: 1.0,
	2: 0.85,
	3: 0.7,
	4: 0.5,
}

// Result is one region's selected, scored, ordered and capped list.
type Result struct {
	Articles     []enrich.Article
	WindowDays   int
	FallbackUsed bool
}

// Select applies the primary window, widening to the fallback window when
// fewer than MinRegionItems survive. The widening is an explicit, recorded
// degrade path, never an error, and never yields fewer articles than the
// primary window did.
func Select(candidates []enrich.Article, def region.Definition, now time.Time) Result {
	primary := withinWindow(candidates, now, PrimaryWindowDays)

	res := Result{Articles: primary, WindowDays: PrimaryWindowDays}
	if len(primary) < MinRegionItems {
		res.Articles = withinWindow(candidates, now, FallbackWindowDays)
		res.WindowDays = FallbackWindowDays
		res.FallbackUsed = true
	}

	primaryCutoff := now.AddDate(0, 0, -PrimaryWindowDays)
	for i := range res.Articles {
		art := &res.Articles[i]
		art.Regions = []string{def.ID}
		art.Strength = strengthFor(def.Hits(art.Text()))
		art.Score = Score(*art, now)
		art.Confidence = confidenceFor(*art, primaryCutoff)
	}

	order(res.Articles)
	if len(res.Articles) > MaxPerRegion {
		res.Articles = res.Articles[:MaxPerRegion]
	}
	return res
}

func withinWindow(articles []enrich.Article, now time.Time, days int) []enrich.Article {
	cutoff := now.AddDate(0, 0, -days)
	kept := make([]enrich.Article, 0, len(articles))
	for _, art := range articles {
		if !art.Published.Before(cutoff) {
			kept = append(kept, art)
		}
	}
	return kept
}

// strengthFor maps positive-keyword hit counts to the strength bucket.
func strengthFor(hits int) string {
	switch {
	case hits >= 2:
		return StrengthHigh
	case hits == 1:
		return StrengthMedium
	default:
		return StrengthLow
	}
}

// Score computes the composite priority: 50% recency decay, 25% region-match
// strength, 15% category priority, 10% source-tier reliability. The result
// is in [0,1] and deterministic for identical inputs.
func Score(art enrich.Article, now time.Time) float64 {
	ageDays := now.Sub(art.Published).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}
	recency := math.Exp(-decayK * ageDays)

	tier := tierWeights[art.Tier]
	if tier == 0 {
		tier = tierWeights[4]
	}

	return 0.5*recency +
		0.25*strengthWeights[art.Strength] +
		0.15*categoryWeights[art.Category] +
		0.10*tier
}

// confidenceFor: high needs a primary-window publish date and non-low
// strength; articles only admitted by the widened window are low; the rest
// are medium.
func confidenceFor(art enrich.Article, primaryCutoff time.Time) string {
	if art.Published.Before(primaryCutoff) {
		return ConfidenceLow
	}
	if art.Strength != StrengthLow {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}

var strengthRank = map[string]int{
	StrengthHigh:   0,
	StrengthMedium: 1,
	StrengthLow:    2,
}

// order groups by strength bucket, then descending score inside a bucket.
// Publish date and title break remaining ties so the output is stable for
// identical input corpora.
func order(articles []enrich.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		a, b := articles[i], articles[j]
		if strengthRank[a.Strength] != strengthRank[b.Strength] {
			return strengthRank[a.Strength] < strengthRank[b.Strength]
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Published.Equal(b.Published) {
			return a.Published.After(b.Published)
		}
		return a.Title < b.Title
	})
}
