// Package briefing aggregates a region's top-scored articles into the
// structured per-region briefing and the condensed morning-briefing document.
package briefing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"bevintel/internal/enrich"
	"bevintel/internal/region"
)

const sectionCap = 5

// ExecItem is one executive-summary row.
type ExecItem struct {
	Headline     string   `json:"headline"`
	Detail       string   `json:"detail"`
	EvidenceURLs []string `json:"evidence_urls"`
	Confidence   string   `json:"confidence"`
}

// Launch is one key-launches row.
type Launch struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Product     string `json:"product"`
	Angle       string `json:"angle"`
	EvidenceURL string `json:"evidence_url"`
	Date        string `json:"date"`
}

// CompetitorMove is one competitor-moves row.
type CompetitorMove struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	MoveType    string `json:"move_type"`
	Impact      string `json:"impact"`
	EvidenceURL string `json:"evidence_url"`
	Date        string `json:"date"`
}

// RegulatoryItem is one regulatory-watch row.
type RegulatoryItem struct {
	Title         string `json:"title"`
	Topic         string `json:"topic"`
	ImpactOnSales string `json:"impact_on_sales"`
	EvidenceURL   string `json:"evidence_url"`
	Date          string `json:"date"`
}

// PricingItem is one pricing-and-promotions row.
type PricingItem struct {
	Title                   string `json:"title"`
	WhatChanged             string `json:"what_changed"`
	SalesRiskOrOpportunity  string `json:"sales_risk_or_opportunity"`
	EvidenceURL             string `json:"evidence_url"`
	Date                    string `json:"date"`
}

// Signal is one frequency-derived market signal.
type Signal struct {
	Signal       string   `json:"signal"`
	Explanation  string   `json:"explanation"`
	SupportCount int      `json:"support_count"`
	TopKeywords  []string `json:"top_keywords"`
	Confidence   string   `json:"confidence"`
}

// TalkingPoint is one templated customer pitch.
type TalkingPoint struct {
	CustomerType           string   `json:"customer_type"`
	Pitch                  string   `json:"pitch"`
	SupportingEvidenceURLs []string `json:"supporting_evidence_urls"`
}

// Action is one recommended next step.
type Action struct {
	Owner        string   `json:"owner"`
	Action       string   `json:"action"`
	WhyNow       string   `json:"why_now"`
	EvidenceURLs []string `json:"evidence_urls"`
}

// Briefing is the full per-region synthesis.
type Briefing struct {
	ExecutiveSummary   []ExecItem       `json:"executive_summary"`
	KeyLaunches        []Launch         `json:"key_launches"`
	CompetitorMoves    []CompetitorMove `json:"competitor_moves"`
	RegulatoryWatch    []RegulatoryItem `json:"regulatory_watch"`
	PricingPromotions  []PricingItem    `json:"pricing_promotions"`
	Signals            []Signal         `json:"signals"`
	TalkingPoints      []TalkingPoint   `json:"talking_points"`
	RecommendedActions []Action         `json:"recommended_actions"`
}

// Synthesize builds the briefing from a region's capped, ordered article
// list. Talking points and recommended actions are guaranteed non-empty
// whenever any articles exist.
func Synthesize(def region.Definition, articles []enrich.Article) Briefing {
	b := Briefing{
		ExecutiveSummary: execSummary(articles),
	}

	launches := byCategory(articles, enrich.CategoryLaunch)
	moves := byCategory(articles, enrich.CategoryMarket)
	regs := byCategory(articles, enrich.CategoryRegulation)
	pricing := byCategory(articles, enrich.CategoryPricing)

	for _, art := range launches {
		b.KeyLaunches = append(b.KeyLaunches, Launch{
			Title:       art.Title,
			Company:     joinOrDash(art.Entities.Companies, 2),
			Product:     joinOrDefault(art.ProductTags, 3, "beverage"),
			Angle:       firstOf(art.SalesAngles),
			EvidenceURL: art.URL,
			Date:        art.Published.Format(time.RFC3339),
		})
	}

	for _, art := range moves {
		b.CompetitorMoves = append(b.CompetitorMoves, CompetitorMove{
			Title:       art.Title,
			Company:     joinOrDash(art.Entities.Companies, 2),
			MoveType:    string(enrich.CategoryMarket),
			Impact:      art.WhyItMatters,
			EvidenceURL: art.URL,
			Date:        art.Published.Format(time.RFC3339),
		})
	}

	for _, art := range regs {
		b.RegulatoryWatch = append(b.RegulatoryWatch, RegulatoryItem{
			Title:         art.Title,
			Topic:         joinOrDefault(art.ProductTags, 2, "regulation"),
			ImpactOnSales: art.WhyItMatters,
			EvidenceURL:   art.URL,
			Date:          art.Published.Format(time.RFC3339),
		})
	}

	for _, art := range pricing {
		b.PricingPromotions = append(b.PricingPromotions, PricingItem{
			Title:                  art.Title,
			WhatChanged:            truncate(art.Summary, 150),
			SalesRiskOrOpportunity: art.WhyItMatters,
			EvidenceURL:            art.URL,
			Date:                   art.Published.Format(time.RFC3339),
		})
	}

	tagCounts := countTags(articles)
	b.Signals = signals(def.Name, tagCounts, articles)
	b.TalkingPoints = talkingPoints(def.Name, articles, launches, regs, tagCounts)
	b.RecommendedActions = actions(def.Name, articles, launches, regs)

	return b
}

func execSummary(articles []enrich.Article) []ExecItem {
	items := make([]ExecItem, 0, sectionCap)
	for _, art := range capped(articles, sectionCap) {
		items = append(items, ExecItem{
			Headline:     art.Title,
			Detail:       truncate(art.Summary, 200),
			EvidenceURLs: []string{art.URL},
			Confidence:   art.Confidence,
		})
	}
	return items
}

// signals derives confidence-tiered signals from product-tag frequencies,
// falling back to category frequencies when the region has no tagged
// articles at all.
func signals(regionName string, tagCounts []keywordCount, articles []enrich.Article) []Signal {
	sigs := make([]Signal, 0, sectionCap)
	for _, tc := range capKeywordCounts(tagCounts, sectionCap) {
		label := strings.ReplaceAll(tc.key, "_", " ")
		sigs = append(sigs, Signal{
			Signal:       fmt.Sprintf("%s trending in %s", titleCase(label), regionName),
			Explanation:  fmt.Sprintf("%d articles mention %s", tc.count, label),
			SupportCount: tc.count,
			TopKeywords:  []string{tc.key},
			Confidence:   signalConfidence(tc.count),
		})
	}
	if len(sigs) > 0 {
		return sigs
	}

	for _, cc := range capKeywordCounts(countCategories(articles), 3) {
		sigs = append(sigs, Signal{
			Signal:       fmt.Sprintf("%s activity in %s", titleCase(cc.key), regionName),
			Explanation:  fmt.Sprintf("%d articles tracked", cc.count),
			SupportCount: cc.count,
			TopKeywords:  []string{cc.key},
			Confidence:   "medium",
		})
	}
	return sigs
}

func signalConfidence(count int) string {
	switch {
	case count >= 5:
		return "high"
	case count >= 2:
		return "medium"
	default:
		return "low"
	}
}

func talkingPoints(regionName string, articles, launches, regs []enrich.Article, tagCounts []keywordCount) []TalkingPoint {
	var points []TalkingPoint

	if len(launches) > 0 {
		points = append(points, TalkingPoint{
			CustomerType:           "retail",
			Pitch:                  fmt.Sprintf("%d new launches in %s - discuss shelf space", len(launches), regionName),
			SupportingEvidenceURLs: urlsOf(launches, 3),
		})
	}
	if len(regs) > 0 {
		points = append(points, TalkingPoint{
			CustomerType:           "key_account",
			Pitch:                  fmt.Sprintf("Regulatory changes in %s - position as compliance partner", regionName),
			SupportingEvidenceURLs: urlsOf(regs, 3),
		})
	}
	if countFor(tagCounts, "functional")+countFor(tagCounts, "energy") >= 1 {
		points = append(points, TalkingPoint{
			CustomerType:           "distributor",
			Pitch:                  fmt.Sprintf("Functional and energy beverage demand rising in %s", regionName),
			SupportingEvidenceURLs: urlsOf(taggedWith(articles, "functional", "energy"), 3),
		})
	}
	if len(points) == 0 && len(articles) > 0 {
		points = append(points, TalkingPoint{
			CustomerType:           "key_account",
			Pitch:                  fmt.Sprintf("%d developments tracked in %s", len(articles), regionName),
			SupportingEvidenceURLs: urlsOf(articles, 3),
		})
	}
	return points
}

func actions(regionName string, articles, launches, regs []enrich.Article) []Action {
	var acts []Action

	if len(launches) > 0 {
		acts = append(acts, Action{
			Owner:        "sales",
			Action:       fmt.Sprintf("Review %d launches for portfolio overlap", len(launches)),
			WhyNow:       "Competitive response needed",
			EvidenceURLs: urlsOf(launches, 3),
		})
	}
	if len(regs) > 0 {
		acts = append(acts, Action{
			Owner:        "sales",
			Action:       "Brief quality team on regulatory changes",
			WhyNow:       "Compliance deadlines approaching",
			EvidenceURLs: urlsOf(regs, 3),
		})
	}
	if len(acts) == 0 && len(articles) > 0 {
		acts = append(acts, Action{
			Owner:        "sales",
			Action:       fmt.Sprintf("Review %d items for %s", len(articles), regionName),
			WhyNow:       "Keep competitive awareness current",
			EvidenceURLs: urlsOf(articles, 3),
		})
	}
	return acts
}

// ── helpers ──

func byCategory(articles []enrich.Article, cat enrich.Category) []enrich.Article {
	out := make([]enrich.Article, 0, sectionCap)
	for _, art := range articles {
		if art.Category == cat {
			out = append(out, art)
			if len(out) == sectionCap {
				break
			}
		}
	}
	return out
}

func capped(articles []enrich.Article, n int) []enrich.Article {
	if len(articles) > n {
		return articles[:n]
	}
	return articles
}

func urlsOf(articles []enrich.Article, max int) []string {
	urls := make([]string, 0, max)
	for _, art := range capped(articles, max) {
		urls = append(urls, art.URL)
	}
	return urls
}

func taggedWith(articles []enrich.Article, tags ...string) []enrich.Article {
	var out []enrich.Article
	for _, art := range articles {
		for _, want := range tags {
			if hasTag(art, want) {
				out = append(out, art)
				break
			}
		}
	}
	return out
}

func hasTag(art enrich.Article, tag string) bool {
	for _, t := range art.ProductTags {
		if t == tag {
			return true
		}
	}
	return false
}

func joinOrDash(values []string, max int) string {
	if s := joinOrDefault(values, max, ""); s != "" {
		return s
	}
	return "-"
}

func joinOrDefault(values []string, max int, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	if len(values) > max {
		values = values[:max]
	}
	return strings.Join(values, ", ")
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// truncate caps s at max characters, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// keywordCount is a deterministic replacement for a Counter: ties sort by
// key so repeated runs emit identical documents.
type keywordCount struct {
	key   string
	count int
}

func sortKeywordCounts(counts map[string]int) []keywordCount {
	out := make([]keywordCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, keywordCount{key: k, count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

func capKeywordCounts(counts []keywordCount, n int) []keywordCount {
	if len(counts) > n {
		return counts[:n]
	}
	return counts
}

func countFor(counts []keywordCount, key string) int {
	for _, kc := range counts {
		if kc.key == key {
			return kc.count
		}
	}
	return 0
}

func countTags(articles []enrich.Article) []keywordCount {
	counts := make(map[string]int)
	for _, art := range articles {
		for _, tag := range art.ProductTags {
			counts[tag]++
		}
	}
	return sortKeywordCounts(counts)
}

func countCategories(articles []enrich.Article) []keywordCount {
	counts := make(map[string]int)
	for _, art := range articles {
		counts[string(art.Category)]++
	}
	return sortKeywordCounts(counts)
}
