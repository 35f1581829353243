// Package artifacts defines the self-contained JSON documents a run
// regenerates and the writer that persists them. No artifact carries state
// into the next run.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bevintel/internal/briefing"
	"bevintel/internal/enrich"
	"bevintel/internal/feeds"
	"bevintel/internal/health"
)

// Output file names. The dashboard consuming them keys on these.
const (
	NewsFile      = "sales_news.json"
	BriefingsFile = "sales_briefings.json"
	MarketFile    = "market_stats.json"
	HealthFile    = "data_health.json"
	CondensedFile = "briefing.json"
)

// Article is the per-region output row of the news document.
type Article struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Summary       string          `json:"summary"`
	URL           string          `json:"url"`
	Source        string          `json:"source"`
	Published     string          `json:"published"`
	CountryRegion string          `json:"country_region"`
	Category      string          `json:"category"`
	Entities      enrich.Entities `json:"entities"`
	ProductTags   []string        `json:"product_tags"`
	WhyItMatters  string          `json:"why_it_matters"`
	SalesAngles   []string        `json:"sales_angles"`
	Confidence    string          `json:"confidence"`
	Score         float64         `json:"score"`
}

// NewsArticle converts a scored pipeline article into its output row.
func NewsArticle(art enrich.Article, regionID string) Article {
	return Article{
		ID:            art.ID,
		Title:         art.Title,
		Summary:       art.Summary,
		URL:           art.URL,
		Source:        art.Source,
		Published:     art.Published.Format(time.RFC3339),
		CountryRegion: regionID,
		Category:      string(art.Category),
		Entities:      art.Entities,
		ProductTags:   art.ProductTags,
		WhyItMatters:  art.WhyItMatters,
		SalesAngles:   art.SalesAngles,
		Confidence:    art.Confidence,
		Score:         art.Score,
	}
}

// NewsMeta summarizes provenance for the news document.
type NewsMeta struct {
	SourcesUsed map[string][]string `json:"sources_used"`
	Errors      []feeds.FetchError  `json:"errors"`
	Counts      map[string]int      `json:"counts"`
}

// NewsDocument is sales_news.json.
type NewsDocument struct {
	GeneratedAt string               `json:"generated_at"`
	WindowDays  int                  `json:"window_days"`
	Regions     map[string][]Article `json:"regions"`
	Meta        NewsMeta             `json:"meta"`
}

// BriefingsDocument is sales_briefings.json.
type BriefingsDocument struct {
	GeneratedAt string                       `json:"generated_at"`
	WindowDays  int                          `json:"window_days"`
	Regions     map[string]briefing.Briefing `json:"regions"`
}

// HealthDocument is data_health.json.
type HealthDocument struct {
	GeneratedAt string                   `json:"generated_at"`
	Regions     map[string]health.Record `json:"regions"`
	Global      health.Global            `json:"global"`
}

// Write marshals one document into dir/name. Artifacts are independent of
// one another; a failed write reports which one.
func Write(dir, name string, doc any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
