package artifacts

import (
	"fmt"
	"time"

	"bevintel/internal/region"
)

// MarketFigures is the externally supplied per-region size/growth input.
// The pipeline never derives these numbers; it only keys them by region.
type MarketFigures struct {
	SizeValue    float64 `yaml:"size_value"`
	SizeUnit     string  `yaml:"size_unit"`
	GrowthPct    float64 `yaml:"growth_pct"`
	Year         int     `yaml:"year"`
	SourceName   string  `yaml:"source_name"`
	SourceURL    string  `yaml:"source_url"`
	LastVerified string  `yaml:"last_verified"`
	Notes        string  `yaml:"notes"`
}

// FigureSource names where a market figure came from.
type FigureSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Figure is one estimate with its provenance.
type Figure struct {
	Value        float64        `json:"value"`
	Unit         string         `json:"unit"`
	Year         int            `json:"year,omitempty"`
	Period       string         `json:"period,omitempty"`
	Method       string         `json:"method"`
	Sources      []FigureSource `json:"sources"`
	LastVerified string         `json:"last_verified"`
	Confidence   string         `json:"confidence"`
	Notes        string         `json:"notes"`
}

// MarketContext is one region's static market block.
type MarketContext struct {
	Currency   string `json:"currency"`
	MarketSize Figure `json:"market_size"`
	Growth     Figure `json:"growth"`
}

// MarketRegion pairs the context with run-derived relevance notes.
type MarketRegion struct {
	MarketContext       MarketContext `json:"market_context"`
	SalesRelevanceNotes []string      `json:"sales_relevance_notes"`
}

// MarketDocument is market_stats.json.
type MarketDocument struct {
	GeneratedAt string                  `json:"generated_at"`
	Regions     map[string]MarketRegion `json:"regions"`
}

// BuildMarket keys the supplied figures by region and attaches per-region
// item counts as relevance notes.
func BuildMarket(defs []region.Definition, figures map[string]MarketFigures, counts map[string]int, now time.Time) MarketDocument {
	doc := MarketDocument{
		GeneratedAt: now.Format(time.RFC3339),
		Regions:     make(map[string]MarketRegion, len(defs)),
	}

	for _, def := range defs {
		fig, ok := figures[def.ID]
		if !ok {
			continue
		}
		sources := []FigureSource{{Name: fig.SourceName, URL: fig.SourceURL}}
		doc.Regions[def.ID] = MarketRegion{
			MarketContext: MarketContext{
				Currency: def.Currency,
				MarketSize: Figure{
					Value:        fig.SizeValue,
					Unit:         fig.SizeUnit,
					Year:         fig.Year,
					Method:       "manual_estimate",
					Sources:      sources,
					LastVerified: fig.LastVerified,
					Confidence:   "medium",
					Notes:        fig.Notes,
				},
				Growth: Figure{
					Value:        fig.GrowthPct,
					Unit:         "pct",
					Period:       "YoY",
					Method:       "manual_estimate",
					Sources:      sources,
					LastVerified: fig.LastVerified,
					Confidence:   "medium",
					Notes:        "Approximate growth rate.",
				},
			},
			SalesRelevanceNotes: []string{fmt.Sprintf("%d items tracked.", counts[def.ID])},
		}
	}

	return doc
}
