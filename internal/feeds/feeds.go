package feeds

import (
	"strings"
	"time"
)

// GlobalRegion is the sentinel meaning "applies to every region".
const GlobalRegion = "global"

// Descriptor is one immutable row of the feed table.
type Descriptor struct {
	Name     string   `yaml:"name"`
	URL      string   `yaml:"url"`
	Tier     int      `yaml:"tier"`    // 1 best .. 4 weakest
	Regions  []string `yaml:"regions"` // region ids, or the "global" sentinel
	Category string   `yaml:"category"`
}

// IsGlobal reports whether the feed is declared for all regions.
func (d Descriptor) IsGlobal() bool {
	return len(d.Regions) == 1 && d.Regions[0] == GlobalRegion
}

// RawItem is one fetched feed entry, HTML-stripped and length-capped.
// It lives only between fetch and enrichment.
type RawItem struct {
	Title       string
	URL         string
	Summary     string
	Published   time.Time
	Source      string
	Tier        int
	FeedRegions []string
}

// Text is the lower-cased title+summary every keyword stage scans.
func (it RawItem) Text() string {
	return strings.ToLower(it.Title + " " + it.Summary)
}

// FetchError records a single failed feed for the health report.
// It never aborts the run.
type FetchError struct {
	Source  string    `json:"source"`
	Message string    `json:"error"`
	Time    time.Time `json:"time"`
}
