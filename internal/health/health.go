// Package health summarizes per-region and global data quality for one run.
package health

import (
	"fmt"
	"time"

	"bevintel/internal/window"
)

// Statuses, from best to worst.
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Record is one region's data-quality summary. The source counts are the
// run-wide feed totals, repeated in every region's record.
type Record struct {
	Status        string   `json:"status"`
	Items         int      `json:"items"`
	RegionItems   int      `json:"region_items"` // high-strength items only
	SourcesOK     int      `json:"sources_ok"`
	SourcesFailed int      `json:"sources_failed"`
	LastItemDate  *string  `json:"last_item_date"`
	Notes         []string `json:"notes"`
}

// Global is the run-wide totals block of the health document.
type Global struct {
	TotalItems         int `json:"total_items"`
	TotalSourcesOK     int `json:"total_sources_ok"`
	TotalSourcesFailed int `json:"total_sources_failed"`
}

// Evaluate grades one region's selection result. Zero items is an error;
// running below the minimum threshold or on the widened window is a warning
// with an explanatory note; everything else is ok. The run itself never
// fails because of a bad region. sourcesOK and sourcesFailed are the
// run-wide feed totals, not region-scoped counts.
func Evaluate(res window.Result, sourcesOK, sourcesFailed int) Record {
	rec := Record{
		Status:        StatusOK,
		Items:         len(res.Articles),
		SourcesOK:     sourcesOK,
		SourcesFailed: sourcesFailed,
		Notes:         []string{},
	}

	for _, art := range res.Articles {
		if art.Strength == window.StrengthHigh {
			rec.RegionItems++
		}
	}

	if last := lastItemDate(res); last != "" {
		rec.LastItemDate = &last
	}

	if res.FallbackUsed {
		rec.Status = StatusWarning
		rec.Notes = append(rec.Notes, fmt.Sprintf("extended to %d-day window", window.FallbackWindowDays))
	}
	if rec.Items < window.MinRegionItems {
		rec.Status = StatusWarning
		rec.Notes = append(rec.Notes, fmt.Sprintf("below %d-item threshold: %d", window.MinRegionItems, rec.Items))
	}
	if rec.Items == 0 {
		rec.Status = StatusError
		rec.Notes = append(rec.Notes, "no articles after all fallbacks")
	}

	return rec
}

// lastItemDate is the most recent publish date in the selection. The list is
// ordered by strength bucket, not recency, so scan all of it.
func lastItemDate(res window.Result) string {
	var newest time.Time
	for _, art := range res.Articles {
		if art.Published.After(newest) {
			newest = art.Published
		}
	}
	if newest.IsZero() {
		return ""
	}
	return newest.Format(time.RFC3339)
}
