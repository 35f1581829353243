package health

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bevintel/internal/enrich"
	"bevintel/internal/feeds"
	"bevintel/internal/window"
)

func articles(n int, strength string, published time.Time) []enrich.Article {
	out := make([]enrich.Article, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, enrich.Article{
			RawItem:  feeds.RawItem{Title: fmt.Sprintf("a%d", i), Published: published},
			Strength: strength,
		})
	}
	return out
}

func TestEvaluateOK(t *testing.T) {
	published := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	res := window.Result{
		Articles:   articles(12, window.StrengthHigh, published),
		WindowDays: window.PrimaryWindowDays,
	}

	rec := Evaluate(res, 5, 2)

	assert.Equal(t, StatusOK, rec.Status)
	assert.Equal(t, 12, rec.Items)
	assert.Equal(t, 12, rec.RegionItems)
	// The record repeats the run-wide feed totals verbatim.
	assert.Equal(t, 5, rec.SourcesOK)
	assert.Equal(t, 2, rec.SourcesFailed)
	assert.Empty(t, rec.Notes)
	require.NotNil(t, rec.LastItemDate)
	assert.Equal(t, published.Format(time.RFC3339), *rec.LastItemDate)
}

func TestEvaluateRegionItemsCountsHighOnly(t *testing.T) {
	published := time.Now().UTC()
	arts := append(articles(3, window.StrengthHigh, published),
		articles(9, window.StrengthLow, published)...)
	res := window.Result{Articles: arts, WindowDays: window.PrimaryWindowDays}

	rec := Evaluate(res, 1, 0)

	assert.Equal(t, 12, rec.Items)
	assert.Equal(t, 3, rec.RegionItems)
}

func TestEvaluateFallbackWarning(t *testing.T) {
	res := window.Result{
		Articles:     articles(15, window.StrengthMedium, time.Now().UTC()),
		WindowDays:   window.FallbackWindowDays,
		FallbackUsed: true,
	}

	rec := Evaluate(res, 3, 1)

	assert.Equal(t, StatusWarning, rec.Status)
	assert.Contains(t, rec.Notes, "extended to 42-day window")
}

func TestEvaluateBelowThresholdWarning(t *testing.T) {
	res := window.Result{
		Articles:   articles(4, window.StrengthMedium, time.Now().UTC()),
		WindowDays: window.PrimaryWindowDays,
	}

	rec := Evaluate(res, 3, 0)

	assert.Equal(t, StatusWarning, rec.Status)
	assert.Contains(t, rec.Notes, "below 10-item threshold: 4")
}

func TestEvaluateEmptyRegionError(t *testing.T) {
	res := window.Result{WindowDays: window.FallbackWindowDays, FallbackUsed: true}

	rec := Evaluate(res, 0, 4)

	assert.Equal(t, StatusError, rec.Status)
	assert.Nil(t, rec.LastItemDate)
	assert.Contains(t, rec.Notes, "no articles after all fallbacks")
	// The fallback and threshold notes still appear alongside the error.
	assert.Contains(t, rec.Notes, "extended to 42-day window")
}
