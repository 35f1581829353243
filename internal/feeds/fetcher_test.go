package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rssServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "BeverageSalesIntelligence")
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func rssDoc(items ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Test Feed</title><link>https://example.com</link>
` + strings.Join(items, "\n") + `
</channel></rss>`
}

func rssItem(title, link string, published time.Time, description string) string {
	return fmt.Sprintf(
		`<item><title>%s</title><link>%s</link><pubDate>%s</pubDate><description>%s</description></item>`,
		title, link, published.Format(time.RFC1123Z), description)
}

func testDescriptor(url string) Descriptor {
	return Descriptor{Name: "Test Feed", URL: url, Tier: 2, Regions: []string{"germany"}}
}

func TestFetchParsesEntries(t *testing.T) {
	now := time.Now().UTC()
	srv := rssServer(t, rssDoc(
		rssItem("Fresh juice launch", "https://example.com/1", now.Add(-24*time.Hour),
			`<![CDATA[<p>A <b>bold</b> new   juice hits shelves.</p>]]>`),
		rssItem("Older but in range", "https://example.com/2", now.Add(-20*24*time.Hour), "plain text"),
	))

	f := NewFetcher(42 * 24 * time.Hour)
	items, err := f.Fetch(context.Background(), testDescriptor(srv.URL))
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "Fresh juice launch", first.Title)
	assert.Equal(t, "https://example.com/1", first.URL)
	assert.Equal(t, "A bold new juice hits shelves.", first.Summary)
	assert.Equal(t, "Test Feed", first.Source)
	assert.Equal(t, 2, first.Tier)
	assert.Equal(t, []string{"germany"}, first.FeedRegions)
	assert.WithinDuration(t, now.Add(-24*time.Hour), first.Published, 2*time.Second)
}

func TestFetchDropsUnusableEntries(t *testing.T) {
	now := time.Now().UTC()
	srv := rssServer(t, rssDoc(
		`<item><title>No link at all</title></item>`,
		`<item><link>https://example.com/untitled</link><pubDate>`+now.Format(time.RFC1123Z)+`</pubDate></item>`,
		rssItem("Too old", "https://example.com/old", now.Add(-60*24*time.Hour), ""),
		rssItem("Keeper", "https://example.com/keep", now.Add(-time.Hour), ""),
	))

	f := NewFetcher(42 * 24 * time.Hour)
	items, err := f.Fetch(context.Background(), testDescriptor(srv.URL))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Keeper", items[0].Title)
}

func TestFetchMissingDateDefaultsToNow(t *testing.T) {
	srv := rssServer(t, rssDoc(
		`<item><title>Undated story</title><link>https://example.com/undated</link></item>`,
	))

	f := NewFetcher(42 * 24 * time.Hour)
	items, err := f.Fetch(context.Background(), testDescriptor(srv.URL))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.WithinDuration(t, time.Now().UTC(), items[0].Published, 5*time.Second)
}

func TestFetchTruncatesLongSummaries(t *testing.T) {
	now := time.Now().UTC()
	long := strings.Repeat("beverage market analysis ", 40)
	srv := rssServer(t, rssDoc(
		rssItem("Long one", "https://example.com/long", now, long),
	))

	f := NewFetcher(42 * 24 * time.Hour)
	items, err := f.Fetch(context.Background(), testDescriptor(srv.URL))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.LessOrEqual(t, len(items[0].Summary), summaryMaxChars)
	assert.True(t, strings.HasSuffix(items[0].Summary, "..."))
	// Cut lands on a word boundary, never mid-word.
	trimmed := strings.TrimSuffix(items[0].Summary, "...")
	assert.False(t, strings.HasSuffix(trimmed, " "))
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher(42 * 24 * time.Hour)
	_, err := f.Fetch(context.Background(), testDescriptor(srv.URL))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFetchUnreachableHost(t *testing.T) {
	f := NewFetcher(42 * 24 * time.Hour)
	_, err := f.Fetch(context.Background(), testDescriptor("http://127.0.0.1:1/feed.xml"))
	require.Error(t, err)
}

func TestResolveLinkFallsBackToGUID(t *testing.T) {
	now := time.Now().UTC()
	srv := rssServer(t, rssDoc(
		`<item><title>GUID only</title><guid>https://example.com/guid-link</guid><pubDate>`+now.Format(time.RFC1123Z)+`</pubDate></item>`,
	))

	f := NewFetcher(42 * 24 * time.Hour)
	items, err := f.Fetch(context.Background(), testDescriptor(srv.URL))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://example.com/guid-link", items[0].URL)
}

func TestTruncateAtWord(t *testing.T) {
	assert.Equal(t, "short", truncateAtWord("short", 400))
	got := truncateAtWord("alpha beta gamma delta", 15)
	assert.Equal(t, "alpha beta...", got)
}

func TestTruncateAtWordRuneSafe(t *testing.T) {
	got := truncateAtWord(strings.Repeat("Getränke ", 5), 20)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Getränke...", got)
}
