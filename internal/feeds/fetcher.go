package feeds

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

const (
	fetchTimeout    = 12 * time.Second
	summaryMaxChars = 400
	userAgent       = "Mozilla/5.0 (X11; Linux x86_64) BeverageSalesIntelligence/1.0 (market research)"
)

// dateFormats is the ordered fallback list tried when the feed library could
// not parse the publish date itself.
var dateFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"2006-01-02T15:04:05Z",
}

// Fetcher retrieves and parses one feed document at a time.
type Fetcher struct {
	client *http.Client
	parser *gofeed.Parser
	maxAge time.Duration
	now    func() time.Time
}

// NewFetcher wires an HTTP client with the bounded per-feed timeout. Entries
// older than maxAge are dropped at fetch so the widest lookback window
// downstream still has everything it may need.
func NewFetcher(maxAge time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: fetchTimeout},
		parser: gofeed.NewParser(),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Fetch downloads and parses a single feed. It returns the usable entries or
// an error; a failed feed is the caller's problem to record, never to die on.
func (f *Fetcher) Fetch(ctx context.Context, d Descriptor) ([]RawItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %s", resp.Status)
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	now := f.now().UTC()
	cutoff := now.Add(-f.maxAge)
	items := make([]RawItem, 0, len(feed.Items))

	for _, entry := range feed.Items {
		title := strings.TrimSpace(entry.Title)
		link := resolveLink(entry)
		if title == "" || link == "" {
			continue
		}

		published := resolveDate(entry, now)
		if published.Before(cutoff) {
			continue
		}

		items = append(items, RawItem{
			Title:       title,
			URL:         link,
			Summary:     truncateAtWord(stripHTML(entrySummary(entry)), summaryMaxChars),
			Published:   published,
			Source:      d.Name,
			Tier:        d.Tier,
			FeedRegions: d.Regions,
		})
	}

	return items, nil
}

// resolveLink tries the usual locations a feed may stash the entry URL in.
func resolveLink(entry *gofeed.Item) string {
	if link := strings.TrimSpace(entry.Link); link != "" {
		return link
	}
	if guid := strings.TrimSpace(entry.GUID); strings.HasPrefix(guid, "http") {
		return guid
	}
	for _, link := range entry.Links {
		if link = strings.TrimSpace(link); link != "" {
			return link
		}
	}
	return ""
}

func entrySummary(entry *gofeed.Item) string {
	if entry.Description != "" {
		return entry.Description
	}
	return entry.Content
}

// resolveDate prefers the library-parsed timestamp, then the raw date string
// against the known format list, then the fetch time. Defaulting to "now" can
// let stale content look fresh; that behavior is kept on purpose.
func resolveDate(entry *gofeed.Item, now time.Time) time.Time {
	if entry.PublishedParsed != nil {
		return entry.PublishedParsed.UTC()
	}
	if entry.UpdatedParsed != nil {
		return entry.UpdatedParsed.UTC()
	}
	for _, raw := range []string{entry.Published, entry.Updated} {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		for _, format := range dateFormats {
			if ts, err := time.Parse(format, raw); err == nil {
				return ts.UTC()
			}
		}
	}
	return now
}

// stripHTML extracts plain text from feed description markup.
func stripHTML(raw string) string {
	if raw == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.Join(strings.Fields(raw), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// truncateAtWord caps s just under max characters, cutting back to a word
// boundary and appending an ellipsis marker. Counting runes, not bytes,
// keeps the cut from splitting accented characters in non-English summaries.
func truncateAtWord(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := string(runes[:max-3])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}
